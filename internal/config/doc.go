// Package config handles configuration loading and validation from an
// optional YAML file and ENGLISHAPP_-prefixed environment variables. It
// provides type-safe access to server, database, and scheduling settings
// while keeping configuration details out of business logic.
package config
