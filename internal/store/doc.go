// Package store defines interfaces for persisting words, per-word learning
// progress, and daily response counters. The interfaces keep the scheduler
// and the HTTP layer independent of the database backend; implementations
// live in platform/database.
package store
