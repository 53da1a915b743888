// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between HTTP clients and
// the review service, translating HTTP concerns to study operations.
package api
