// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and service
// interfaces used throughout the application, so individual test files do
// not each define their own inline mocks.
//
// Every mock follows the same pattern: a struct with one function field per
// interface method. When a function field is set, the mock delegates to it;
// otherwise a simple map-backed default implementation runs. Constructors
// initialize the default state.
//
//	words := mocks.NewWordStore()
//	words.FindNewFn = func(ctx context.Context, limit int, level, category string) ([]*domain.Word, error) {
//	    return nil, errors.New("boom")
//	}
package mocks
