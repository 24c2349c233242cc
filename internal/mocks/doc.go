// Package mocks provides centralized mock implementations for testing.
//
// Each store interface has a hand-written mock holding its data in memory,
// with per-method function fields for overriding behavior in a single test.
// Import the package and construct the mock you need:
//
//	wordStore := mocks.NewMockWordStore()
//	wordStore.CreateFn = func(ctx context.Context, w *domain.Word) error {
//	    return store.ErrDuplicate
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Back the default behavior with in-memory data so most tests need no setup
package mocks
