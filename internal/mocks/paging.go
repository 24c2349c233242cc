package mocks

import "github.com/wordtrail/wordtrail-api/internal/store"

// paginate slices one page out of the full in-memory item list and wraps it
// in the standard page envelope.
func paginate[T any](items []T, req store.PageRequest) (store.Page[T], error) {
	if err := req.Validate(); err != nil {
		return store.Page[T]{}, err
	}

	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}

	return store.NewPage(items[start:end], req, len(items)), nil
}
