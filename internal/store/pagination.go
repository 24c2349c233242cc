package store

import "fmt"

// MaxPageSize bounds the items-per-page a caller may request.
const MaxPageSize = 500

// PageRequest carries the pagination parameters of a listing operation.
// Page is 1-based. PageSize defaults are per endpoint, not global; handlers
// fill in their configured default before calling the store.
type PageRequest struct {
	Page     int
	PageSize int
}

// Validate checks the pagination parameters against the allowed range.
// Returns ErrInvalidPagination (wrapped) when out of range.
func (p PageRequest) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPagination, p.Page)
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d, got %d",
			ErrInvalidPagination, MaxPageSize, p.PageSize)
	}
	return nil
}

// Offset returns the row offset for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pagination is the metadata block every listing response carries.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// Page is a single page of a listing result. Items is never nil; a page
// beyond the last one is an empty page with accurate metadata, not an error.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds a result page from the items of the requested page and the
// total item count. TotalPages is ceil(totalItems / pageSize) with a floor
// of 1 so "page 1 of 1" holds even for an empty result set.
func NewPage[T any](items []T, req PageRequest, totalItems int) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := (totalItems + req.PageSize - 1) / req.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Page[T]{
		Items: items,
		Pagination: Pagination{
			CurrentPage:  req.Page,
			TotalPages:   totalPages,
			TotalItems:   totalItems,
			ItemsPerPage: req.PageSize,
		},
	}
}
