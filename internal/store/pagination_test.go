package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{name: "valid first page", req: PageRequest{Page: 1, PageSize: 100}},
		{name: "valid deep page", req: PageRequest{Page: 42, PageSize: 20}},
		{name: "page size at maximum", req: PageRequest{Page: 1, PageSize: MaxPageSize}},
		{name: "zero page", req: PageRequest{Page: 0, PageSize: 100}, wantErr: true},
		{name: "negative page", req: PageRequest{Page: -3, PageSize: 100}, wantErr: true},
		{name: "zero page size", req: PageRequest{Page: 1, PageSize: 0}, wantErr: true},
		{name: "page size over maximum", req: PageRequest{Page: 1, PageSize: MaxPageSize + 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPagination)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 100}.Offset())
	assert.Equal(t, 100, PageRequest{Page: 2, PageSize: 100}.Offset())
	assert.Equal(t, 60, PageRequest{Page: 4, PageSize: 20}.Offset())
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		items          []int
		req            PageRequest
		totalItems     int
		wantTotalPages int
	}{
		{
			name:           "empty result set still has one page",
			items:          nil,
			req:            PageRequest{Page: 1, PageSize: 100},
			totalItems:     0,
			wantTotalPages: 1,
		},
		{
			name:           "exact multiple",
			items:          []int{1, 2},
			req:            PageRequest{Page: 1, PageSize: 2},
			totalItems:     4,
			wantTotalPages: 2,
		},
		{
			name:           "remainder adds a page",
			items:          []int{1, 2},
			req:            PageRequest{Page: 1, PageSize: 2},
			totalItems:     5,
			wantTotalPages: 3,
		},
		{
			name:           "page beyond the last is empty, metadata intact",
			items:          nil,
			req:            PageRequest{Page: 9, PageSize: 20},
			totalItems:     35,
			wantTotalPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.items, tt.req, tt.totalItems)

			require.NotNil(t, page.Items, "items must never be nil")
			assert.Equal(t, tt.wantTotalPages, page.Pagination.TotalPages)
			assert.Equal(t, tt.totalItems, page.Pagination.TotalItems)
			assert.Equal(t, tt.req.Page, page.Pagination.CurrentPage)
			assert.Equal(t, tt.req.PageSize, page.Pagination.ItemsPerPage)
		})
	}
}
