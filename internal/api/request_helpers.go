package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// getPathUUID extracts a UUID from the URL path parameters.
// It parses and validates the UUID, handling common error cases.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPageRequest builds the pagination parameters from the request's query
// string. Absent parameters fall back to page 1 and the endpoint's
// configured default page size; malformed or out-of-range values map to
// store.ErrInvalidPagination.
func getPageRequest(r *http.Request, defaultPageSize int) (store.PageRequest, error) {
	req := store.PageRequest{Page: 1, PageSize: defaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, domain.NewValidationError("page", "must be an integer", store.ErrInvalidPagination)
		}
		req.Page = page
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return req, domain.NewValidationError("page_size", "must be an integer", store.ErrInvalidPagination)
		}
		req.PageSize = pageSize
	}

	if err := req.Validate(); err != nil {
		return req, err
	}

	return req, nil
}
