package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to load: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrWordNotFound",
			err:      ErrWordNotFound,
			expected: true,
		},
		{
			name:     "ErrSessionNotFound wrapped",
			err:      fmt.Errorf("start session: %w", ErrSessionNotFound),
			expected: true,
		},
		{
			name:     "duplicate error is not a not-found error",
			err:      ErrReviewExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "ErrDuplicate",
			err:      ErrDuplicate,
			expected: true,
		},
		{
			name:     "ErrReviewExists",
			err:      ErrReviewExists,
			expected: true,
		},
		{
			name:     "wrapped ErrGroupNameExists",
			err:      fmt.Errorf("create group: %w", ErrGroupNameExists),
			expected: true,
		},
		{
			name:     "not-found error is not a duplicate error",
			err:      ErrWordNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateError(tt.err); got != tt.expected {
				t.Errorf("IsDuplicateError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
