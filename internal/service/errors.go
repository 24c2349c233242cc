package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers may want to check for with
// errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Store sentinel errors (not found, duplicates) pass through unwrapped
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrSeedFailed indicates the embedded seed data could not be replayed
	// during a full reset. The surrounding transaction is rolled back, so the
	// database keeps its pre-reset contents. API layer should map this to
	// HTTP 500 Internal Server Error.
	ErrSeedFailed = errors.New("failed to apply seed data")
)
