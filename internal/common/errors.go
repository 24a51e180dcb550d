// Package common defines shared constants and sentinel errors used across
// the server, the client and the importer. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Content validation (importer, request parsing).
	ErrValidation = errors.New("validation error")

	// Formatting errors surfaced by the currency formatter.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// Transport errors seen by the client.
	ErrUnavailable = errors.New("server unavailable")
	ErrFetchFailed = errors.New("fetch failed")

	// Returned by the local cache when nothing was stored yet.
	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)
