// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/store layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated indicates a user-scoped operation was attempted
	// without an active session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyExists indicates a unique constraint violation
	// (e.g., a second wajib record for the same date and prayer).
	ErrAlreadyExists = errors.New("already exists")

	// ErrSessionChanged indicates a refresh resolved after the session it
	// was issued under ended; its results were discarded.
	ErrSessionChanged = errors.New("session changed")
)
