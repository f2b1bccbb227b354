package store

import "errors"

// Sentinel errors shared by both backends. Callers match with errors.Is;
// lower-level transport and storage faults are wrapped and propagated as-is.
var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrNotFound             = errors.New("not found")
	ErrTagRenameUnsupported = errors.New("tag rename not supported by this backend")

	// ErrUnauthorized signals the session credential is no longer valid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable signals a connection-level transport failure.
	ErrUnavailable = errors.New("server unavailable")
)
