// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// auth service and handlers to distinguish between different failure
// scenarios without inspecting driver-specific errors. ErrNotFound
// replaces mongo.ErrNoDocuments at the repository boundary so callers
// never depend on the driver directly, while ErrStorageUnavailable
// signals that no database backend is configured or reachable.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Callers
// translate this into the appropriate credential or session error.
var ErrNotFound = errors.New("not found")

// ErrStorageUnavailable is returned when the persistence layer is not
// configured or cannot be reached. Handlers should translate this into
// an HTTP 500 response distinct from credential and session failures.
var ErrStorageUnavailable = errors.New("storage unavailable")
