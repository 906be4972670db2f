package ingest

import "errors"

var (
	// ErrIndexRequired is returned when a memory index is not provided.
	ErrIndexRequired = errors.New("memory index required")
)
