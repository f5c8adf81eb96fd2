package host

import "errors"

// Sentinel errors for per-item materialization failures. The pipeline
// logs these individually and continues the batch.
var (
	ErrMemberNotFound = errors.New("variant member not found in document")
	ErrNotComponent   = errors.New("node is not a component")
)
