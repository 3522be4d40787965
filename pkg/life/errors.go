package life

import "errors"

var (
	// ErrInvalidConfiguration reports a non-positive dimension, an unknown
	// policy, or grid dimensions that differ between the two passes.
	ErrInvalidConfiguration = errors.New("life: invalid configuration")

	// ErrAliasedBuffers reports a pass asked to read and write the same
	// texture, or handed a handle the scheduler never issued.
	ErrAliasedBuffers = errors.New("life: read and write buffers alias")

	// ErrSizeMismatch reports an upload whose dimensions differ from the grid.
	ErrSizeMismatch = errors.New("life: texture size mismatch")

	// ErrUnknownPattern reports a seed pattern name that is not registered.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
