package chain

import "github.com/pkg/errors"

// Errors
var (
	// ErrChainCorruption signals broken linkage between adjacent blocks. It
	// indicates tampering or a serialization bug and must never be ignored.
	ErrChainCorruption = errors.New("chain corruption detected")
)
