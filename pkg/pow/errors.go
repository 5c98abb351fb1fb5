package pow

import "github.com/pkg/errors"

// Errors
var (
	// ErrSearchAborted is returned when the caller cancels an in-flight search.
	ErrSearchAborted = errors.New("proof search aborted")

	// ErrSearchExhausted is returned when a bounded search reaches its attempt
	// limit without finding a valid proof.
	ErrSearchExhausted = errors.New("proof search exhausted attempt limit")
)
