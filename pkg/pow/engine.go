package pow

import (
	"context"
	"strconv"
	"strings"

	"github.com/peermint/peermint/pkg/types"
)

// difficultyPrefix is the fixed difficulty target: the hex digest of a valid
// proof pair must start with four '0' characters, giving an expected search
// space of about 2^16 attempts per block.
const difficultyPrefix = "0000"

// ctxCheckInterval controls how often the sequential scan polls for
// cancellation. Must be a power of two minus one.
const ctxCheckInterval = 0x3ff

// Engine implements the brute-force proof-of-work puzzle: find the smallest
// integer whose hash together with the previous block's proof satisfies the
// difficulty predicate. Validation is cheap; the search is CPU-bound.
type Engine struct {
	prefix string
}

// NewEngine creates an Engine with the fixed difficulty target.
func NewEngine() *Engine {
	return &Engine{prefix: difficultyPrefix}
}

// Validate reports whether proof extends lastProof: the SHA-256 digest of the
// two integers' concatenated decimal representations must start with "0000".
func (e *Engine) Validate(lastProof, proof uint64) bool {
	guess := strconv.FormatUint(lastProof, 10) + strconv.FormatUint(proof, 10)
	return strings.HasPrefix(types.SumHex([]byte(guess)), e.prefix)
}

// Search returns the smallest non-negative proof satisfying Validate against
// lastProof. The scan is unbounded and runs until a proof is found or the
// context is cancelled, in which case ErrSearchAborted is returned. The scan
// has no side effects, so an abandoned search needs no cleanup.
func (e *Engine) Search(ctx context.Context, lastProof uint64) (uint64, error) {
	for proof := uint64(0); ; proof++ {
		if proof&ctxCheckInterval == 0 && ctx.Err() != nil {
			return 0, ErrSearchAborted
		}
		if e.Validate(lastProof, proof) {
			return proof, nil
		}
	}
}

// SearchBounded behaves like Search but gives up after maxAttempts hash
// attempts, returning ErrSearchExhausted. Cancellation still surfaces as
// ErrSearchAborted; the two outcomes are distinct.
func (e *Engine) SearchBounded(ctx context.Context, lastProof, maxAttempts uint64) (uint64, error) {
	for proof := uint64(0); proof < maxAttempts; proof++ {
		if proof&ctxCheckInterval == 0 && ctx.Err() != nil {
			return 0, ErrSearchAborted
		}
		if e.Validate(lastProof, proof) {
			return proof, nil
		}
	}
	return 0, ErrSearchExhausted
}
