package pow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsValidProof(t *testing.T) {
	engine := NewEngine()

	proof, err := engine.Search(context.Background(), 100)
	require.NoError(t, err)

	assert.True(t, engine.Validate(100, proof), "the found proof must satisfy the predicate")
}

func TestSearchReturnsSmallestProof(t *testing.T) {
	engine := NewEngine()

	proof, err := engine.Search(context.Background(), 42)
	require.NoError(t, err)

	for candidate := uint64(0); candidate < proof; candidate++ {
		require.False(t, engine.Validate(42, candidate),
			"no integer below the returned proof may satisfy the predicate")
	}
}

func TestSearchDeterministic(t *testing.T) {
	engine := NewEngine()

	first, err := engine.Search(context.Background(), 7)
	require.NoError(t, err)
	second, err := engine.Search(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, first, second, "the search is a pure function of lastProof")
}

func TestSearchAborted(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Search(ctx, 100)
	require.ErrorIs(t, err, ErrSearchAborted)
}

func TestSearchBoundedExhausted(t *testing.T) {
	engine := NewEngine()

	// One attempt is almost surely not enough for a 16-bit target, but make
	// certain the single candidate really fails before asserting exhaustion.
	require.False(t, engine.Validate(100, 0))

	_, err := engine.SearchBounded(context.Background(), 100, 1)
	require.ErrorIs(t, err, ErrSearchExhausted)
}

func TestSearchBoundedSucceedsWithinLimit(t *testing.T) {
	engine := NewEngine()

	reference, err := engine.Search(context.Background(), 100)
	require.NoError(t, err)

	proof, err := engine.SearchBounded(context.Background(), 100, reference+1)
	require.NoError(t, err)
	assert.Equal(t, reference, proof)
}

func TestSearchParallelMatchesSequential(t *testing.T) {
	engine := NewEngine()

	for _, lastProof := range []uint64{1, 100, 35293} {
		sequential, err := engine.Search(context.Background(), lastProof)
		require.NoError(t, err)

		for _, workers := range []int{2, 4, 8} {
			parallel, err := engine.SearchParallel(context.Background(), lastProof, workers)
			require.NoError(t, err)
			assert.Equalf(t, sequential, parallel,
				"parallel search with %d workers must return the sequential result for lastProof=%d",
				workers, lastProof)
		}
	}
}

func TestSearchParallelAborted(t *testing.T) {
	engine := NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.SearchParallel(ctx, 100, 4)
	require.ErrorIs(t, err, ErrSearchAborted)
}
