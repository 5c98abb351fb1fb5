package pow

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// searchChunkSize is the number of candidate proofs a worker claims at a time.
const searchChunkSize = 4096

type chunkResult struct {
	chunk uint64
	proof uint64
	found bool
}

// SearchParallel scans for a proof with the given number of workers, each
// claiming disjoint ascending chunks of the candidate space. The result is
// behavior-equivalent to Search: the returned proof is the globally smallest
// satisfying integer, not merely the first one any worker happens to find.
func (e *Engine) SearchParallel(ctx context.Context, lastProof uint64, workers int) (uint64, error) {
	if workers <= 1 {
		return e.Search(ctx, lastProof)
	}

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var next atomic.Uint64
	results := make(chan chunkResult, workers)

	g, scanCtx := errgroup.WithContext(scanCtx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for scanCtx.Err() == nil {
				chunk := next.Add(1) - 1
				start := chunk * searchChunkSize
				res := chunkResult{chunk: chunk}
				for proof := start; proof < start+searchChunkSize; proof++ {
					if e.Validate(lastProof, proof) {
						res.proof = proof
						res.found = true
						break
					}
				}
				select {
				case results <- res:
				case <-scanCtx.Done():
					return nil
				}
			}
			return nil
		})
	}

	// Chunks complete out of order. Advance a frontier over finished chunks
	// so the first hit accepted is the one a sequential scan would have
	// reached first; hits in later chunks stay pending until every chunk
	// below them has come back empty.
	pending := make(map[uint64]chunkResult)
	var frontier uint64
	for {
		select {
		case res := <-results:
			pending[res.chunk] = res
			for {
				done, ok := pending[frontier]
				if !ok {
					break
				}
				if done.found {
					cancel()
					_ = g.Wait()
					return done.proof, nil
				}
				delete(pending, frontier)
				frontier++
			}
		case <-ctx.Done():
			cancel()
			_ = g.Wait()
			return 0, ErrSearchAborted
		}
	}
}
