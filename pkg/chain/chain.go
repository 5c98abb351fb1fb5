package chain

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/peermint/peermint/pkg/logger"
	"github.com/peermint/peermint/pkg/observability"
	"github.com/peermint/peermint/pkg/pow"
	"github.com/peermint/peermint/pkg/txpool"
	"github.com/peermint/peermint/pkg/types"
)

// Chain is the append-only sequence of blocks. It owns block assembly: mining
// reads the tail, searches for a proof, packs the pending pool into a new
// block linked to the tail's hash, appends it and clears the pool. Appended
// blocks are never mutated, reordered or removed.
type Chain struct {
	mu          sync.RWMutex
	log         logger.Logger
	engine      *pow.Engine
	pool        *txpool.Pool
	obs         *observability.Observability
	workers     int
	maxAttempts uint64
	blocks      []*types.Block
}

// New creates a chain holding only the genesis block, with an empty pool.
// obs may be nil. workers selects the proof-search parallelism; values below
// two mean a plain sequential scan. A non-zero maxAttempts bounds every
// search instead of letting it run until found.
func New(engine *pow.Engine, pool *txpool.Pool, log logger.Logger, obs *observability.Observability, workers int, maxAttempts uint64) *Chain {
	c := &Chain{
		log:         log,
		engine:      engine,
		pool:        pool,
		obs:         obs,
		workers:     workers,
		maxAttempts: maxAttempts,
		blocks:      []*types.Block{newGenesisBlock()},
	}
	c.log.Debug("Initialized chain with genesis block",
		"proof", GenesisProof,
		"previousHash", GenesisPreviousHash,
	)
	return c
}

// Submit buffers an already-validated transaction for the next block and
// returns the 1-based ordinal of the block that will include it. The ordinal
// is informational: it is the index the upcoming block will carry, not a
// guarantee should the pool change before mining.
func (c *Chain) Submit(tx types.Transaction) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pool.Add(tx)
	next := c.blocks[len(c.blocks)-1].Index + 1
	c.log.Debug("Buffered transaction for next block",
		"sender", tx.Sender.String(),
		"recipient", tx.Recipient.String(),
		"amount", tx.Amount,
		"block", next,
	)
	return next
}

// Mine extends the chain by one block: it searches for a proof over the
// tail's proof, assembles a block from the pending pool and the tail's hash,
// appends it and clears the pool. The search honors ctx cancellation; an
// aborted search leaves chain and pool untouched.
func (c *Chain) Mine(ctx context.Context) (*types.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	last := c.blocks[len(c.blocks)-1]

	start := time.Now()
	var proof uint64
	var err error
	if c.maxAttempts > 0 {
		proof, err = c.engine.SearchBounded(ctx, last.Proof, c.maxAttempts)
	} else {
		proof, err = c.engine.SearchParallel(ctx, last.Proof, c.workers)
	}
	if err != nil {
		return nil, errors.Wrap(err, "proof-of-work search failed")
	}

	previousHash, err := last.Hash()
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash previous block")
	}

	block := types.NewBlock(last.Index+1, c.pool.Pending(), proof, previousHash)
	c.blocks = append(c.blocks, block)
	c.pool.Clear()

	elapsed := time.Since(start)
	c.obs.RecordBlockMined(ctx, elapsed.Seconds())
	c.log.Info("Mined new block",
		"index", block.Index,
		"proof", block.Proof,
		"transactions", len(block.Transactions),
		"elapsed", elapsed.String(),
	)
	return block, nil
}

// Verify walks the chain and checks that every block links to the recomputed
// hash of its predecessor, that indices increase by exactly one, and that the
// genesis block carries the fixed constants. Any violation is reported as
// ErrChainCorruption.
func (c *Chain) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	genesis := c.blocks[0]
	if genesis.Index != GenesisIndex || genesis.Proof != GenesisProof || genesis.PreviousHash != GenesisPreviousHash {
		return errors.Wrap(ErrChainCorruption, "genesis block does not match fixed parameters")
	}

	for i := 1; i < len(c.blocks); i++ {
		prev, curr := c.blocks[i-1], c.blocks[i]
		if curr.Index != prev.Index+1 {
			return errors.Wrapf(ErrChainCorruption, "block %d follows block %d", curr.Index, prev.Index)
		}
		prevHash, err := prev.Hash()
		if err != nil {
			return errors.Wrapf(err, "failed to hash block %d", prev.Index)
		}
		if curr.PreviousHash != prevHash {
			return errors.Wrapf(ErrChainCorruption, "block %d does not link to the hash of block %d", curr.Index, prev.Index)
		}
	}
	return nil
}

// Snapshot returns a read-only copy of the full chain in order.
func (c *Chain) Snapshot() []types.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]types.Block, len(c.blocks))
	for i, b := range c.blocks {
		out[i] = b.Copy()
	}
	return out
}

// LastBlock returns a copy of the chain's tail.
func (c *Chain) LastBlock() types.Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks[len(c.blocks)-1].Copy()
}

// Length returns the number of blocks in the chain.
func (c *Chain) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.blocks)
}

// PendingCount returns the number of transactions buffered for the next block.
func (c *Chain) PendingCount() int {
	return c.pool.Size()
}
