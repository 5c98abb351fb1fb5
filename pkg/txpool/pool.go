package txpool

import (
	"sync"

	"github.com/peermint/peermint/pkg/types"
)

// Pool buffers accepted transactions awaiting inclusion in the next block.
// It is pure bookkeeping: validation happens at submission time in the
// ledger, and the pool is cleared exactly when a block is appended.
type Pool struct {
	mu      sync.RWMutex
	pending []types.Transaction
}

// NewPool initializes an empty transaction pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add appends a transaction to the pool, preserving insertion order.
func (p *Pool) Add(tx types.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, tx)
}

// Pending returns a copy of the buffered transactions in insertion order.
func (p *Pool) Pending() []types.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]types.Transaction, len(p.pending))
	copy(out, p.pending)
	return out
}

// Clear empties the pool.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
}

// Size returns the current number of buffered transactions.
func (p *Pool) Size() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pending)
}
