package node

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/peermint/peermint/pkg/chain"
	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/ledger"
	"github.com/peermint/peermint/pkg/logger"
	"github.com/peermint/peermint/pkg/observability"
	"github.com/peermint/peermint/pkg/pow"
	"github.com/peermint/peermint/pkg/txpool"
	"github.com/peermint/peermint/pkg/types"
)

// Node is the in-process API surface of the ledger system. It owns the
// account state and the chain together and serializes every state transition
// through a single mutex, so there is exactly one logical mutator: a
// submission either fully applies (balance updates plus pool entry) or not
// at all, and no mine can interleave with another.
type Node struct {
	mu    sync.Mutex
	log   logger.Logger
	obs   *observability.Observability
	state *ledger.State
	chain *chain.Chain
}

// New constructs a node from the configuration: a fresh ledger, an empty
// pool and a chain holding only the genesis block. obs may be nil.
func New(cfg *config.Config, log logger.Logger, obs *observability.Observability) *Node {
	pool := txpool.NewPool()
	return &Node{
		log:   log,
		obs:   obs,
		state: ledger.NewState(cfg.Ledger.InitialGrant),
		chain: chain.New(pow.NewEngine(), pool, log, obs, cfg.Pow.Workers, cfg.Pow.MaxAttempts),
	}
}

// CreateAccount creates a new account funded with the initial grant and
// returns its address.
func (n *Node) CreateAccount() types.Address {
	n.mu.Lock()
	defer n.mu.Unlock()

	addr := n.state.CreateAccount()
	n.log.Info("Created account", "address", addr.String(), "balance", n.state.GetBalance(addr))
	return addr
}

// GetBalance returns the balance of an address, zero if it has never been
// seen.
func (n *Node) GetBalance(addr types.Address) uint64 {
	return n.state.GetBalance(addr)
}

// SubmitTransaction validates and applies a transfer, then buffers it for
// the next block. On success it returns the 1-based ordinal of the upcoming
// block. On insufficient funds nothing is mutated and nothing is buffered.
func (n *Node) SubmitTransaction(ctx context.Context, sender, recipient types.Address, amount uint64) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.state.Transfer(sender, recipient, amount); err != nil {
		return 0, errors.Wrap(err, "transaction rejected")
	}

	index := n.chain.Submit(types.NewTransaction(sender, recipient, amount))
	n.obs.RecordTransactionAccepted(ctx)
	return index, nil
}

// Mine extends the chain by one block assembled from the pending pool.
func (n *Node) Mine(ctx context.Context) (*types.Block, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.chain.Mine(ctx)
}

// ChainSnapshot returns a read-only copy of the full chain.
func (n *Node) ChainSnapshot() []types.Block {
	return n.chain.Snapshot()
}

// VerifyChain checks the integrity of the chain's hash linkage.
func (n *Node) VerifyChain() error {
	return n.chain.Verify()
}

// Balances returns a copy of the full account balance map.
func (n *Node) Balances() map[types.Address]uint64 {
	return n.state.Balances()
}
