package ledger

import (
	"sync"

	"github.com/peermint/peermint/pkg/types"
	"github.com/pkg/errors"
)

// State represents the account ledger: a mapping from address to balance.
// Lookups default to zero for addresses that have never been seen; no entry
// is created implicitly.
type State struct {
	mu       sync.RWMutex
	grant    uint64
	balances map[types.Address]uint64
}

// NewState creates an empty ledger. Every account created through
// CreateAccount starts with the given initial grant.
func NewState(initialGrant uint64) *State {
	return &State{
		grant:    initialGrant,
		balances: make(map[types.Address]uint64),
	}
}

// CreateAccount generates a globally unique address, credits it with the
// initial grant and returns it.
func (s *State) CreateAccount() types.Address {
	addr := types.NewAddress()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[addr] = s.grant
	return addr
}

// GetBalance retrieves the balance of an address. An address that has never
// been seen resolves to zero rather than an error.
func (s *State) GetBalance(addr types.Address) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[addr]
}

// Transfer validates and applies a value transfer atomically: either the
// full effect happens or none of it does. A transfer from the mint sentinel
// skips the balance check and deducts nothing. The recipient's balance entry
// is created on demand.
func (s *State) Transfer(sender, recipient types.Address, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !sender.IsMint() {
		balance := s.balances[sender]
		if balance < amount {
			return errors.Wrapf(ErrInsufficientFunds, "account %s holds %d, transfer needs %d", sender, balance, amount)
		}
		s.balances[sender] = balance - amount
	}
	s.balances[recipient] += amount
	return nil
}

// Balances returns a copy of the full balance map, for read-only display.
func (s *State) Balances() map[types.Address]uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[types.Address]uint64, len(s.balances))
	for addr, balance := range s.balances {
		out[addr] = balance
	}
	return out
}

// TotalSupply returns the sum of all account balances.
func (s *State) TotalSupply() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total uint64
	for _, balance := range s.balances {
		total += balance
	}
	return total
}
