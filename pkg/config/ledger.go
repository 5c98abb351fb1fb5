package config

// DefaultInitialGrant is the balance credited to every newly created account.
const DefaultInitialGrant uint64 = 100

// Ledger holds the account-ledger parameters.
type Ledger struct {
	// InitialGrant is the starting balance minted into each new account.
	InitialGrant uint64 `yaml:"initial_grant"`
}
