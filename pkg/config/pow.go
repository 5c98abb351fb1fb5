package config

import "github.com/pkg/errors"

// Pow holds the proof-of-work search options. The difficulty predicate itself
// is fixed; only the way the scan is executed is configurable.
type Pow struct {
	// Workers is the number of goroutines scanning for a proof. With 1 the
	// scan is a plain sequential loop. Parallel workers scan disjoint ranges
	// and return the same proof the sequential scan would.
	Workers int `yaml:"workers"`

	// MaxAttempts bounds the search when non-zero. A bounded search that
	// reaches the limit without success fails instead of running forever.
	MaxAttempts uint64 `yaml:"max_attempts"`
}

func (p Pow) Validate() error {
	if p.Workers < 0 {
		return errors.New("workers cannot be negative")
	}
	return nil
}
