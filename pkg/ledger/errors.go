package ledger

import "github.com/pkg/errors"

// ErrInsufficientFunds is returned when a non-mint sender's balance is lower
// than the requested transfer amount. The transfer is rejected before any
// balance is touched, so the caller may retry after receiving funds.
var ErrInsufficientFunds = errors.New("insufficient funds")
