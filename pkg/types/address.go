package types

import (
	"strings"

	"github.com/google/uuid"
)

// Address identifies an account. Generated addresses are opaque 32-character
// hex tokens derived from a random 128-bit identifier, so the collision
// probability over a process lifetime is negligible.
type Address string

// MintAddress is the reserved sender signifying token issuance. Transfers
// originating from it deduct nothing and skip the balance check. Generated
// addresses are hex tokens and can never take this value.
const MintAddress Address = "0"

// NewAddress generates a globally unique account address.
func NewAddress() Address {
	return Address(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// IsMint reports whether the address is the mint sentinel.
func (a Address) IsMint() bool {
	return a == MintAddress
}

// String returns the address as a plain string.
func (a Address) String() string {
	return string(a)
}
