package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAddressUniqueness(t *testing.T) {
	seen := make(map[Address]struct{})
	for i := 0; i < 1000; i++ {
		addr := NewAddress()
		assert.Len(t, addr.String(), 32, "address should be a 32-character hex token")
		assert.False(t, addr.IsMint(), "a generated address must never collide with the mint sentinel")

		_, exists := seen[addr]
		assert.False(t, exists, "generated addresses must be unique")
		seen[addr] = struct{}{}
	}
}

func TestMintSentinel(t *testing.T) {
	assert.True(t, MintAddress.IsMint())
	assert.Equal(t, "0", MintAddress.String())
}
