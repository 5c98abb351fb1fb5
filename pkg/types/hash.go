package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSize defines the size of a SHA-256 hash in bytes.
const HashSize = 32

// SumHex computes the SHA-256 digest of the input data and renders it as a
// lowercase hexadecimal string.
func SumHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
