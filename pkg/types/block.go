package types

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Block represents one entry in the chain. Blocks are immutable once appended.
type Block struct {
	Index        uint64        // 1-based position of the block in the chain
	Timestamp    int64         // Unix nanoseconds at assembly time
	Transactions []Transaction // Transactions included in the block, insertion order
	Proof        uint64        // Proof satisfying the difficulty predicate
	PreviousHash string        // Hex digest of the prior block, or the genesis sentinel
}

// NewBlock assembles a block stamped with the current wall-clock time.
func NewBlock(index uint64, transactions []Transaction, proof uint64, previousHash string) *Block {
	return &Block{
		Index:        index,
		Timestamp:    time.Now().UnixNano(),
		Transactions: transactions,
		Proof:        proof,
		PreviousHash: previousHash,
	}
}

// CanonicalBytes serializes the block for hashing. The block is lowered to
// nested maps and marshaled with encoding/json, which emits object keys in
// sorted order, so two blocks with field-for-field identical content always
// produce identical bytes regardless of how the values were assembled. Every
// numeric field is an integer, so the encoding carries no floating-point
// representation ambiguity.
func (b *Block) CanonicalBytes() ([]byte, error) {
	txs := make([]map[string]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = tx.canonical()
	}
	data, err := json.Marshal(map[string]any{
		"index":         b.Index,
		"timestamp":     b.Timestamp,
		"transactions":  txs,
		"proof":         b.Proof,
		"previous_hash": b.PreviousHash,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal canonical block encoding")
	}
	return data, nil
}

// Hash computes the block digest: SHA-256 over the canonical encoding,
// rendered as lowercase hex.
func (b *Block) Hash() (string, error) {
	data, err := b.CanonicalBytes()
	if err != nil {
		return "", err
	}
	return SumHex(data), nil
}

// Copy returns a value copy of the block with its own transaction slice, so
// callers holding a snapshot cannot mutate appended chain state.
func (b *Block) Copy() Block {
	dup := *b
	dup.Transactions = make([]Transaction, len(b.Transactions))
	copy(dup.Transactions, b.Transactions)
	return dup
}
