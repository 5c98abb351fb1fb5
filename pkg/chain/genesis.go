package chain

import "github.com/peermint/peermint/pkg/types"

// Genesis block constants. The first block is synthesized at initialization
// with fixed parameters; there is no predecessor to extend, so its proof is
// not mined and its previous-hash is a sentinel.
const (
	GenesisIndex        uint64 = 1
	GenesisProof        uint64 = 100
	GenesisPreviousHash        = "1"
)

// newGenesisBlock builds the first block of a fresh chain.
func newGenesisBlock() *types.Block {
	return types.NewBlock(GenesisIndex, []types.Transaction{}, GenesisProof, GenesisPreviousHash)
}
