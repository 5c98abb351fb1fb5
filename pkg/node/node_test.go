package node

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/ledger"
	"github.com/peermint/peermint/pkg/logger"
	"github.com/peermint/peermint/pkg/pow"
	"github.com/peermint/peermint/pkg/types"
)

func newTestNode() *Node {
	return New(config.Default(), logger.NewNoOpLogger(), nil)
}

// TestTransferAndMineScenario drives the full flow: two funded accounts, one
// transfer, one mined block, and every resulting invariant.
func TestTransferAndMineScenario(t *testing.T) {
	n := newTestNode()
	ctx := context.Background()
	engine := pow.NewEngine()

	a := n.CreateAccount()
	b := n.CreateAccount()
	require.Equal(t, uint64(100), n.GetBalance(a))
	require.Equal(t, uint64(100), n.GetBalance(b))

	ordinal, err := n.SubmitTransaction(ctx, a, b, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ordinal, "the transfer is slated for the second block")

	block, err := n.Mine(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint64(90), n.GetBalance(a))
	assert.Equal(t, uint64(110), n.GetBalance(b))

	snapshot := n.ChainSnapshot()
	require.Len(t, snapshot, 2)

	genesisHash, err := snapshot[0].Hash()
	require.NoError(t, err)
	assert.Equal(t, genesisHash, block.PreviousHash)
	assert.True(t, engine.Validate(snapshot[0].Proof, block.Proof))

	require.NoError(t, n.VerifyChain())
}

func TestSubmitTransactionInsufficientFunds(t *testing.T) {
	n := newTestNode()
	ctx := context.Background()

	a := n.CreateAccount()
	b := n.CreateAccount()

	_, err := n.SubmitTransaction(ctx, a, b, 1000)
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	assert.Equal(t, uint64(100), n.GetBalance(a), "a rejected transfer leaves the sender untouched")
	assert.Equal(t, uint64(100), n.GetBalance(b), "a rejected transfer leaves the recipient untouched")

	block, err := n.Mine(ctx)
	require.NoError(t, err)
	assert.Empty(t, block.Transactions, "a rejected transfer never reaches the pool")
}

func TestMintSubmission(t *testing.T) {
	n := newTestNode()
	ctx := context.Background()

	recipient := n.CreateAccount()

	_, err := n.SubmitTransaction(ctx, types.MintAddress, recipient, 1000000)
	require.NoError(t, err, "the mint sentinel has no balance cap")
	assert.Equal(t, uint64(1000100), n.GetBalance(recipient))
}

func TestGetBalanceUnknownAddress(t *testing.T) {
	n := newTestNode()
	assert.Equal(t, uint64(0), n.GetBalance("nobody"))
}

func TestMultipleBlocks(t *testing.T) {
	n := newTestNode()
	ctx := context.Background()

	a := n.CreateAccount()
	b := n.CreateAccount()

	for i := 0; i < 3; i++ {
		_, err := n.SubmitTransaction(ctx, a, b, 5)
		require.NoError(t, err)
		_, err = n.Mine(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, uint64(85), n.GetBalance(a))
	assert.Equal(t, uint64(115), n.GetBalance(b))
	assert.Len(t, n.ChainSnapshot(), 4)
	require.NoError(t, n.VerifyChain())
}
