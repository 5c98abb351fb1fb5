package cmd

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/peermint/peermint/pkg/config"
	"github.com/peermint/peermint/pkg/logger"
	"github.com/peermint/peermint/pkg/node"
	"github.com/peermint/peermint/pkg/observability"
	"github.com/peermint/peermint/pkg/pow"
	"github.com/peermint/peermint/pkg/shutdown"
	"github.com/peermint/peermint/pkg/types"
)

func NodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "node",
		Usage: "Run peermint ledger operations",
		Subcommands: []*cli.Command{
			{
				Name:  "mine",
				Usage: "Mine a number of blocks over an empty pool",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "blocks",
						Aliases: []string{"b"},
						Usage:   "Number of blocks to mine",
						Value:   1,
					},
				},
				Action: mineAction,
			},
			{
				Name:   "demo",
				Usage:  "Run the end-to-end account, transfer and mining walkthrough",
				Action: demoAction,
			},
		},
	}
}

// mineAction mines the requested number of blocks. An interrupt cancels the
// in-flight proof search and exits cleanly with whatever was mined so far.
func mineAction(c *cli.Context) error {
	gLog := logger.G()

	shutdownManager := shutdown.NewManager(c.Context, gLog)
	shutdownManager.Start()
	ctx := shutdownManager.Context()

	obs, err := observability.Initialize(ctx, config.G().Observability, gLog)
	if err != nil {
		return errors.Wrap(err, "failure to initialize observability")
	}
	defer func() {
		if err := obs.Shutdown(c.Context); err != nil {
			gLog.Warn("Failed to shut down observability", "error", err)
		}
	}()

	n := node.New(config.G(), gLog, obs)
	for i := 0; i < c.Int("blocks"); i++ {
		block, err := n.Mine(ctx)
		if err != nil {
			if errors.Is(err, pow.ErrSearchAborted) {
				gLog.Warn("Mining interrupted", "minedBlocks", i)
				break
			}
			return errors.Wrap(err, "failure to mine block")
		}
		gLog.Info("Block appended", "index", block.Index, "proof", block.Proof)
	}

	renderChain(n.ChainSnapshot())
	return n.VerifyChain()
}

// demoAction reproduces the canonical walkthrough: two funded accounts, a
// transfer of 10 units, one mined block, and a chain integrity check.
func demoAction(c *cli.Context) error {
	gLog := logger.G()

	shutdownManager := shutdown.NewManager(c.Context, gLog)
	shutdownManager.Start()
	ctx := shutdownManager.Context()

	obs, err := observability.Initialize(ctx, config.G().Observability, gLog)
	if err != nil {
		return errors.Wrap(err, "failure to initialize observability")
	}
	defer func() {
		if err := obs.Shutdown(c.Context); err != nil {
			gLog.Warn("Failed to shut down observability", "error", err)
		}
	}()

	n := node.New(config.G(), gLog, obs)

	alice := n.CreateAccount()
	bob := n.CreateAccount()

	ordinal, err := n.SubmitTransaction(ctx, alice, bob, 10)
	if err != nil {
		return errors.Wrap(err, "failure to submit transaction")
	}
	gLog.Info("Transaction accepted", "upcomingBlock", ordinal)

	if _, err := n.Mine(ctx); err != nil {
		return errors.Wrap(err, "failure to mine block")
	}

	// Demonstrate the rejection path as well: the transfer exceeds the
	// sender's remaining balance and leaves every balance untouched.
	if _, err := n.SubmitTransaction(ctx, alice, bob, 1000); err != nil {
		gLog.Info("Oversized transfer rejected as expected", "error", err.Error())
	}

	renderBalances(map[string]types.Address{"alice": alice, "bob": bob}, n)
	renderChain(n.ChainSnapshot())
	return n.VerifyChain()
}
