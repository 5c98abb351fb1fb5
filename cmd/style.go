package cmd

import (
	"sort"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/peermint/peermint/pkg/logger"
	"github.com/peermint/peermint/pkg/node"
	"github.com/peermint/peermint/pkg/types"
)

// renderChain prints the chain as a table, one row per block.
func renderChain(blocks []types.Block) {
	pterm.DefaultSection.Println("Chain")

	data := pterm.TableData{{"Index", "Mined at", "Txs", "Proof", "Previous hash"}}
	for i := range blocks {
		b := &blocks[i]
		data = append(data, []string{
			strconv.FormatUint(b.Index, 10),
			time.Unix(0, b.Timestamp).Format(time.RFC3339),
			strconv.Itoa(len(b.Transactions)),
			strconv.FormatUint(b.Proof, 10),
			shortHash(b.PreviousHash),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logger.G().Warn("Failed to render chain table", "error", err)
	}
}

// renderBalances prints the named accounts and their balances.
func renderBalances(named map[string]types.Address, n *node.Node) {
	pterm.DefaultSection.Println("Balances")

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	data := pterm.TableData{{"Account", "Address", "Balance"}}
	for _, name := range names {
		addr := named[name]
		data = append(data, []string{
			name,
			addr.String(),
			strconv.FormatUint(n.GetBalance(addr), 10),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		logger.G().Warn("Failed to render balance table", "error", err)
	}
}

// shortHash truncates a digest for display.
func shortHash(h string) string {
	if len(h) <= 16 {
		return h
	}
	return h[:16] + "…"
}
