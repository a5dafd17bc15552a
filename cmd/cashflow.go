package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davoli/bilancio"
	"github.com/davoli/bilancio/renderer"
	"github.com/google/subcommands"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	year int
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the yearly cashflow report" }
func (*cashflowCmd) Usage() string {
	return `bilancio cashflow [-year <year>]

  Displays the monthly income, fixed and variable expenses and savings of a
  year, with the liquidity reconciliation at the bottom.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", bilancio.Today().Year(), "Year to report on.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.Cashflow(c.year, *baseCurrency)
	printMarkdown(renderer.CashflowMarkdown(report))

	return subcommands.ExitSuccess
}
