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

// wealthCmd holds the flags for the 'wealth' subcommand.
type wealthCmd struct {
	year int
}

func (*wealthCmd) Name() string     { return "wealth" }
func (*wealthCmd) Synopsis() string { return "display the year-end wealth snapshot" }
func (*wealthCmd) Usage() string {
	return `bilancio wealth [-year <year>]

  Displays every account's balance at the end of the year, expressed in the
  base currency at year-end exchange rates, and the evolution from the
  previous year.
`
}

func (c *wealthCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", bilancio.Today().Year(), "Year to report on.")
}

func (c *wealthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	valuator := NewValuator()
	snapshot := ledger.WealthSnapshot(ctx, c.year, *baseCurrency, valuator)
	evolution := ledger.WealthEvolution(ctx, c.year, *baseCurrency, valuator)
	printMarkdown(renderer.WealthMarkdown(snapshot, evolution))

	return subcommands.ExitSuccess
}
