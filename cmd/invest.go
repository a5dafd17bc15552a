package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davoli/bilancio/renderer"
	"github.com/google/subcommands"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	name string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "display the investment performance overview" }
func (*investCmd) Usage() string {
	return `bilancio invest [-name <investment>]

  Displays the latest value, total invested, net gain and ROI of every
  investment, with personal and retirement roll-ups. With -name, displays
  the full valuation history of a single investment instead.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Show the full trend of this investment only.")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.InvestmentOverview(ctx, *baseCurrency, NewValuator())

	if c.name != "" {
		for _, s := range report.Investments {
			if strings.EqualFold(s.Investment.Name, c.name) {
				printMarkdown(renderer.TrendMarkdown(s))
				return subcommands.ExitSuccess
			}
		}
		fmt.Fprintf(os.Stderr, "Unknown investment %q\n", c.name)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.InvestMarkdown(report))

	return subcommands.ExitSuccess
}
