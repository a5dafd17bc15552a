package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/davoli/bilancio"
	"github.com/davoli/bilancio/renderer"
	"github.com/google/subcommands"
)

// recurringCmd holds the flags for the 'recurring' subcommand.
type recurringCmd struct {
	year  int
	month int
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "reconcile the recurring obligations of a month" }
func (*recurringCmd) Usage() string {
	return `bilancio recurring [-year <year>] [-month <month>]

  Matches the recurring obligations due in a month against the actual
  postings and displays each one as paid, pending or overdue.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	today := bilancio.Today()
	f.IntVar(&c.year, "year", today.Year(), "Year to reconcile.")
	f.IntVar(&c.month, "month", int(today.Month()), "Month to reconcile (1-12).")
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Invalid month %d\n", c.month)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	report := ledger.Reconcile(c.year, time.Month(c.month), bilancio.Today())
	printMarkdown(renderer.RecurringMarkdown(report))

	return subcommands.ExitSuccess
}
