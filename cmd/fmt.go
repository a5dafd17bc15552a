package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the snapshot file in canonical form" }
func (*fmtCmd) Usage() string {
	return `bilancio fmt

  Reads the snapshot file and rewrites it with stable field order and
  chronological records. Malformed lines are dropped.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	// write to a temp file next to the snapshot, then swap
	tmp, err := os.CreateTemp(".", "bilancio-fmt-*.jsonl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating temporary file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer os.Remove(tmp.Name())

	if err := ledger.EncodeLedger(tmp); err != nil {
		tmp.Close()
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tmp.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.Rename(tmp.Name(), *snapshotFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}

	if n := ledger.Skipped(); n > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d malformed records.\n", n)
	}
	return subcommands.ExitSuccess
}
