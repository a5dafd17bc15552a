// Package cmd implements the CLI application to query a finance snapshot.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/davoli/bilancio"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Commands lists every subcommand the binary registers.
var Commands = []subcommands.Command{
	&cashflowCmd{},
	&wealthCmd{},
	&investCmd{},
	&recurringCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "bilancio.jsonl", "Path to the snapshot file containing the finance records (JSONL format)")
var baseCurrency = flag.String("currency", "CHF", "Reporting base currency")
var offline = flag.Bool("offline", false, "Do not fetch exchange rates; value foreign currencies at the identity rate")
var verbose = flag.Bool("v", false, "Verbose logging")

// Setup configures the process-wide logger from the global flags.
func Setup() {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// DecodeSnapshot loads the snapshot from the app snapshot file.
func DecodeSnapshot() (*bilancio.Ledger, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	ledger, err := bilancio.DecodeLedger(f)
	if err != nil {
		return nil, err
	}
	if n := ledger.Skipped(); n > 0 {
		log.Warn().Int("records", n).Msg("snapshot contains malformed records, results are best-effort")
	}
	return ledger, nil
}

// NewValuator builds the valuator from the global flags: live Frankfurter
// rates by default, an empty static table when offline. The empty table
// makes every foreign conversion degrade to the identity rate, which the
// reports surface as a partial-precision notice.
func NewValuator() *bilancio.Valuator {
	if *offline {
		return bilancio.NewValuator(bilancio.NewStaticRates())
	}
	return bilancio.NewValuator(bilancio.NewFrankfurterRates())
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
