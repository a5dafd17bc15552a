package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/davoli/bilancio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion builds the bash/zsh completion tree from the registered
// subcommands. It never returns when the shell is asking for completions.
func completion(name string) {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"snapshot-file": predict.Files("*.jsonl"),
			"currency":      predict.Set{"CHF", "EUR", "USD"},
			"offline":       predict.Nothing,
			"v":             predict.Nothing,
		},
	}
	root.Complete(name)
}

func main() {
	name := path.Base(os.Args[0])
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}
