package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/camdash/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: replies and exits when invoked by the completion
	// machinery, a no-op otherwise.
	subs := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub:   subs,
		Flags: map[string]complete.Predictor{"store": predict.Dirs("*")},
	}
	completion.Complete("cab")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
