package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an account" }
func (*rmCmd) Usage() string {
	return `cab rm <account-id>

  Removes an account and its whole history. There is no undo besides a backup.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one account id")
		return subcommands.ExitUsageError
	}
	r := OpenRepository()
	a, ok := r.Account(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: account %q not found\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	r.DeleteAccount(a.ID)
	fmt.Printf("Removed account %q (%s)\n", a.Name, a.ID)
	return subcommands.ExitSuccess
}
