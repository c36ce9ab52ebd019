package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load the demonstration dataset into an empty store" }
func (*seedCmd) Usage() string {
	return `cab seed

  Seeds an empty store with the demonstration accounts and CAM roster. A
  store that already has accounts is left untouched.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()
	if !r.Init() {
		fmt.Println("Store already has accounts, nothing seeded")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Seeded %d accounts and %d CAMs\n", len(r.Accounts()), len(r.CAMs()))
	return subcommands.ExitSuccess
}
