package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a backup" }
func (*importCmd) Usage() string {
	return `cab import [<file>]

  Restores a backup document, from a file or stdin. Collections present in
  the document replace the stored ones; absent collections are left alone. A
  malformed document changes nothing.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data []byte
	var err error
	switch f.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(f.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one backup file")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}

	if !OpenRepository().Import(string(data)) {
		fmt.Fprintln(os.Stderr, "Error: not a valid backup document, nothing imported")
		return subcommands.ExitFailure
	}
	fmt.Println("Backup imported")
	return subcommands.ExitSuccess
}
