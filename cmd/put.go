package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// putCmd upserts an account from a JSON document.
type putCmd struct {
	file string
}

func (*putCmd) Name() string     { return "put" }
func (*putCmd) Synopsis() string { return "create or update an account from a JSON document" }
func (*putCmd) Usage() string {
	return `cab put [-f <file>]

  Reads one account as JSON, from a file or stdin, and upserts it. An account
  with a known id is replaced in place; a new id is appended. Timestamps are
  stamped by the command.

Usage Examples:
# Create an account from a prepared document.
$ cab put -f newaccount.json

`
}

func (c *putCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File holding the account JSON. Reads stdin by default.")
}

func (c *putCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data []byte
	var err error
	if c.file == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading account document: %v\n", err)
		return subcommands.ExitFailure
	}

	var account camdash.Account
	if err := json.Unmarshal(data, &account); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing account document: %v\n", err)
		return subcommands.ExitFailure
	}
	r := OpenRepository()
	if account.ID == "" {
		account.ID = r.NewID()
	}
	if account.Name == "" {
		fmt.Fprintln(os.Stderr, "Error: account name is required")
		return subcommands.ExitUsageError
	}

	saved := r.SaveAccount(account)
	fmt.Printf("Saved account %q (%s)\n", saved.Name, saved.ID)
	return subcommands.ExitSuccess
}
