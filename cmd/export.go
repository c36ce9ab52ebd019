package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
	stdout bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup of the whole dataset" }
func (*exportCmd) Usage() string {
	return `cab export [-o <file>] [-stdout]

  Writes every stored collection as one JSON document. The default file name
  carries today's date.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the dated backup name.")
	f.BoolVar(&c.stdout, "stdout", false, "Write to stdout instead of a file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()
	text, err := r.Export()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.stdout {
		fmt.Println(text)
		return subcommands.ExitSuccess
	}
	filename := c.output
	if filename == "" {
		filename = camdash.BackupFilename(camdash.DateOf(r.Now()))
	}
	if err := os.WriteFile(filename, []byte(text+"\n"), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", filename)
	return subcommands.ExitSuccess
}
