package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// camsCmd holds the flags for the 'cams' subcommand.
type camsCmd struct {
	add   string
	email string
}

func (*camsCmd) Name() string     { return "cams" }
func (*camsCmd) Synopsis() string { return "list or extend the CAM roster" }
func (*camsCmd) Usage() string {
	return `cab cams [-add <name> [-email <address>]]

  Lists the credit account managers. With -add, appends one to the roster.
`
}

func (c *camsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a manager to add to the roster.")
	f.StringVar(&c.email, "email", "", "Email of the added manager.")
}

func (c *camsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := OpenRepository()

	if c.add != "" {
		cam := r.AddCAM(camdash.CAM{Name: c.add, Email: c.email})
		fmt.Printf("Added CAM %q (%s)\n", cam.Name, cam.ID)
		return subcommands.ExitSuccess
	}

	cams := r.CAMs()
	var b strings.Builder
	fmt.Fprintf(&b, "# CAMs (%d)\n\n", len(cams))
	if len(cams) > 0 {
		fmt.Fprintln(&b, "| Name | Email | Accounts |")
		fmt.Fprintln(&b, "|:---|:---|---:|")
		accounts := r.Accounts()
		for _, cam := range cams {
			owned := len(camdash.Filter(accounts, camdash.FilterState{CAMOwner: cam.Name}))
			fmt.Fprintf(&b, "| %s | %s | %d |\n", cam.Name, cam.Email, owned)
		}
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
