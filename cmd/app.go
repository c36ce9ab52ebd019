// Package cmd implements the CLI application to manage the collections
// dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/camdash"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&listCmd{},
	&dashboardCmd{},
	&accountCmd{},
	&putCmd{},
	&rmCmd{},
	&timelineCmd{},
	&summaryCmd{},
	&dueCmd{},
	&decideCmd{},
	&reviewCmd{},
	&outcomeCmd{},
	&healthCmd{},
	&weeklyCmd{},
	&camsCmd{},
	&exportCmd{},
	&importCmd{},
	&queryCmd{},
	&seedCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storeDir = flag.String("store", defaultStoreDir(), "Path to the dashboard data folder")

func defaultStoreDir() string {
	if dir := os.Getenv("CAMDASH_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".camdash"
	}
	return filepath.Join(home, ".camdash")
}

// OpenRepository opens the repository over the app store folder. The folder is
// created lazily on the first write, so opening never fails.
func OpenRepository() *camdash.Repository {
	return camdash.NewRepository(camdash.NewStore(*storeDir))
}

// printMarkdown renders a markdown document for the terminal. When styling
// fails the raw markdown is still printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
