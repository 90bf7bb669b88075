// Command wang-tool inspects Wang sets and paints terrain with them.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/wang-tool/internal/vars"
)

type rootCmd struct {
	Version  versionCmd  `command:"version" description:"Show version information"`
	Inspect  inspectCmd  `command:"inspect" description:"Show colors, distances and completeness of wang sets"`
	Fill     fillCmd     `command:"fill" description:"Fill the empty cells of the document map"`
	ID       idCmd       `command:"id" description:"Parse, transform and print a wang id"`
	Template templateCmd `command:"template" description:"List the template ids of a wang set"`
	Generate generateCmd `command:"generate" description:"Generate a document from tile image names"`
	Legacy   legacyCmd   `command:"legacy" description:"Convert wang sets to and from the binary tile table"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	vars.Print()
	return nil
}
