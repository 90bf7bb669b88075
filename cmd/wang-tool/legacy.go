package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/legacy"
	"github.com/woozymasta/wang-tool/internal/wangcfg"
)

type legacyCmd struct {
	Export legacyExportCmd `command:"export" description:"Write a wang set as a binary tile table"`
	Import legacyImportCmd `command:"import" description:"Add a binary tile table to a document as a wang set"`
	Info   legacyInfoCmd   `command:"info" description:"Show the header of a binary tile table"`
}

type legacyExportCmd struct {
	Set     string `short:"s" long:"set" description:"Wang set (default: the only set)"`
	Verbose bool   `short:"v" long:"verbose" description:"List tiles that cannot be stored"`

	Args struct {
		Config string `positional-arg-name:"CONFIG" required:"true" description:"Document file (yaml/json)"`
		Output string `positional-arg-name:"OUT" required:"true" description:"Output table file"`
	} `positional-args:"true"`
}

// Execute writes the selected set as a tile table.
func (c *legacyExportCmd) Execute(_ []string) error {
	_, p, err := readProject(c.Args.Config)
	if err != nil {
		return err
	}

	s, err := pickSet(p, c.Set)
	if err != nil {
		return err
	}

	tbl, skipped := legacy.FromSet(s)
	if c.Verbose {
		for _, wt := range skipped {
			fmt.Fprintf(os.Stderr, "skip: tile %d (%s uses a color above %d)\n", wt.Tile.ID, wt.ID, legacy.MaxColorCount)
		}
	}

	if err := legacy.WriteFile(c.Args.Output, tbl); err != nil {
		return err
	}

	fmt.Printf("exported %s\n", c.Args.Output)
	fmt.Printf("entries: %d\n", len(tbl.Entries))
	fmt.Printf("skipped: %d\n", len(skipped))

	return nil
}

type legacyImportCmd struct {
	Format  string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	Replace bool   `short:"r" long:"replace" description:"Replace a set with the same name instead of failing"`

	Args struct {
		Table  string `positional-arg-name:"TABLE" required:"true" description:"Binary tile table"`
		Config string `positional-arg-name:"CONFIG" required:"true" description:"Document holding the tileset (yaml/json)"`
		Output string `positional-arg-name:"OUT" description:"Output document file (default: stdout)"`
	} `positional-args:"true"`
}

// Execute adds the table to the document as a wang set.
func (c *legacyImportCmd) Execute(_ []string) error {
	tbl, err := legacy.ReadFile(c.Args.Table)
	if err != nil {
		return err
	}

	doc, p, err := readProject(c.Args.Config)
	if err != nil {
		return err
	}

	s, err := tbl.Build(p.Tileset)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range p.Sets {
		if !strings.EqualFold(existing.Name, s.Name) {
			continue
		}
		if !c.Replace {
			return errors.Newf("wang set %q already exists, use --replace", s.Name)
		}
		p.Sets[i] = s
		replaced = true
	}
	if !replaced {
		p.Sets = append(p.Sets, s)
	}

	out := wangcfg.Export(p)
	out.Map = doc.Map

	raw, err := wangcfg.Encode(out, strings.ToLower(c.Format))
	if err != nil {
		return err
	}

	return writeOutput(c.Args.Output, raw)
}

type legacyInfoCmd struct {
	Args struct {
		Path string `positional-arg-name:"TABLE" required:"true" description:"Binary tile table"`
	} `positional-args:"true"`
}

// Execute prints the table header.
func (c *legacyInfoCmd) Execute(_ []string) error {
	ok, err := legacy.Sniff(c.Args.Path)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Newf("%s is not a tile table", c.Args.Path)
	}

	tbl, err := legacy.ReadFile(c.Args.Path)
	if err != nil {
		return err
	}

	fmt.Printf("wang set: %s (%s)\n", tbl.Name, tbl.Type)
	fmt.Printf("colors: %d\n", tbl.ColorCount)
	fmt.Printf("entries: %d\n", len(tbl.Entries))

	return nil
}
