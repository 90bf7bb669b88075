package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/woozymasta/wang-tool/internal/terrain"
	"github.com/woozymasta/wang-tool/internal/wangcfg"
)

type fillCmd struct {
	Format  string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	Set     string `short:"s" long:"set" description:"Wang set to paint with (default: map wang_set)"`
	Seed    int64  `long:"seed" default:"-1" description:"Random seed (default: map seed)"`
	Width   int    `long:"width" description:"Map width when the document has no map"`
	Height  int    `long:"height" description:"Map height when the document has no map"`
	Verbose bool   `short:"v" long:"verbose" description:"Verbose per-cell output"`

	Args struct {
		Config string `positional-arg-name:"CONFIG" required:"true" description:"Document file (yaml/json)"`
		Output string `positional-arg-name:"OUT" description:"Output document file (default: stdout)"`
	} `positional-args:"true"`
}

// Execute fills the document map and writes the document with the filled map.
func (c *fillCmd) Execute(_ []string) error {
	doc, p, err := readProject(c.Args.Config)
	if err != nil {
		return err
	}

	var m wangcfg.Map
	switch {
	case doc.Map != nil:
		m = *doc.Map
	case c.Width > 0 && c.Height > 0:
		m = wangcfg.Map{Width: c.Width, Height: c.Height}
	default:
		return errors.New("document has no map, set --width and --height")
	}
	if c.Set != "" {
		m.Set = c.Set
	}
	if c.Seed >= 0 {
		m.Seed = uint64(c.Seed)
	}

	s, err := pickSet(p, m.Set)
	if err != nil {
		return err
	}
	m.Set = s.Name

	g, err := p.BuildMap(m)
	if err != nil {
		return err
	}

	stats := terrain.Fill(g, s, m.Seed, func(pl terrain.Placement) {
		if c.Verbose {
			fmt.Fprintf(os.Stderr, "add: %d,%d %s (want %s, penalty %d)\n", pl.X, pl.Y, pl.Placed, pl.Target, pl.Penalty)
		}
	})
	if c.Verbose {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.Cell(x, y).IsEmpty() {
					fmt.Fprintf(os.Stderr, "skip: %d,%d (no matching tile)\n", x, y)
				}
			}
		}
	}

	filled := wangcfg.ExportMap(g, s.Name, m.Seed)
	doc.Map = &filled

	out, err := wangcfg.Encode(doc, strings.ToLower(c.Format))
	if err != nil {
		return err
	}
	if err := writeOutput(c.Args.Output, out); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "filled: %d\n", stats.Filled)
	fmt.Fprintf(os.Stderr, "exact: %d\n", stats.Exact)
	fmt.Fprintf(os.Stderr, "approximate: %d\n", stats.Approximate)
	fmt.Fprintf(os.Stderr, "unmatched: %d\n", stats.Unmatched)
	fmt.Fprintf(os.Stderr, "mismatched pairs: %d\n", terrain.Mismatches(g, s))

	return nil
}
