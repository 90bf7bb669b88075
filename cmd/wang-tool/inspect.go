package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/wang-tool/internal/wang"
)

type inspectCmd struct {
	Set     string `short:"s" long:"set" description:"Only inspect this wang set"`
	Missing int    `short:"m" long:"missing" default:"8" description:"List up to N template ids without tiles"`
	Verbose bool   `short:"v" long:"verbose" description:"List every registered tile"`

	Args configArgs `positional-args:"true"`
}

// Execute prints a report for the selected wang sets.
func (c *inspectCmd) Execute(_ []string) error {
	_, p, err := readProject(c.Args.Config)
	if err != nil {
		return err
	}

	sets, err := selectSets(p, c.Set)
	if err != nil {
		return err
	}

	fmt.Printf("tileset: %s (%d tiles)\n", p.Tileset.Name, p.Tileset.TileCount())
	for _, s := range sets {
		fmt.Println()
		printSet(os.Stdout, s, c.Missing, c.Verbose)
	}

	return nil
}

// printSet writes the report of one set.
func printSet(w io.Writer, s *wang.Set, missing int, verbose bool) {
	fmt.Fprintf(w, "wang set: %s (%s)\n", s.Name, s.Type())

	fmt.Fprintf(w, "colors: %d\n", s.ColorCount())
	for _, col := range s.Colors() {
		fmt.Fprintf(w, "  %d %-12s %s probability %g\n", col.Index(), col.Name, col.Display.Hex(), col.Probability)
	}

	state := "incomplete"
	if s.IsComplete() {
		state = "complete"
	}
	fmt.Fprintf(w, "tiles: %d\n", s.TileCount())
	fmt.Fprintf(w, "ids: %d\n", len(s.IDs()))
	fmt.Fprintf(w, "full ids: %d/%d (%s)\n", s.UniqueFullIDCount(), s.CompleteSetSize(), state)

	if s.ColorCount() > 0 {
		fmt.Fprintf(w, "max distance: %d\n", s.MaximumColorDistance())
		printDistances(w, s)
	}

	if missing > 0 && !s.IsComplete() {
		ids := s.MissingTemplateIDs(missing)
		if len(ids) > 0 {
			fmt.Fprintf(w, "missing:\n")
			for _, id := range ids {
				fmt.Fprintf(w, "  %s\n", id)
			}
		}
	}

	if verbose {
		fmt.Fprintf(w, "registered:\n")
		for _, wt := range s.SortedWangTiles() {
			fmt.Fprintf(w, "  tile %d%s: %s %s\n", wt.Tile.ID, flipSuffix(wt), wt.ID, s.DisplayColor(wt.ID).Hex())
		}
	}
}

// printDistances writes the transition distance matrix, wildcard column first.
func printDistances(w io.Writer, s *wang.Set) {
	n := s.ColorCount()

	var b strings.Builder
	b.WriteString("distances:\n     ")
	for to := 0; to <= n; to++ {
		fmt.Fprintf(&b, "%4d", to)
	}
	b.WriteByte('\n')

	for from := 1; from <= n; from++ {
		fmt.Fprintf(&b, "  %3d", from)
		for to := 0; to <= n; to++ {
			d := s.TransitionPenalty(from, to)
			if d == wang.Unreachable {
				b.WriteString("   -")
				continue
			}
			fmt.Fprintf(&b, "%4d", d)
		}
		b.WriteByte('\n')
	}

	fmt.Fprint(w, b.String())
}

// flipSuffix returns the flip flags of a wang tile as a short suffix.
func flipSuffix(wt wang.Tile) string {
	var flags []string
	if wt.FlippedHorizontally {
		flags = append(flags, "h")
	}
	if wt.FlippedVertically {
		flags = append(flags, "v")
	}
	if wt.FlippedAntiDiagonally {
		flags = append(flags, "d")
	}
	if len(flags) == 0 {
		return ""
	}

	return " [" + strings.Join(flags, "") + "]"
}
