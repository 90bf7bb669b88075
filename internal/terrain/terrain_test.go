package terrain

import (
	"testing"

	"github.com/woozymasta/wang-tool/internal/tileset"
	"github.com/woozymasta/wang-tool/internal/wang"
)

// corners builds a corner id from the top-right, bottom-right, bottom-left and top-left colors.
func corners(tr, br, bl, tl int) wang.ID {
	var id wang.ID
	id.SetCornerColor(0, tr)
	id.SetCornerColor(1, br)
	id.SetCornerColor(2, bl)
	id.SetCornerColor(3, tl)

	return id
}

// completeSet returns a complete two color corner set with one tile per template,
// tile ids matching template numbers, plus a second all-grass tile with id 16.
func completeSet() *wang.Set {
	ts := tileset.New("terrain")
	s := wang.NewSet(ts, "grass-sand", wang.Corner, -1)
	s.AddColor(wang.NewColor("grass", wang.PaletteColor("grass")))
	s.AddColor(wang.NewColor("sand", wang.PaletteColor("sand")))

	for n := uint64(0); n < s.CompleteSetSize(); n++ {
		s.AddTile(ts.AddTile(int(n), ""), s.TemplateIDAt(n))
	}
	s.AddTile(ts.AddTile(16, ""), s.TemplateIDAt(0))

	return s
}

func TestNewGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{name: "ok", w: 3, h: 2, ok: true},
		{name: "zero_width", w: 0, h: 2},
		{name: "negative_height", w: 2, h: -1},
		{name: "too_wide", w: MaxSide + 1, h: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := NewGrid(tt.w, tt.h)
			if (err == nil) != tt.ok {
				t.Fatalf("err=%v want ok=%v", err, tt.ok)
			}
			if tt.ok && (g.Width() != tt.w || g.Height() != tt.h || g.EmptyCount() != tt.w*tt.h) {
				t.Fatalf("grid=%dx%d empty=%d", g.Width(), g.Height(), g.EmptyCount())
			}
		})
	}
}

func TestGridCells(t *testing.T) {
	t.Parallel()

	ts := tileset.New("terrain")
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	for i := 0; i < 9; i++ {
		g.SetCell(i%3, i/3, tileset.NewCell(ts.AddTile(i, "")))
	}
	if g.SetCell(3, 0, tileset.NewCell(ts.AddTile(99, ""))) {
		t.Fatalf("SetCell outside the grid reported success")
	}
	if !g.Cell(-1, 0).IsEmpty() || !g.Cell(0, 3).IsEmpty() {
		t.Fatalf("cells outside the grid are not empty")
	}

	got := g.Surrounding(1, 1)
	want := [wang.NumIndexes]int{1, 2, 5, 8, 7, 6, 3, 0}
	for i := range want {
		if got[i].TileID() != want[i] {
			t.Fatalf("neighbour %v=%d want %d", wang.Index(i), got[i].TileID(), want[i])
		}
	}

	corner := g.Surrounding(0, 0)
	if corner[wang.Top].TileID() != -1 || corner[wang.Right].TileID() != 1 || corner[wang.BottomRight].TileID() != 4 {
		t.Fatalf("corner neighbours=%d,%d,%d", corner[wang.Top].TileID(), corner[wang.Right].TileID(), corner[wang.BottomRight].TileID())
	}
}

func TestFillComplete(t *testing.T) {
	t.Parallel()

	s := completeSet()
	ts := s.Tileset()

	run := func(seed uint64) (*Grid, Stats) {
		g, err := NewGrid(4, 4)
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		g.SetCell(2, 2, tileset.NewCell(ts.FindTile(15)))

		var placed int
		st := Fill(g, s, seed, func(p Placement) {
			placed++
			if p.Penalty != 0 {
				t.Errorf("cell %d,%d: penalty=%d", p.X, p.Y, p.Penalty)
			}
		})
		if placed != st.Filled {
			t.Fatalf("reported %d placements, stats say %d", placed, st.Filled)
		}

		return g, st
	}

	g, st := run(7)
	if want := (Stats{Filled: 15, Exact: 15}); st != want {
		t.Fatalf("stats=%+v want %+v", st, want)
	}
	if g.EmptyCount() != 0 {
		t.Fatalf("empty=%d after fill", g.EmptyCount())
	}
	if n := Mismatches(g, s); n != 0 {
		t.Fatalf("mismatches=%d", n)
	}
	if got := s.IDOfCell(g.Cell(1, 1)); got.CornerColor(1) != 2 {
		t.Fatalf("cell next to the sand tile has id %s", got)
	}

	again, _ := run(7)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.Cell(x, y) != again.Cell(x, y) {
				t.Fatalf("cell %d,%d differs between runs with the same seed", x, y)
			}
		}
	}
}

func TestFillUnmatched(t *testing.T) {
	t.Parallel()

	ts := tileset.New("terrain")
	s := wang.NewSet(ts, "islands", wang.Corner, -1)
	s.AddColor(wang.NewColor("grass", wang.RGBA{A: 255}))
	s.AddColor(wang.NewColor("sand", wang.RGBA{A: 255}))
	grass := ts.AddTile(1, "")
	sand := ts.AddTile(2, "")
	s.AddTile(grass, corners(1, 1, 1, 1))
	s.AddTile(sand, corners(2, 2, 2, 2))

	g, err := NewGrid(3, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.SetCell(0, 0, tileset.NewCell(grass))
	g.SetCell(2, 0, tileset.NewCell(sand))

	st := Fill(g, s, 1, nil)
	if want := (Stats{Filled: 2, Exact: 2, Unmatched: 2}); st != want {
		t.Fatalf("stats=%+v want %+v", st, want)
	}
	if !g.Cell(1, 0).IsEmpty() || !g.Cell(1, 1).IsEmpty() {
		t.Fatalf("cells between grass and sand were filled")
	}
	if g.Cell(0, 1).Tile != grass || g.Cell(2, 1).Tile != sand {
		t.Fatalf("bottom row=%d,%d", g.Cell(0, 1).TileID(), g.Cell(2, 1).TileID())
	}
}

func TestMismatches(t *testing.T) {
	t.Parallel()

	s := completeSet()
	ts := s.Tileset()

	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.SetCell(0, 0, tileset.NewCell(ts.FindTile(0)))
	g.SetCell(1, 0, tileset.NewCell(ts.FindTile(15)))
	if n := Mismatches(g, s); n != 1 {
		t.Fatalf("mismatches=%d want 1", n)
	}

	g.SetCell(1, 1, tileset.NewCell(ts.FindTile(15)))
	if n := Mismatches(g, s); n != 2 {
		t.Fatalf("mismatches=%d want 2", n)
	}
}
