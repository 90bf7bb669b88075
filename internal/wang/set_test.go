package wang

import (
	"testing"

	"github.com/woozymasta/wang-tool/internal/tileset"
)

// corners builds a corner id from the top-right, bottom-right, bottom-left and top-left colors.
func corners(tr, br, bl, tl int) ID {
	return makeID(0, tr, 0, br, 0, bl, 0, tl)
}

// newSet returns a set of the given type with named colors and an empty tileset.
func newSet(typ Type, names ...string) (*Set, *tileset.Tileset) {
	ts := tileset.New("terrain")
	s := NewSet(ts, "test", typ, -1)
	for _, n := range names {
		s.AddColor(NewColor(n, PaletteColor(n)))
	}

	return s, ts
}

func TestCompleteSetSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		typ    Type
		colors int
		want   uint64
	}{
		{name: "corner_0", typ: Corner, colors: 0, want: 0},
		{name: "corner_2", typ: Corner, colors: 2, want: 16},
		{name: "corner_3", typ: Corner, colors: 3, want: 81},
		{name: "edge_3", typ: Edge, colors: 3, want: 81},
		{name: "mixed_2", typ: Mixed, colors: 2, want: 256},
		{name: "mixed_3", typ: Mixed, colors: 3, want: 6561},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newSet(tt.typ)
			s.SetColorCount(tt.colors)
			if got := s.CompleteSetSize(); got != tt.want {
				t.Fatalf("size=%d want %d", got, tt.want)
			}
		})
	}
}

func TestCornerSetComplete(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "grass", "sand")
	if s.IsComplete() {
		t.Fatalf("empty set reported complete")
	}

	for n := uint64(0); n < 16; n++ {
		s.AddTile(ts.AddTile(int(n), ""), s.TemplateIDAt(n))
		if n < 15 && s.IsComplete() {
			t.Fatalf("complete after %d tiles", n+1)
		}
	}

	if !s.IsComplete() || s.CompleteSetSize() != 16 || s.UniqueFullIDCount() != 16 {
		t.Fatalf("complete=%v size=%d unique=%d", s.IsComplete(), s.CompleteSetSize(), s.UniqueFullIDCount())
	}
	if missing := s.MissingTemplateIDs(10); len(missing) != 0 {
		t.Fatalf("missing=%v", missing)
	}

	s.AddTile(ts.FindTile(5), 0)
	if s.IsComplete() {
		t.Fatalf("still complete after removing a tile")
	}
	missing := s.MissingTemplateIDs(10)
	if len(missing) != 1 || missing[0] != s.TemplateIDAt(5) {
		t.Fatalf("missing=%v want [%s]", missing, s.TemplateIDAt(5))
	}
}

func TestTemplateIDAt(t *testing.T) {
	t.Parallel()

	s, _ := newSet(Corner, "a", "b")
	tests := []struct {
		n    uint64
		want ID
	}{
		{n: 0, want: corners(1, 1, 1, 1)},
		{n: 1, want: corners(2, 1, 1, 1)},
		{n: 2, want: corners(1, 2, 1, 1)},
		{n: 8, want: corners(1, 1, 1, 2)},
		{n: 15, want: corners(2, 2, 2, 2)},
	}
	for _, tt := range tests {
		if got := s.TemplateIDAt(tt.n); got != tt.want {
			t.Fatalf("template %d: got=%s want %s", tt.n, got, tt.want)
		}
	}
	mustViolate(t, func() { s.TemplateIDAt(16) })

	e, _ := newSet(Edge, "a", "b", "c")
	if got, want := e.TemplateIDAt(80), makeID(3, 0, 3, 0, 3, 0, 3, 0); got != want {
		t.Fatalf("edge template: got=%s want %s", got, want)
	}
}

func TestIDIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
		id   ID
		ok   bool
	}{
		{name: "zero", typ: Corner, id: 0, ok: true},
		{name: "corner_ok", typ: Corner, id: corners(1, 2, 1, 2), ok: true},
		{name: "corner_with_edge", typ: Corner, id: makeID(1, 1, 0, 1, 0, 1, 0, 1), ok: false},
		{name: "corner_color_too_big", typ: Corner, id: corners(3, 1, 1, 1), ok: false},
		{name: "edge_ok", typ: Edge, id: makeID(1, 0, 2, 0, 1, 0, 2, 0), ok: true},
		{name: "edge_with_corner", typ: Edge, id: makeID(1, 0, 2, 0, 1, 0, 2, 1), ok: false},
		{name: "mixed_ok", typ: Mixed, id: makeID(1, 2, 1, 2, 1, 2, 1, 2), ok: true},
		{name: "mixed_too_big", typ: Mixed, id: makeID(1, 2, 1, 2, 1, 2, 1, 9), ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newSet(tt.typ, "a", "b")
			if got := s.IDIsValid(tt.id); got != tt.ok {
				t.Fatalf("IDIsValid(%s)=%v want %v", tt.id, got, tt.ok)
			}
			if got := ValidID(tt.id, 2, tt.typ); got != tt.ok {
				t.Fatalf("ValidID(%s)=%v want %v", tt.id, got, tt.ok)
			}
		})
	}
}

func TestAddWangTileRejects(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	tile := ts.AddTile(1, "")

	mustViolate(t, func() { s.AddTile(tile, corners(3, 1, 1, 1)) })
	mustViolate(t, func() { s.AddTile(tile, makeID(1, 0, 0, 0, 0, 0, 0, 0)) })
	mustViolate(t, func() { s.AddTile(tileset.New("other").AddTile(1, ""), corners(1, 1, 1, 1)) })
	mustViolate(t, func() { s.AddWangTile(Tile{ID: corners(1, 1, 1, 1)}) })

	if !s.IsEmpty() {
		t.Fatalf("rejected tiles were registered")
	}
}

func TestAddReplaceRemove(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	tile := ts.AddTile(1, "")
	first := corners(1, 1, 1, 1)
	second := corners(1, 2, 1, 2)

	s.AddTile(tile, first)
	s.AddTile(tile, first)
	if s.TileCount() != 1 || s.UniqueFullIDCount() != 1 {
		t.Fatalf("duplicate add: tiles=%d unique=%d", s.TileCount(), s.UniqueFullIDCount())
	}

	s.AddTile(tile, second)
	if got := s.IDOfTile(tile); got != second {
		t.Fatalf("id=%s want %s", got, second)
	}
	if len(s.TilesWithID(first)) != 0 || s.IDIsUsed(first, FullMask) {
		t.Fatalf("old id still registered")
	}
	if s.UniqueFullIDCount() != 1 {
		t.Fatalf("unique=%d want 1", s.UniqueFullIDCount())
	}

	flipped := tileset.Cell{Tile: tile, FlippedHorizontally: true}
	s.AddCell(flipped, second.FlippedHorizontally())
	if got := s.IDOfCell(flipped); got != second.FlippedHorizontally() {
		t.Fatalf("flipped cell id=%s", got)
	}
	if got := s.IDOfTile(tile); got != second {
		t.Fatalf("unflipped id changed to %s", got)
	}
	if s.TileCount() != 2 {
		t.Fatalf("tiles=%d want 2", s.TileCount())
	}

	s.RemoveCell(flipped)
	if got := s.IDOfCell(flipped); got != 0 {
		t.Fatalf("removed cell still maps to %s", got)
	}

	s.AddTile(tile, 0)
	if !s.IsEmpty() || s.UniqueFullIDCount() != 0 {
		t.Fatalf("zero id should remove: tiles=%d unique=%d", s.TileCount(), s.UniqueFullIDCount())
	}

	if got := s.IDOfCell(tileset.Cell{}); got != 0 {
		t.Fatalf("empty cell id=%s", got)
	}
	if got := s.IDOfCell(tileset.NewCell(tileset.New("other").AddTile(1, ""))); got != 0 {
		t.Fatalf("foreign cell id=%s", got)
	}
}

func TestWildcardIDsDoNotCount(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Mixed, "a")
	s.AddTile(ts.AddTile(1, ""), makeID(1, 1, 1, 1, 1, 1, 1, 0))
	if s.UniqueFullIDCount() != 0 {
		t.Fatalf("wildcard id counted as full")
	}

	s.AddTile(ts.AddTile(2, ""), makeID(1, 1, 1, 1, 1, 1, 1, 1))
	s.AddTile(ts.AddTile(3, ""), makeID(1, 1, 1, 1, 1, 1, 1, 1))
	if s.UniqueFullIDCount() != 1 || !s.IsComplete() {
		t.Fatalf("unique=%d complete=%v", s.UniqueFullIDCount(), s.IsComplete())
	}

	s.AddTile(ts.FindTile(2), 0)
	if s.UniqueFullIDCount() != 1 {
		t.Fatalf("id still has a tile but unique=%d", s.UniqueFullIDCount())
	}
	s.AddTile(ts.FindTile(3), 0)
	if s.UniqueFullIDCount() != 0 {
		t.Fatalf("unique=%d want 0", s.UniqueFullIDCount())
	}
}

func TestIDIsUsedMask(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	s.AddTile(ts.AddTile(1, ""), corners(1, 2, 2, 2))

	if !s.IDIsUsed(corners(1, 2, 2, 2), FullMask) {
		t.Fatalf("exact id not used")
	}
	if !s.IDIsUsed(corners(1, 0, 0, 0), MaskTopRight) {
		t.Fatalf("masked top-right 1 not used")
	}
	if s.IDIsUsed(corners(2, 0, 0, 0), MaskTopRight) {
		t.Fatalf("masked top-right 2 reported used")
	}
	if !s.IDIsUsed(corners(9, 2, 2, 2), MaskBottomRight|MaskBottomLeft) {
		t.Fatalf("masked bottom corners not used")
	}
}

func TestRemoveColorAt(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "grass", "sand", "water")
	a := ts.AddTile(1, "")
	b := ts.AddTile(2, "")
	c := ts.AddTile(3, "")
	s.AddTile(a, corners(1, 2, 3, 3))
	s.AddTile(b, corners(2, 2, 2, 2))
	s.AddTile(c, corners(1, 1, 1, 1))

	if got := s.TilesChangedOnRemoveColor(3); len(got) != 1 || got[0] != a {
		t.Fatalf("changed on remove 3: %v", got)
	}
	if got := s.TilesChangedOnRemoveColor(1); len(got) != 3 {
		t.Fatalf("changed on remove 1: %v", got)
	}

	grass := s.ColorAt(1)
	s.RemoveColorAt(1)

	if s.ColorCount() != 2 || s.ColorAt(1).Name != "sand" || s.ColorAt(2).Name != "water" {
		t.Fatalf("colors not renumbered: %d", s.ColorCount())
	}
	if s.ColorAt(1).Index() != 1 || s.ColorAt(2).Index() != 2 {
		t.Fatalf("indexes=%d,%d", s.ColorAt(1).Index(), s.ColorAt(2).Index())
	}
	if grass.Set() != nil || grass.Index() != 0 {
		t.Fatalf("removed color still attached")
	}

	if got, want := s.IDOfTile(a), corners(0, 1, 2, 2); got != want {
		t.Fatalf("a=%s want %s", got, want)
	}
	if got, want := s.IDOfTile(b), corners(1, 1, 1, 1); got != want {
		t.Fatalf("b=%s want %s", got, want)
	}
	if got := s.IDOfTile(c); got != 0 {
		t.Fatalf("all-removed registration kept as %s", got)
	}
	if s.TileCount() != 2 || s.UniqueFullIDCount() != 1 {
		t.Fatalf("tiles=%d unique=%d", s.TileCount(), s.UniqueFullIDCount())
	}
}

func TestSetColorCountShrink(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b", "c")
	a := ts.AddTile(1, "")
	b := ts.AddTile(2, "")
	s.AddTile(a, corners(1, 2, 3, 3))
	s.AddTile(b, corners(3, 3, 3, 3))

	if got := s.TilesChangedOnSetColorCount(2); len(got) != 2 {
		t.Fatalf("changed=%v", got)
	}

	dropped := s.ColorAt(3)
	s.SetColorCount(2)
	if dropped.Set() != nil {
		t.Fatalf("dropped color still attached")
	}
	if got, want := s.IDOfTile(a), corners(1, 2, 0, 0); got != want {
		t.Fatalf("a=%s want %s", got, want)
	}
	if got := s.IDOfTile(b); got != 0 {
		t.Fatalf("b=%s want 0", got)
	}

	s.SetColorCount(4)
	if s.ColorCount() != 4 || s.ColorAt(4).Index() != 4 || s.ColorAt(4).Set() != s {
		t.Fatalf("grown colors not attached")
	}
	if s.ColorAt(3).Display != DefaultColor("test", 3) {
		t.Fatalf("new color display=%+v", s.ColorAt(3).Display)
	}

	mustViolate(t, func() { s.SetColorCount(256) })
}

func TestInsertColor(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	tile := ts.AddTile(1, "")
	s.AddTile(tile, corners(1, 2, 1, 2))

	s.InsertColor(1, NewColor("z", RGBA{A: 255}))
	if s.ColorAt(1).Name != "z" || s.ColorAt(2).Name != "a" || s.ColorAt(3).Index() != 3 {
		t.Fatalf("insert order wrong")
	}
	if got, want := s.IDOfTile(tile), corners(2, 3, 2, 3); got != want {
		t.Fatalf("id=%s want %s", got, want)
	}

	mustViolate(t, func() { s.InsertColor(5, NewColor("y", RGBA{})) })
	mustViolate(t, func() { s.AddColor(s.ColorAt(1)) })
}

func TestSetType(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Mixed, "a", "b")
	a := ts.AddTile(1, "")
	b := ts.AddTile(2, "")
	s.AddTile(a, makeID(1, 2, 1, 2, 1, 2, 1, 2))
	s.AddTile(b, makeID(1, 0, 1, 0, 1, 0, 1, 0))

	s.SetType(Corner)
	if got, want := s.IDOfTile(a), corners(2, 2, 2, 2); got != want {
		t.Fatalf("a=%s want %s", got, want)
	}
	if got := s.IDOfTile(b); got != 0 {
		t.Fatalf("edge-only tile kept as %s", got)
	}
	if s.UniqueFullIDCount() != 1 {
		t.Fatalf("unique=%d want 1", s.UniqueFullIDCount())
	}
}

func TestTileProbability(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	s.ColorAt(1).Probability = 2
	s.ColorAt(2).Probability = 0.5
	tile := ts.AddTile(1, "")
	tile.Probability = 3

	if got := s.TileProbability(NewTile(tile, corners(1, 1, 2, 2))); got != 3 {
		t.Fatalf("probability=%v want 3", got)
	}
}

func TestSortedAndByID(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	s.AddTile(ts.AddTile(9, ""), corners(1, 1, 1, 1))
	s.AddTile(ts.AddTile(2, ""), corners(2, 2, 2, 2))
	s.AddTile(ts.AddTile(5, ""), corners(1, 1, 1, 1))

	sorted := s.SortedWangTiles()
	if len(sorted) != 3 || sorted[0].Tile.ID != 2 || sorted[1].Tile.ID != 5 || sorted[2].Tile.ID != 9 {
		t.Fatalf("sorted=%v", sorted)
	}

	byID := s.WangTilesByID()
	if len(byID) != 2 || len(byID[corners(1, 1, 1, 1)]) != 2 {
		t.Fatalf("byID=%v", byID)
	}
	if ids := s.IDs(); len(ids) != 2 || ids[0] != corners(1, 1, 1, 1) {
		t.Fatalf("ids=%v", ids)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	s, ts := newSet(Corner, "a", "b")
	s.AddTile(ts.AddTile(1, ""), corners(1, 2, 1, 2))
	s.AddTile(ts.AddTile(2, ""), corners(2, 2, 2, 2))

	other := tileset.New("copy")
	t1 := other.AddTile(1, "")

	c := s.Clone(other)
	if c.Tileset() != other || c.ColorCount() != 2 || c.ColorAt(2).Set() != c {
		t.Fatalf("clone not attached to the new tileset")
	}
	if got := c.IDOfTile(t1); got != corners(1, 2, 1, 2) {
		t.Fatalf("cloned id=%s", got)
	}
	if c.TileCount() != 1 {
		t.Fatalf("clone kept a tile missing from the tileset")
	}

	c.ColorAt(1).Name = "renamed"
	if s.ColorAt(1).Name != "a" {
		t.Fatalf("clone shares colors with the original")
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{Corner, Edge, Mixed} {
		if got := ParseType(typ.String()); got != typ {
			t.Fatalf("ParseType(%q)=%v", typ.String(), got)
		}
	}
	if ParseType("bogus") != Mixed {
		t.Fatalf("unknown type should fall back to mixed")
	}
}
