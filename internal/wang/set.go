package wang

import (
	"sort"

	"github.com/woozymasta/wang-tool/internal/tileset"
)

// Set is a Wang set: the colors of one terrain style and the tiles tagged with them.
//
// A Set is not safe for concurrent use. Mutations must not overlap iteration
// of the slices it hands out.
type Set struct {
	tileset     *tileset.Tileset
	colors      []*Color
	tiles       tileIndex
	Name        string // display name (e.g. grass-sand)
	ImageTileID int    // representative tile, -1 when unset
	typ         Type

	// number of distinct ids without applicable wildcards that have a tile
	uniqueFull uint64

	maxDistance    int
	distancesDirty bool
}

// NewSet creates an empty set owned by ts.
func NewSet(ts *tileset.Tileset, name string, typ Type, imageTileID int) *Set {
	if ts == nil {
		violatef("wang: set %q needs a tileset", name)
	}

	return &Set{
		tileset:        ts,
		tiles:          newTileIndex(),
		Name:           name,
		ImageTileID:    imageTileID,
		typ:            typ,
		distancesDirty: true,
	}
}

// Tileset returns the tileset the set belongs to.
func (s *Set) Tileset() *tileset.Tileset {
	return s.tileset
}

// Type returns the set type.
func (s *Set) Type() Type {
	return s.typ
}

// SetType changes the set type. Fields that are not applicable to the new
// type are cleared on every registered id; registrations left without any
// color are dropped.
func (s *Set) SetType(t Type) {
	if t == s.typ {
		return
	}

	s.typ = t
	mask := t.Mask()
	s.rebuild(func(id ID) ID { return id & mask })
}

// ImageTile returns the representative tile, or nil.
func (s *Set) ImageTile() *tileset.Tile {
	return s.tileset.FindTile(s.ImageTileID)
}

// ColorCount returns the number of colors.
func (s *Set) ColorCount() int {
	return len(s.colors)
}

// ColorAt returns the color with 1-based index i.
func (s *Set) ColorAt(i int) *Color {
	if i < 1 || i > len(s.colors) {
		violatef("wang: color %d out of range [1,%d]", i, len(s.colors))
	}

	return s.colors[i-1]
}

// Colors returns the colors in index order.
func (s *Set) Colors() []*Color {
	return append([]*Color(nil), s.colors...)
}

// SetColorCount grows or shrinks the color list. New colors get default
// display colors. When shrinking, fields above n are cleared on every
// registered id; registrations left without any color are dropped.
func (s *Set) SetColorCount(n int) {
	if n < 0 || n > MaxColorCount {
		violatef("wang: color count %d out of range [0,%d]", n, MaxColorCount)
	}
	if n == len(s.colors) {
		return
	}

	if n < len(s.colors) {
		for _, c := range s.colors[n:] {
			c.set = nil
		}
		s.colors = s.colors[:n:n]
		s.distancesDirty = true
		s.rebuild(func(id ID) ID {
			return remapColors(id, func(c int) int {
				if c > n {
					return 0
				}
				return c
			})
		})

		return
	}

	for len(s.colors) < n {
		idx := len(s.colors) + 1
		c := NewColor("", DefaultColor(s.Name, idx))
		c.index = idx
		c.set = s
		s.colors = append(s.colors, c)
	}
	s.distancesDirty = true
}

// InsertColor inserts c at 1-based index at, which must be in
// [1, ColorCount()+1]. Colors at and above that index move up by one, and so
// do the fields referencing them.
func (s *Set) InsertColor(at int, c *Color) {
	if c.set != nil {
		violatef("wang: color %q already belongs to set %q", c.Name, c.set.Name)
	}
	if at < 1 || at > len(s.colors)+1 {
		violatef("wang: color index %d out of range [1,%d]", at, len(s.colors)+1)
	}
	if len(s.colors) >= MaxColorCount {
		violatef("wang: set %q already has %d colors", s.Name, MaxColorCount)
	}

	c.set = s
	s.colors = append(s.colors, nil)
	copy(s.colors[at:], s.colors[at-1:])
	s.colors[at-1] = c
	s.renumber(at)

	s.rebuild(func(id ID) ID {
		return remapColors(id, func(v int) int {
			if v >= at {
				return v + 1
			}
			return v
		})
	})
}

// AddColor appends c as the last color.
func (s *Set) AddColor(c *Color) {
	s.InsertColor(len(s.colors)+1, c)
}

// RemoveColorAt removes the color with 1-based index k. Fields equal to k
// become wildcards and fields above k move down by one. Registrations left
// without any color are dropped.
func (s *Set) RemoveColorAt(k int) {
	removed := s.ColorAt(k)
	removed.set = nil
	removed.index = 0

	s.colors = append(s.colors[:k-1:k-1], s.colors[k:]...)
	s.renumber(k)

	s.rebuild(func(id ID) ID {
		return remapColors(id, func(v int) int {
			switch {
			case v == k:
				return 0
			case v > k:
				return v - 1
			default:
				return v
			}
		})
	})
}

// TilesChangedOnSetColorCount returns the tiles whose id would be affected by
// changing the color count to n.
func (s *Set) TilesChangedOnSetColorCount(n int) []*tileset.Tile {
	return s.collectTiles(func(id ID) bool { return !ValidID(id, n, s.typ) })
}

// TilesChangedOnRemoveColor returns the tiles whose id would be affected by
// removing color k.
func (s *Set) TilesChangedOnRemoveColor(k int) []*tileset.Tile {
	return s.collectTiles(func(id ID) bool {
		for i := Index(0); i < NumIndexes; i++ {
			if id.IndexColor(i) >= k {
				return true
			}
		}
		return false
	})
}

// AddTile registers an unflipped tile under id.
func (s *Set) AddTile(t *tileset.Tile, id ID) {
	s.AddWangTile(NewTile(t, id))
}

// AddCell registers a tile with the flip flags of a cell under id.
func (s *Set) AddCell(c tileset.Cell, id ID) {
	s.AddWangTile(TileFromCell(c, id))
}

// AddWangTile registers wt. A tile already registered with another id is
// moved to the new id, and a zero id removes the registration. The tile must
// belong to the set's tileset and the id must be valid for the set.
func (s *Set) AddWangTile(wt Tile) {
	if wt.Tile == nil {
		violatef("wang: set %q: wang tile without a tile", s.Name)
	}
	if wt.Tile.Tileset() != s.tileset {
		violatef("wang: set %q: tile %d belongs to another tileset", s.Name, wt.Tile.ID)
	}
	if !s.IDIsValid(wt.ID) {
		violatef("wang: set %q: invalid id %s for %s set with %d colors", s.Name, wt.ID, s.typ, len(s.colors))
	}

	key := wt.key()
	if prev, ok := s.tiles.idOf(key); ok {
		if prev == wt.ID {
			return
		}
		s.removeKey(key)
	}

	if wt.ID == 0 {
		return
	}

	if s.tiles.insert(wt) && !s.typ.HasWildCards(wt.ID) {
		s.uniqueFull++
	}
	s.distancesDirty = true
}

// RemoveCell removes the registration of the tile and flags of c, if any.
func (s *Set) RemoveCell(c tileset.Cell) {
	if c.Tile == nil {
		return
	}

	s.removeKey(cellKey(c))
}

func (s *Set) removeKey(key uint32) {
	t, ok, emptied := s.tiles.remove(key)
	if !ok {
		return
	}
	if emptied && !s.typ.HasWildCards(t.ID) {
		s.uniqueFull--
	}
	s.distancesDirty = true
}

// WangTilesByID returns a copy of the id to tiles mapping.
func (s *Set) WangTilesByID() map[ID][]Tile {
	out := make(map[ID][]Tile, len(s.tiles.order))
	for _, id := range s.tiles.order {
		out[id] = s.tiles.tiles(id)
	}

	return out
}

// TilesWithID returns the tiles registered under id, in registration order.
func (s *Set) TilesWithID(id ID) []Tile {
	return s.tiles.tiles(id)
}

// IDs returns the registered ids in first registration order.
func (s *Set) IDs() []ID {
	return s.tiles.ids()
}

// SortedWangTiles returns all registered tiles sorted by tile id.
func (s *Set) SortedWangTiles() []Tile {
	out := s.tiles.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// IDOfTile returns the id of an unflipped tile of the set's tileset.
func (s *Set) IDOfTile(t *tileset.Tile) ID {
	if t.Tileset() != s.tileset {
		violatef("wang: set %q: tile %d belongs to another tileset", s.Name, t.ID)
	}

	id, _ := s.tiles.idOf(tileKey(t, false, false, false))

	return id
}

// IDOfCell returns the id of the tile and flags in c. Empty cells and cells
// of other tilesets yield 0.
func (s *Set) IDOfCell(c tileset.Cell) ID {
	if c.Tile == nil || c.Tileset() != s.tileset {
		return 0
	}

	id, _ := s.tiles.idOf(cellKey(c))

	return id
}

// TileProbability returns the selection weight of wt: the product of the
// probabilities of its colors and of the tile itself.
func (s *Set) TileProbability(wt Tile) float64 {
	p := 1.0
	for i := Index(0); i < NumIndexes; i++ {
		if c := wt.ID.IndexColor(i); c != 0 {
			p *= s.ColorAt(c).Probability
		}
	}
	if wt.Tile != nil {
		p *= wt.Tile.Probability
	}

	return p
}

// IDIsValid reports whether id may be registered in the set.
func (s *Set) IDIsValid(id ID) bool {
	return ValidID(id, len(s.colors), s.typ)
}

// ValidID reports whether id only uses fields applicable to typ and colors in [0, colorCount].
func ValidID(id ID, colorCount int, typ Type) bool {
	if id&^typ.Mask() != 0 {
		return false
	}

	for i := Index(0); i < NumIndexes; i++ {
		if id.IndexColor(i) > colorCount {
			return false
		}
	}

	return true
}

// IDIsUsed reports whether a tile is registered under id. With a mask other
// than FullMask only the masked fields are compared.
func (s *Set) IDIsUsed(id ID, mask ID) bool {
	if mask == FullMask {
		return s.tiles.has(id)
	}

	want := id & mask
	for _, used := range s.tiles.order {
		if used&mask == want {
			return true
		}
	}

	return false
}

// IsEmpty reports whether no tile is registered.
func (s *Set) IsEmpty() bool {
	return s.tiles.count == 0
}

// TileCount returns the number of registered tiles.
func (s *Set) TileCount() int {
	return s.tiles.count
}

// UniqueFullIDCount returns how many distinct ids without applicable wildcards have a tile.
func (s *Set) UniqueFullIDCount() uint64 {
	return s.uniqueFull
}

// IsComplete reports whether every fully specified id has a tile.
func (s *Set) IsComplete() bool {
	return s.uniqueFull == s.CompleteSetSize()
}

// CompleteSetSize returns the number of fully specified ids the type permits.
func (s *Set) CompleteSetSize() uint64 {
	c := uint64(len(s.colors))
	size := uint64(1)
	for i := 0; i < s.typ.fieldCount(); i++ {
		size *= c
	}

	return size
}

// TemplateIDAt returns the n-th fully specified id, counting from all fields
// set to color 1 up to all fields set to the last color. n must be below
// CompleteSetSize.
func (s *Set) TemplateIDAt(n uint64) ID {
	if len(s.colors) == 0 {
		return 0
	}
	if n >= s.CompleteSetSize() {
		violatef("wang: template %d out of range [0,%d)", n, s.CompleteSetSize())
	}

	count := uint64(len(s.colors))
	var id ID
	for i := s.typ.fieldCount() - 1; i >= 0; i-- {
		below := uint64(1)
		for j := 0; j < i; j++ {
			below *= count
		}

		value := n / below
		n -= value * below

		c := int(value) + 1
		switch s.typ {
		case Corner:
			id.SetCornerColor(i, c)
		case Edge:
			id.SetEdgeColor(i, c)
		default:
			id.SetIndexColor(Index(i), c)
		}
	}

	return id
}

// MissingTemplateIDs returns up to limit fully specified ids that have no tile.
func (s *Set) MissingTemplateIDs(limit int) []ID {
	var out []ID
	size := s.CompleteSetSize()
	for n := uint64(0); n < size && len(out) < limit; n++ {
		id := s.TemplateIDAt(n)
		if !s.tiles.has(id) {
			out = append(out, id)
		}
	}

	return out
}

// Clone copies the set into ts. Tiles are looked up by id in ts; tiles it
// does not have are left out.
func (s *Set) Clone(ts *tileset.Tileset) *Set {
	out := NewSet(ts, s.Name, s.typ, s.ImageTileID)
	for _, c := range s.colors {
		cc := c.clone()
		cc.set = out
		out.colors = append(out.colors, cc)
	}
	out.maxDistance = s.maxDistance
	out.distancesDirty = s.distancesDirty

	for _, wt := range s.tiles.all() {
		t := ts.FindTile(wt.Tile.ID)
		if t == nil {
			continue
		}
		wt.Tile = t
		out.addRegistered(wt)
	}

	return out
}

// rebuild re-registers every tile with its id passed through fn.
func (s *Set) rebuild(fn func(ID) ID) {
	all := s.tiles.all()
	s.tiles = newTileIndex()
	s.uniqueFull = 0
	s.distancesDirty = true

	for _, wt := range all {
		wt.ID = fn(wt.ID)
		s.addRegistered(wt)
	}
}

// addRegistered adds a tile whose key is known not to be registered.
func (s *Set) addRegistered(wt Tile) {
	if wt.ID == 0 {
		return
	}
	if !s.IDIsValid(wt.ID) {
		violatef("wang: set %q: invalid id %s after remapping", s.Name, wt.ID)
	}

	if s.tiles.insert(wt) && !s.typ.HasWildCards(wt.ID) {
		s.uniqueFull++
	}
	s.distancesDirty = true
}

// renumber assigns consecutive indexes to the colors from 1-based index from on.
func (s *Set) renumber(from int) {
	for i := from - 1; i < len(s.colors); i++ {
		s.colors[i].index = i + 1
	}
	s.distancesDirty = true
}

// collectTiles returns the distinct tiles, sorted by id, whose id matches pred.
func (s *Set) collectTiles(pred func(ID) bool) []*tileset.Tile {
	seen := map[*tileset.Tile]struct{}{}
	var out []*tileset.Tile
	for _, wt := range s.tiles.all() {
		if !pred(wt.ID) {
			continue
		}
		if _, ok := seen[wt.Tile]; ok {
			continue
		}
		seen[wt.Tile] = struct{}{}
		out = append(out, wt.Tile)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// remapColors passes every non-wildcard field of id through fn.
func remapColors(id ID, fn func(int) int) ID {
	for i := Index(0); i < NumIndexes; i++ {
		if c := id.IndexColor(i); c != 0 {
			id.SetIndexColor(i, fn(c))
		}
	}

	return id
}
