// Package tileset provides the tile, tileset and cell values the Wang engine reads.
package tileset

import "sort"

// MaxTileID is the largest tile id that fits next to the three flip bits of a tile info key.
const MaxTileID = 1<<27 - 1

// Tileset owns a collection of tiles addressed by id.
type Tileset struct {
	tiles map[int]*Tile // tiles by id
	Name  string        // tileset name (e.g. terrain)
}

// Tile is a single tile image inside a tileset.
type Tile struct {
	tileset     *Tileset
	Image       string  // image path or label
	ID          int     // tile id, unique inside its tileset
	Probability float64 // relative selection weight, 1 by default
}

// Cell is a placed tile together with its flip flags.
type Cell struct {
	Tile                  *Tile // nil for an empty cell
	FlippedHorizontally   bool  // mirrored around the vertical axis
	FlippedVertically     bool  // mirrored around the horizontal axis
	FlippedAntiDiagonally bool  // mirrored around the anti-diagonal (x/y swapped)
}

// New creates an empty tileset.
func New(name string) *Tileset {
	return &Tileset{Name: name, tiles: map[int]*Tile{}}
}

// AddTile adds a tile with the given id, replacing the image of an existing one.
func (ts *Tileset) AddTile(id int, image string) *Tile {
	if t := ts.tiles[id]; t != nil {
		t.Image = image
		return t
	}

	t := &Tile{tileset: ts, ID: id, Image: image, Probability: 1}
	ts.tiles[id] = t

	return t
}

// FindTile returns the tile with the given id, or nil.
func (ts *Tileset) FindTile(id int) *Tile {
	if ts == nil {
		return nil
	}

	return ts.tiles[id]
}

// Tiles returns all tiles sorted by id.
func (ts *Tileset) Tiles() []*Tile {
	out := make([]*Tile, 0, len(ts.tiles))
	for _, t := range ts.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// TileCount returns the number of tiles.
func (ts *Tileset) TileCount() int {
	return len(ts.tiles)
}

// Tileset returns the tileset owning the tile.
func (t *Tile) Tileset() *Tileset {
	if t == nil {
		return nil
	}

	return t.tileset
}

// NewCell returns an unflipped cell for a tile.
func NewCell(t *Tile) Cell {
	return Cell{Tile: t}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.Tile == nil
}

// Tileset returns the tileset of the referenced tile, or nil for an empty cell.
func (c Cell) Tileset() *Tileset {
	return c.Tile.Tileset()
}

// TileID returns the referenced tile id, or -1 for an empty cell.
func (c Cell) TileID() int {
	if c.Tile == nil {
		return -1
	}

	return c.Tile.ID
}
