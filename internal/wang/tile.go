package wang

import "github.com/woozymasta/wang-tool/internal/tileset"

// Tile binds a tile image, drawn with its flip flags, to the ID it represents.
type Tile struct {
	Tile                  *tileset.Tile // borrowed, never owned
	ID                    ID            // colors of the tile as drawn with the flags below
	FlippedHorizontally   bool
	FlippedVertically     bool
	FlippedAntiDiagonally bool
}

// Flag maps indexed by H<<2 | V<<1 | AD.
var (
	rotateRightFlags = [8]int{5, 4, 1, 0, 7, 6, 3, 2}
	rotateLeftFlags  = [8]int{3, 2, 7, 6, 1, 0, 5, 4}
	flipHFlags       = [8]int{4, 3, 6, 1, 0, 7, 2, 5}
	flipVFlags       = [8]int{2, 5, 0, 7, 6, 1, 4, 3}
)

// NewTile returns an unflipped Wang tile.
func NewTile(t *tileset.Tile, id ID) Tile {
	return Tile{Tile: t, ID: id}
}

// TileFromCell returns a Wang tile carrying the tile and flags of a cell.
func TileFromCell(c tileset.Cell, id ID) Tile {
	return Tile{
		Tile:                  c.Tile,
		ID:                    id,
		FlippedHorizontally:   c.FlippedHorizontally,
		FlippedVertically:     c.FlippedVertically,
		FlippedAntiDiagonally: c.FlippedAntiDiagonally,
	}
}

// RotateRight rotates the tile 90 degrees clockwise.
func (t *Tile) RotateRight() {
	t.ID.Rotate(1)
	t.translate(&rotateRightFlags)
}

// RotateLeft rotates the tile 90 degrees counterclockwise.
func (t *Tile) RotateLeft() {
	t.ID.Rotate(3)
	t.translate(&rotateLeftFlags)
}

// FlipHorizontally mirrors the tile around the vertical axis.
func (t *Tile) FlipHorizontally() {
	t.ID.FlipHorizontally()
	t.translate(&flipHFlags)
}

// FlipVertically mirrors the tile around the horizontal axis.
func (t *Tile) FlipVertically() {
	t.ID.FlipVertically()
	t.translate(&flipVFlags)
}

// translate remaps the flip flags through a one to one map over the 8 flag combinations.
func (t *Tile) translate(m *[8]int) {
	mask := boolBit(t.FlippedHorizontally)<<2 | boolBit(t.FlippedVertically)<<1 | boolBit(t.FlippedAntiDiagonally)
	mask = m[mask]

	t.FlippedHorizontally = mask&4 != 0
	t.FlippedVertically = mask&2 != 0
	t.FlippedAntiDiagonally = mask&1 != 0
}

// MakeCell returns the cell that places this tile. A tile-less Wang tile yields an empty cell.
func (t Tile) MakeCell() tileset.Cell {
	if t.Tile == nil {
		return tileset.Cell{}
	}

	return tileset.Cell{
		Tile:                  t.Tile,
		FlippedHorizontally:   t.FlippedHorizontally,
		FlippedVertically:     t.FlippedVertically,
		FlippedAntiDiagonally: t.FlippedAntiDiagonally,
	}
}

// Less orders Wang tiles by tile id only.
func (t Tile) Less(other Tile) bool {
	return t.Tile.ID < other.Tile.ID
}

// Flip flag bits of a tile info key.
const (
	FlagFlippedHorizontally   = 1 << 29
	FlagFlippedVertically     = 1 << 28
	FlagFlippedAntiDiagonally = 1 << 27
)

// TileInfo returns the tile info key: tile id with the flip flags in bits 29, 28 and 27.
func (t Tile) TileInfo() uint32 {
	return tileKey(t.Tile, t.FlippedHorizontally, t.FlippedVertically, t.FlippedAntiDiagonally)
}

func (t Tile) key() uint32 {
	return t.TileInfo()
}

// CellFromTileInfo resolves a tile info key against ts. It reports ok=false
// when ts has no tile with that id or unknown bits are set.
func CellFromTileInfo(ts *tileset.Tileset, info uint32) (tileset.Cell, bool) {
	const flags = FlagFlippedHorizontally | FlagFlippedVertically | FlagFlippedAntiDiagonally
	if info&^(flags|tileset.MaxTileID) != 0 {
		return tileset.Cell{}, false
	}

	t := ts.FindTile(int(info & tileset.MaxTileID))
	if t == nil {
		return tileset.Cell{}, false
	}

	return tileset.Cell{
		Tile:                  t,
		FlippedHorizontally:   info&FlagFlippedHorizontally != 0,
		FlippedVertically:     info&FlagFlippedVertically != 0,
		FlippedAntiDiagonally: info&FlagFlippedAntiDiagonally != 0,
	}, true
}

func cellKey(c tileset.Cell) uint32 {
	return tileKey(c.Tile, c.FlippedHorizontally, c.FlippedVertically, c.FlippedAntiDiagonally)
}

func tileKey(t *tileset.Tile, h, v, ad bool) uint32 {
	if t.ID < 0 || t.ID > tileset.MaxTileID {
		violatef("wang: tile id %d out of range [0,%d]", t.ID, tileset.MaxTileID)
	}

	key := uint32(t.ID)
	if h {
		key |= FlagFlippedHorizontally
	}
	if v {
		key |= FlagFlippedVertically
	}
	if ad {
		key |= FlagFlippedAntiDiagonally
	}

	return key
}

func boolBit(b bool) int {
	if b {
		return 1
	}

	return 0
}
