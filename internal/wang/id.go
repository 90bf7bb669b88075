package wang

import (
	"math/bits"
	"strconv"
	"strings"
)

// Index is a position around a tile, clockwise from the top edge:
//
//	7|0|1
//	6|.|2
//	5|4|3
//
// Even indexes are edges, odd indexes are corners.
type Index int

const (
	Top Index = iota
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
	TopLeft
)

const (
	NumCorners = 4
	NumEdges   = 4
	NumIndexes = 8

	// BitsPerIndex is the width of one field inside an ID.
	BitsPerIndex = 8
	// MaxColorCount is the largest color number a field can hold.
	MaxColorCount = 1<<BitsPerIndex - 1

	indexMask = 0xFF
	// noIndex is returned by IndexByGrid for the centre cell.
	noIndex Index = NumIndexes
)

// ID packs the colors of the 8 edges and corners of a tile, one byte per Index.
// A zero field is a wildcard.
type ID uint64

const (
	MaskTop         ID = 0x00000000000000FF
	MaskTopRight    ID = 0x000000000000FF00
	MaskRight       ID = 0x0000000000FF0000
	MaskBottomRight ID = 0x00000000FF000000
	MaskBottom      ID = 0x000000FF00000000
	MaskBottomLeft  ID = 0x0000FF0000000000
	MaskLeft        ID = 0x00FF000000000000
	MaskTopLeft     ID = 0xFF00000000000000

	MaskEdges   = MaskTop | MaskRight | MaskBottom | MaskLeft
	MaskCorners = MaskTopRight | MaskBottomRight | MaskBottomLeft | MaskTopLeft

	// FullMask selects every field.
	FullMask ID = 0xFFFFFFFFFFFFFFFF
)

var indexNames = [NumIndexes]string{
	"top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left", "top-left",
}

// String returns the position name.
func (i Index) String() string {
	if !i.valid() {
		return "index(" + strconv.Itoa(int(i)) + ")"
	}

	return indexNames[i]
}

// Opposite returns the position on the other side of the tile.
func (i Index) Opposite() Index {
	checkIndex(i)
	return (i + 4) % NumIndexes
}

// Next returns the next position clockwise.
func (i Index) Next() Index {
	checkIndex(i)
	return (i + 1) % NumIndexes
}

// Previous returns the previous position clockwise.
func (i Index) Previous() Index {
	checkIndex(i)
	return (i + NumIndexes - 1) % NumIndexes
}

// IsCorner reports whether the position is a corner.
func (i Index) IsCorner() bool {
	checkIndex(i)
	return i&1 == 1
}

// Mask returns the field mask of the position.
func (i Index) Mask() ID {
	checkIndex(i)
	return ID(indexMask) << (uint(i) * BitsPerIndex)
}

func (i Index) valid() bool {
	return i >= 0 && i < NumIndexes
}

func checkIndex(i Index) {
	if !i.valid() {
		violatef("wang: index %d out of range [0,%d)", int(i), NumIndexes)
	}
}

var gridIndexes = [3][3]Index{
	{TopLeft, Top, TopRight},
	{Left, noIndex, Right},
	{BottomLeft, Bottom, BottomRight},
}

// IndexByGrid maps a 3x3 grid position around a tile to its Index. The centre
// maps to no index and reports ok=false.
func IndexByGrid(x, y int) (Index, bool) {
	if x < 0 || x > 2 || y < 0 || y > 2 {
		violatef("wang: grid position (%d,%d) out of range", x, y)
	}

	idx := gridIndexes[y][x]

	return idx, idx != noIndex
}

// EdgeColor returns the color of edge i, 0 being the top edge, 1 right, 2 bottom, 3 left.
func (id ID) EdgeColor(i int) int {
	if i < 0 || i >= NumEdges {
		violatef("wang: edge %d out of range [0,%d)", i, NumEdges)
	}

	return id.IndexColor(Index(i * 2))
}

// CornerColor returns the color of corner i, 0 being top-right, then clockwise.
func (id ID) CornerColor(i int) int {
	if i < 0 || i >= NumCorners {
		violatef("wang: corner %d out of range [0,%d)", i, NumCorners)
	}

	return id.IndexColor(Index(i*2 + 1))
}

// IndexColor returns the color at a position.
func (id ID) IndexColor(i Index) int {
	checkIndex(i)
	return int(uint64(id)>>(uint(i)*BitsPerIndex)) & indexMask
}

// SetEdgeColor sets the color of edge i.
func (id *ID) SetEdgeColor(i int, c int) {
	if i < 0 || i >= NumEdges {
		violatef("wang: edge %d out of range [0,%d)", i, NumEdges)
	}

	id.SetIndexColor(Index(i*2), c)
}

// SetCornerColor sets the color of corner i.
func (id *ID) SetCornerColor(i int, c int) {
	if i < 0 || i >= NumCorners {
		violatef("wang: corner %d out of range [0,%d)", i, NumCorners)
	}

	id.SetIndexColor(Index(i*2+1), c)
}

// SetGridColor sets the color of a 3x3 grid position. The centre is ignored.
func (id *ID) SetGridColor(x, y int, c int) {
	if idx, ok := IndexByGrid(x, y); ok {
		id.SetIndexColor(idx, c)
	}
}

// SetIndexColor sets the color at a position.
func (id *ID) SetIndexColor(i Index, c int) {
	checkIndex(i)
	checkColorValue(c)

	shift := uint(i) * BitsPerIndex
	*id = *id&^(ID(indexMask)<<shift) | ID(c)<<shift
}

// WithIndexColor returns a copy of id with the color at a position replaced.
func (id ID) WithIndexColor(i Index, c int) ID {
	id.SetIndexColor(i, c)
	return id
}

// UpdateToAdjacent copies the colors facing this tile from an adjacent id
// located at position. For edge positions the two shared corners are copied too.
func (id *ID) UpdateToAdjacent(adjacent ID, position Index) {
	id.SetIndexColor(position, adjacent.IndexColor(position.Opposite()))

	if !position.IsCorner() {
		ci := int(position) / 2
		id.SetCornerColor(ci, adjacent.CornerColor((ci+1)%NumCorners))
		id.SetCornerColor((ci+3)%NumCorners, adjacent.CornerColor((ci+2)%NumCorners))
	}
}

// HasWildCards reports whether any field is unset.
func (id ID) HasWildCards() bool {
	for i := Index(0); i < NumIndexes; i++ {
		if id.IndexColor(i) == 0 {
			return true
		}
	}

	return false
}

// HasCornerWildCards reports whether any corner is unset.
func (id ID) HasCornerWildCards() bool {
	for i := 0; i < NumCorners; i++ {
		if id.CornerColor(i) == 0 {
			return true
		}
	}

	return false
}

// HasEdgeWildCards reports whether any edge is unset.
func (id ID) HasEdgeWildCards() bool {
	for i := 0; i < NumEdges; i++ {
		if id.EdgeColor(i) == 0 {
			return true
		}
	}

	return false
}

// Mask returns a mask that is 0xFF for every field that has a color.
func (id ID) Mask() ID {
	var mask ID
	for i := Index(0); i < NumIndexes; i++ {
		if id.IndexColor(i) != 0 {
			mask |= i.Mask()
		}
	}

	return mask
}

// MaskColor returns a mask that is 0xFF for every field equal to c.
func (id ID) MaskColor(c int) ID {
	var mask ID
	for i := Index(0); i < NumIndexes; i++ {
		if id.IndexColor(i) == c {
			mask |= i.Mask()
		}
	}

	return mask
}

// HasCornerWithColor reports whether any corner has color c.
func (id ID) HasCornerWithColor(c int) bool {
	for i := 0; i < NumCorners; i++ {
		if id.CornerColor(i) == c {
			return true
		}
	}

	return false
}

// HasEdgeWithColor reports whether any edge has color c.
func (id ID) HasEdgeWithColor(c int) bool {
	for i := 0; i < NumEdges; i++ {
		if id.EdgeColor(i) == c {
			return true
		}
	}

	return false
}

// Rotated returns id rotated clockwise by 90 degrees times rotations.
// The top edge becomes the right edge and the top-right corner the bottom-right one.
func (id ID) Rotated(rotations int) ID {
	r := rotations % 4
	if r < 0 {
		r += 4
	}

	return ID(bits.RotateLeft64(uint64(id), r*2*BitsPerIndex))
}

// Rotate rotates id in place, see Rotated.
func (id *ID) Rotate(rotations int) {
	*id = id.Rotated(rotations)
}

// FlippedHorizontally returns id mirrored around the vertical axis.
func (id ID) FlippedHorizontally() ID {
	out := id
	out.SetIndexColor(Right, id.IndexColor(Left))
	out.SetIndexColor(Left, id.IndexColor(Right))

	for i := 0; i < NumCorners; i++ {
		out.SetCornerColor(i, id.CornerColor(NumCorners-1-i))
	}

	return out
}

// FlippedVertically returns id mirrored around the horizontal axis.
func (id ID) FlippedVertically() ID {
	return id.FlippedHorizontally().Rotated(2)
}

// FlipHorizontally mirrors id in place around the vertical axis.
func (id *ID) FlipHorizontally() {
	*id = id.FlippedHorizontally()
}

// FlipVertically mirrors id in place around the horizontal axis.
func (id *ID) FlipVertically() {
	*id = id.FlippedVertically()
}

// FromUint creates an ID from the legacy 32-bit form which uses 4 bits per field.
func FromUint(v uint32) ID {
	var id ID
	for i := 0; i < NumIndexes; i++ {
		c := ID(v>>(uint(i)*4)) & 0xF
		id |= c << (uint(i) * BitsPerIndex)
	}

	return id
}

// ToUint converts id to the legacy 32-bit form. It reports ok=false when a
// field holds a color above 15, which the legacy form cannot store.
func (id ID) ToUint() (uint32, bool) {
	var v uint32
	for i := Index(0); i < NumIndexes; i++ {
		c := id.IndexColor(i)
		if c > 0xF {
			return 0, false
		}
		v |= uint32(c) << (uint(i) * 4)
	}

	return v, true
}

// String returns the comma separated colors of all fields, in Index order.
func (id ID) String() string {
	var sb strings.Builder
	for i := Index(0); i < NumIndexes; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id.IndexColor(i)))
	}

	return sb.String()
}

// ParseID parses the form produced by String. It reports ok=false for
// malformed input and never panics.
func ParseID(s string) (ID, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != NumIndexes {
		return 0, false
	}

	var id ID
	for i, p := range parts {
		c, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil || c > MaxColorCount {
			return 0, false
		}
		id |= ID(c) << (uint(i) * BitsPerIndex)
	}

	return id, true
}
