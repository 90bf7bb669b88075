// Package legacy reads and writes the compact binary tile table that stores
// Wang ids in their 32-bit form (4 bits per field).
//
// Layout, little endian:
//
//	"WANG" | u16 version | u16 name length | name | u8 type | u16 color count |
//	u32 entry count | entry count * (u32 tile info, u32 id)
package legacy

import (
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/magical/littlebyte"

	"github.com/woozymasta/wang-tool/internal/tileset"
	"github.com/woozymasta/wang-tool/internal/wang"
)

const (
	// Magic starts every table file.
	Magic = "WANG"

	// Version is the only table version this package writes and reads.
	Version = 1

	// MaxColorCount is the largest color index a 4-bit field can hold.
	MaxColorCount = 15
)

var errEOF = errors.New("legacy: unexpected end of table")

// Table is a decoded tile table.
type Table struct {
	Name       string    // wang set name
	Entries    []Entry   // registrations in set order
	Type       wang.Type // set type
	ColorCount int       // number of colors, at most MaxColorCount
}

// Entry is one registration: a tile with its flip flags and its 32-bit id.
type Entry struct {
	TileInfo uint32 // tile id | H<<29 | V<<28 | AD<<27
	ID       uint32 // 4 bits per field, top edge in the low nibble
}

// FromSet builds a table from s. Tiles whose id uses a color above
// MaxColorCount cannot be stored and are returned as skipped.
func FromSet(s *wang.Set) (Table, []wang.Tile) {
	t := Table{Name: s.Name, Type: s.Type(), ColorCount: s.ColorCount()}
	if t.ColorCount > MaxColorCount {
		t.ColorCount = MaxColorCount
	}

	var skipped []wang.Tile
	for _, id := range s.IDs() {
		for _, wt := range s.TilesWithID(id) {
			v, ok := wt.ID.ToUint()
			if !ok {
				skipped = append(skipped, wt)
				continue
			}
			t.Entries = append(t.Entries, Entry{TileInfo: wt.TileInfo(), ID: v})
		}
	}

	return t, skipped
}

// Encode serializes the table.
func (t Table) Encode() ([]byte, error) {
	if t.ColorCount < 0 || t.ColorCount > MaxColorCount {
		return nil, errors.Newf("legacy: color count %d out of range [0,%d]", t.ColorCount, MaxColorCount)
	}
	if len(t.Name) > 0xFFFF {
		return nil, errors.Newf("legacy: set name too long (%d bytes)", len(t.Name))
	}

	b := new(littlebyte.Builder)
	b.AddBytes([]byte(Magic))
	b.AddUint16(Version)
	b.AddUint16LengthPrefixed(func(b *littlebyte.Builder) {
		b.AddBytes([]byte(t.Name))
	})
	b.AddUint8(uint8(t.Type))
	b.AddUint16(uint16(t.ColorCount))
	addUint32(b, uint32(len(t.Entries)))
	for _, e := range t.Entries {
		addUint32(b, e.TileInfo)
		addUint32(b, e.ID)
	}

	return b.Bytes()
}

// Decode parses a serialized table.
func Decode(data []byte) (Table, error) {
	s := littlebyte.String(data)

	var magic []byte
	if !s.ReadBytes(&magic, len(Magic)) {
		return Table{}, errEOF
	}
	if string(magic) != Magic {
		return Table{}, errors.New("legacy: invalid magic bytes")
	}

	var version uint16
	if !s.ReadUint16(&version) {
		return Table{}, errEOF
	}
	if version != Version {
		return Table{}, errors.Newf("legacy: unsupported version %d", version)
	}

	var name littlebyte.String
	if !s.ReadUint16LengthPrefixed(&name) {
		return Table{}, errEOF
	}

	var (
		typ    uint8
		colors uint16
		count  uint32
	)
	if !s.ReadUint8(&typ) || !s.ReadUint16(&colors) || !readUint32(&s, &count) {
		return Table{}, errEOF
	}
	if wang.Type(typ) > wang.Mixed {
		return Table{}, errors.Newf("legacy: unknown set type %d", typ)
	}
	if colors > MaxColorCount {
		return Table{}, errors.Newf("legacy: color count %d out of range [0,%d]", colors, MaxColorCount)
	}
	// each entry takes 8 bytes, so a larger count cannot be satisfied
	if uint64(count)*8 > uint64(len(s)) {
		return Table{}, errEOF
	}

	t := Table{
		Name:       string(name),
		Type:       wang.Type(typ),
		ColorCount: int(colors),
		Entries:    make([]Entry, 0, count),
	}
	for i := uint32(0); i < count; i++ {
		var e Entry
		if !readUint32(&s, &e.TileInfo) || !readUint32(&s, &e.ID) {
			return Table{}, errEOF
		}
		t.Entries = append(t.Entries, e)
	}
	if !s.Empty() {
		return Table{}, errors.New("legacy: garbage at end of table")
	}

	return t, nil
}

// Build creates a wang set over ts from the table. Colors get default names
// and display colors. Every entry must name a tile of ts and an id valid for
// the table's type and color count.
func (t Table) Build(ts *tileset.Tileset) (*wang.Set, error) {
	s := wang.NewSet(ts, t.Name, t.Type, -1)
	s.SetColorCount(t.ColorCount)
	for i := 1; i <= t.ColorCount; i++ {
		s.ColorAt(i).Name = "color " + strconv.Itoa(i)
	}

	for i, e := range t.Entries {
		cell, ok := wang.CellFromTileInfo(ts, e.TileInfo)
		if !ok {
			return nil, errors.Newf("legacy: entry %d: unknown tile info %#x", i, e.TileInfo)
		}

		id := wang.FromUint(e.ID)
		if !s.IDIsValid(id) {
			return nil, errors.Newf("legacy: entry %d: id %s is not valid for a %s set with %d colors", i, id, t.Type, t.ColorCount)
		}

		s.AddCell(cell, id)
	}

	return s, nil
}

// ReadFile reads and decodes a table file.
func ReadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}

	t, err := Decode(data)
	if err != nil {
		return Table{}, errors.Wrapf(err, "read %s", path)
	}

	return t, nil
}

// WriteFile encodes t into path.
func WriteFile(path string, t Table) error {
	data, err := t.Encode()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Sniff reads the file header and reports whether it is a tile table.
func Sniff(path string) (ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	var hdr [len(Magic)]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}

	return string(hdr[:]) == Magic, nil
}

// addUint32 appends v as two little endian halves.
func addUint32(b *littlebyte.Builder, v uint32) {
	b.AddUint16(uint16(v))
	b.AddUint16(uint16(v >> 16))
}

func readUint32(s *littlebyte.String, out *uint32) bool {
	var lo, hi uint16
	if !s.ReadUint16(&lo) || !s.ReadUint16(&hi) {
		return false
	}
	*out = uint32(lo) | uint32(hi)<<16

	return true
}
