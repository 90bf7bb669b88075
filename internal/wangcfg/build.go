package wangcfg

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/invopop/yaml"

	"github.com/woozymasta/wang-tool/internal/terrain"
	"github.com/woozymasta/wang-tool/internal/tileset"
	"github.com/woozymasta/wang-tool/internal/wang"
)

// Project is a built document: the tileset and the Wang sets over it.
type Project struct {
	Tileset *tileset.Tileset
	Sets    []*wang.Set
}

// Read reads a document from a YAML or JSON file.
func Read(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, errors.Wrapf(err, "parse %s", path)
	}

	return doc, nil
}

// Encode encodes the document as yaml or json.
func Encode(doc Document, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(doc)
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, errors.Newf("unknown format: %s", format)
	}
}

// ParseType parses a set type name. Unlike wang.ParseType it rejects unknown names.
func ParseType(s string) (wang.Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corner":
		return wang.Corner, nil
	case "edge":
		return wang.Edge, nil
	case "mixed", "":
		return wang.Mixed, nil
	default:
		return 0, errors.Newf("unknown wang set type %q", s)
	}
}

// Build validates the document and creates its tileset and sets. The map
// section is not built here, see BuildMap.
func Build(doc Document) (*Project, error) {
	ts := tileset.New(doc.Tileset.Name)
	for _, t := range doc.Tileset.Tiles {
		if t.ID < 0 || t.ID > tileset.MaxTileID {
			return nil, errors.Newf("tile id %d out of range [0,%d]", t.ID, tileset.MaxTileID)
		}
		if ts.FindTile(t.ID) != nil {
			return nil, errors.Newf("duplicate tile id %d", t.ID)
		}

		tile := ts.AddTile(t.ID, t.Image)
		if t.Probability != nil {
			if *t.Probability < 0 {
				return nil, errors.Newf("tile %d: negative probability %v", t.ID, *t.Probability)
			}
			tile.Probability = *t.Probability
		}
	}

	p := &Project{Tileset: ts}
	seen := map[string]struct{}{}
	for i, sc := range doc.Sets {
		key := strings.ToLower(strings.TrimSpace(sc.Name))
		if _, dup := seen[key]; dup {
			return nil, errors.Newf("duplicate wang set name %q", sc.Name)
		}
		seen[key] = struct{}{}

		s, err := buildSet(ts, sc)
		if err != nil {
			return nil, errors.Wrapf(err, "wang set %d (%s)", i, sc.Name)
		}
		p.Sets = append(p.Sets, s)
	}

	return p, nil
}

// buildSet creates one set over ts.
func buildSet(ts *tileset.Tileset, sc Set) (*wang.Set, error) {
	typ, err := ParseType(sc.Type)
	if err != nil {
		return nil, err
	}
	if len(sc.Colors) > wang.MaxColorCount {
		return nil, errors.Newf("%d colors, at most %d allowed", len(sc.Colors), wang.MaxColorCount)
	}

	image, err := tileRef(ts, sc.Tile)
	if err != nil {
		return nil, err
	}

	s := wang.NewSet(ts, sc.Name, typ, image)
	for _, cc := range sc.Colors {
		display := wang.PaletteColor(cc.Name)
		if cc.Display != nil {
			display = wang.RGBA(*cc.Display)
		}

		c := wang.NewColor(cc.Name, display)
		if c.ImageTileID, err = tileRef(ts, cc.Tile); err != nil {
			return nil, errors.Wrapf(err, "color %q", cc.Name)
		}
		if cc.Probability != nil {
			if *cc.Probability < 0 {
				return nil, errors.Newf("color %q: negative probability %v", cc.Name, *cc.Probability)
			}
			c.Probability = *cc.Probability
		}
		s.AddColor(c)
	}

	for _, wt := range sc.Tiles {
		id, ok := wang.ParseID(wt.WangID)
		if !ok {
			return nil, errors.Newf("tile %d: malformed wang id %q", wt.Tile, wt.WangID)
		}
		if !s.IDIsValid(id) {
			return nil, errors.Newf("tile %d: wang id %s is not valid for a %s set with %d colors", wt.Tile, id, typ, s.ColorCount())
		}

		tile := ts.FindTile(wt.Tile)
		if tile == nil {
			return nil, errors.Newf("tile %d: not in the tileset", wt.Tile)
		}

		cell := tileset.Cell{Tile: tile, FlippedHorizontally: wt.HFlip, FlippedVertically: wt.VFlip, FlippedAntiDiagonally: wt.DFlip}
		if prev := s.IDOfCell(cell); prev != 0 {
			return nil, errors.Newf("tile %d: registered twice (%s and %s)", wt.Tile, prev, id)
		}

		s.AddCell(cell, id)
	}

	return s, nil
}

// tileRef resolves an optional tile reference to a tile id, -1 when unset.
func tileRef(ts *tileset.Tileset, ref *int) (int, error) {
	if ref == nil {
		return -1, nil
	}
	if ts.FindTile(*ref) == nil {
		return 0, errors.Newf("tile %d: not in the tileset", *ref)
	}

	return *ref, nil
}

// Set returns the set with the given name, compared case-insensitively.
func (p *Project) Set(name string) (*wang.Set, bool) {
	name = strings.TrimSpace(name)
	for _, s := range p.Sets {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}

	return nil, false
}

// BuildMap creates the grid described by m. Every placed cell must name a
// tile of the project's tileset and lie inside the grid.
func (p *Project) BuildMap(m Map) (*terrain.Grid, error) {
	g, err := terrain.NewGrid(m.Width, m.Height)
	if err != nil {
		return nil, err
	}

	for _, c := range m.Cells {
		tile := p.Tileset.FindTile(c.Tile)
		if tile == nil {
			return nil, errors.Newf("cell %d,%d: tile %d not in the tileset", c.X, c.Y, c.Tile)
		}

		cell := tileset.Cell{Tile: tile, FlippedHorizontally: c.HFlip, FlippedVertically: c.VFlip, FlippedAntiDiagonally: c.DFlip}
		if !g.SetCell(c.X, c.Y, cell) {
			return nil, errors.Newf("cell %d,%d: outside the %dx%d grid", c.X, c.Y, m.Width, m.Height)
		}
	}

	return g, nil
}

// Export converts a project back into a document. Registrations keep their
// order, so a rebuilt project breaks ties the same way.
func Export(p *Project) Document {
	doc := Document{Tileset: Tileset{Name: p.Tileset.Name}}
	for _, t := range p.Tileset.Tiles() {
		doc.Tileset.Tiles = append(doc.Tileset.Tiles, Tile{ID: t.ID, Image: t.Image, Probability: weight(t.Probability)})
	}

	for _, s := range p.Sets {
		sc := Set{Name: s.Name, Type: s.Type().String(), Tile: optionalTile(s.ImageTileID)}
		for _, c := range s.Colors() {
			display := RGBA(c.Display)
			sc.Colors = append(sc.Colors, Color{
				Name:        c.Name,
				Display:     &display,
				Tile:        optionalTile(c.ImageTileID),
				Probability: weight(c.Probability),
			})
		}
		for _, id := range s.IDs() {
			for _, wt := range s.TilesWithID(id) {
				sc.Tiles = append(sc.Tiles, WangTile{
					WangID: wt.ID.String(),
					Tile:   wt.Tile.ID,
					HFlip:  wt.FlippedHorizontally,
					VFlip:  wt.FlippedVertically,
					DFlip:  wt.FlippedAntiDiagonally,
				})
			}
		}
		doc.Sets = append(doc.Sets, sc)
	}

	return doc
}

// ExportMap converts a grid into a map section painted with the named set.
func ExportMap(g *terrain.Grid, set string, seed uint64) Map {
	m := Map{Set: set, Width: g.Width(), Height: g.Height(), Seed: seed}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := g.Cell(x, y)
			if c.IsEmpty() {
				continue
			}
			m.Cells = append(m.Cells, Cell{
				X:     x,
				Y:     y,
				Tile:  c.Tile.ID,
				HFlip: c.FlippedHorizontally,
				VFlip: c.FlippedVertically,
				DFlip: c.FlippedAntiDiagonally,
			})
		}
	}

	return m
}

// optionalTile returns nil for an unset (negative) tile reference.
func optionalTile(id int) *int {
	if id < 0 {
		return nil
	}

	return &id
}

// weight returns nil for the default probability of 1.
func weight(p float64) *float64 {
	if p == 1 {
		return nil
	}

	return &p
}
