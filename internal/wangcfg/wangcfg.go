// Package wangcfg provides the YAML/JSON document describing a tileset, its
// Wang sets and an optional map to fill.
package wangcfg

// Document is a serialized tileset with its Wang sets.
type Document struct {
	Tileset Tileset `json:"tileset"`       // tiles the sets refer to
	Sets    []Set   `json:"wang_sets"`     // Wang sets over the tileset
	Map     *Map    `json:"map,omitempty"` // optional grid for the fill command
}

// Tileset lists the tiles of a document.
type Tileset struct {
	Name  string `json:"name"`  // tileset name (e.g. terrain)
	Tiles []Tile `json:"tiles"` // tiles by id
}

// Tile is one tile of the tileset.
type Tile struct {
	Image       string   `json:"image,omitempty"`       // image path or label
	ID          int      `json:"id"`                    // tile id
	Probability *float64 `json:"probability,omitempty"` // relative weight, 1 when omitted
}

// Set is a Wang set.
type Set struct {
	Name   string     `json:"name"`           // set name (e.g. grass-sand)
	Type   string     `json:"type"`           // corner, edge or mixed
	Colors []Color    `json:"colors"`         // colors, index 1 first
	Tiles  []WangTile `json:"wang_tiles"`     // tile registrations
	Tile   *int       `json:"tile,omitempty"` // representative tile
}

// Color is a Wang color.
type Color struct {
	Name        string   `json:"name"`                  // color name (e.g. grass)
	Display     *RGBA    `json:"color,omitempty"`       // display color, derived from the name when omitted
	Tile        *int     `json:"tile,omitempty"`        // representative tile
	Probability *float64 `json:"probability,omitempty"` // relative weight, 1 when omitted
}

// RGBA is a display color.
type RGBA struct {
	R byte `json:"r"` // red component
	G byte `json:"g"` // green component
	B byte `json:"b"` // blue component
	A byte `json:"a"` // alpha component
}

// WangTile registers a tile, drawn with optional flips, under a Wang id.
type WangTile struct {
	WangID string `json:"wang_id"`         // eight comma separated colors, top first, clockwise
	Tile   int    `json:"tile"`            // tile id
	HFlip  bool   `json:"hflip,omitempty"` // flipped horizontally
	VFlip  bool   `json:"vflip,omitempty"` // flipped vertically
	DFlip  bool   `json:"dflip,omitempty"` // flipped anti-diagonally
}

// Map is a grid to fill with tiles of one set.
type Map struct {
	Set    string `json:"wang_set"`        // name of the set to paint with
	Cells  []Cell `json:"cells,omitempty"` // cells placed before filling
	Width  int    `json:"width"`           // columns
	Height int    `json:"height"`          // rows
	Seed   uint64 `json:"seed,omitempty"`  // random seed for tie breaks
}

// Cell is a placed tile of a map.
type Cell struct {
	X     int  `json:"x"`               // column
	Y     int  `json:"y"`               // row
	Tile  int  `json:"tile"`            // tile id
	HFlip bool `json:"hflip,omitempty"` // flipped horizontally
	VFlip bool `json:"vflip,omitempty"` // flipped vertically
	DFlip bool `json:"dflip,omitempty"` // flipped anti-diagonally
}
