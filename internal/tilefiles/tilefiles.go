// Package tilefiles parses tile image filenames that carry a Wang id.
//
// A name has the form <set>_<kind>_<colors>, where kind is c (corner), e
// (edge) or m (mixed) and colors are dash separated:
//
//	grass-sand_c_1-2-2-1    corners, clockwise from top-right
//	road_e_1-0-1-0          edges, clockwise from top
//	cliff_m_1-1-1-1-2-2-2-2 all eight fields, clockwise from top
package tilefiles

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/woozymasta/wang-tool/internal/wang"
)

// ImageExts are the file extensions treated as tile images.
var ImageExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tga", ".webp"}

// Parsed is the information encoded in a tile image name.
type Parsed struct {
	SetName string    // set name (e.g. grass-sand)
	Name    string    // base name without extension
	ID      wang.ID   // wang id
	Type    wang.Type // set type selected by the kind marker
}

// IsImage reports whether path has a tile image extension.
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExts {
		if ext == e {
			return true
		}
	}

	return false
}

// ParseFile parses the tile information from a file path.
func ParseFile(path string) (Parsed, bool) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return ParseBase(base)
}

// ParseBase parses the tile information from a base name.
func ParseBase(base string) (Parsed, bool) {
	idx := strings.LastIndex(base, "_")
	if idx <= 0 || idx == len(base)-1 {
		return Parsed{}, false
	}
	head, colors := base[:idx], base[idx+1:]

	idx = strings.LastIndex(head, "_")
	if idx <= 0 || idx == len(head)-1 {
		return Parsed{}, false
	}
	setName, kind := head[:idx], head[idx+1:]

	var typ wang.Type
	switch strings.ToLower(kind) {
	case "c":
		typ = wang.Corner
	case "e":
		typ = wang.Edge
	case "m":
		typ = wang.Mixed
	default:
		return Parsed{}, false
	}

	fields := strings.Split(colors, "-")
	want := wang.NumCorners
	if typ == wang.Mixed {
		want = wang.NumIndexes
	}
	if len(fields) != want {
		return Parsed{}, false
	}

	var id wang.ID
	for i, f := range fields {
		if !isDigits(f) {
			return Parsed{}, false
		}
		c, err := strconv.Atoi(f)
		if err != nil || c > wang.MaxColorCount {
			return Parsed{}, false
		}

		switch typ {
		case wang.Corner:
			id.SetCornerColor(i, c)
		case wang.Edge:
			id.SetEdgeColor(i, c)
		default:
			id.SetIndexColor(wang.Index(i), c)
		}
	}
	if id == 0 {
		return Parsed{}, false
	}

	return Parsed{SetName: setName, Name: base, ID: id, Type: typ}, true
}

// ColorNames returns the terrain names encoded in a set name, split on dashes
// (grass-sand gives grass and sand).
func ColorNames(setName string) []string {
	var out []string
	for _, p := range strings.Split(setName, "-") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// isDigits checks if a string contains only digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
