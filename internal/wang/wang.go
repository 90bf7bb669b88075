// Package wang implements Wang ids, Wang colors, Wang tiles and Wang sets:
// the terrain matching engine behind corner/edge autotiling.
package wang

import "strings"

// Type selects which fields of an ID are meaningful for a set.
type Type int

const (
	// Corner sets only use the four corner fields.
	Corner Type = iota
	// Edge sets only use the four edge fields.
	Edge
	// Mixed sets use all eight fields.
	Mixed
)

// String returns the textual type name.
func (t Type) String() string {
	switch t {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Mixed:
		return "mixed"
	default:
		return ""
	}
}

// ParseType parses a type name. Unknown names fall back to Mixed.
func ParseType(s string) Type {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge":
		return Edge
	case "corner":
		return Corner
	default:
		return Mixed
	}
}

// Mask returns the fields that are applicable to the type.
func (t Type) Mask() ID {
	switch t {
	case Corner:
		return MaskCorners
	case Edge:
		return MaskEdges
	default:
		return FullMask
	}
}

// HasWildCards reports whether any applicable field of id is unset.
func (t Type) HasWildCards(id ID) bool {
	switch t {
	case Corner:
		return id.HasCornerWildCards()
	case Edge:
		return id.HasEdgeWildCards()
	default:
		return id.HasWildCards()
	}
}

// fieldCount is the number of applicable fields.
func (t Type) fieldCount() int {
	if t == Mixed {
		return NumIndexes
	}

	return NumCorners
}
