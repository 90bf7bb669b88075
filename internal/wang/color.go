package wang

// RGBA is the display color of a Wang color.
type RGBA struct {
	R byte `json:"r"` // red component
	G byte `json:"g"` // green component
	B byte `json:"b"` // blue component
	A byte `json:"a"` // alpha component
}

// Color is a terrain color of a Set, referenced from IDs by its 1-based index.
type Color struct {
	set         *Set   // owning set, not owned
	distance    []int  // transition distance to every color index, 0 included
	Name        string // display name (e.g. grass)
	index       int    // 1-based index inside the owning set
	ImageTileID int    // representative tile, -1 when unset
	Probability float64
	Display     RGBA
}

// NewColor creates a detached color with probability 1 and no image.
func NewColor(name string, display RGBA) *Color {
	return &Color{Name: name, Display: display, ImageTileID: -1, Probability: 1}
}

// Index returns the 1-based color index, or 0 for a detached color.
func (c *Color) Index() int {
	return c.index
}

// Set returns the owning set, or nil for a detached color.
func (c *Color) Set() *Set {
	return c.set
}

// DistanceToColor returns the transition distance from this color to target.
// Target 0 is the wildcard. Unreachable colors yield Unreachable.
func (c *Color) DistanceToColor(target int) int {
	if c.set != nil {
		c.set.ensureDistances()
	}
	if target < 0 || target >= len(c.distance) {
		violatef("wang: distance target %d out of range [0,%d)", target, len(c.distance))
	}

	return c.distance[target]
}

// clone returns a detached copy carrying the distance row.
func (c *Color) clone() *Color {
	out := *c
	out.set = nil
	out.distance = append([]int(nil), c.distance...)

	return &out
}
