package wang

// MixColors returns the rounded average of the provided colors, opaque.
// Weighting is achieved by passing the same color multiple times.
func MixColors(colors ...RGBA) RGBA {
	if len(colors) == 0 {
		return RGBA{A: 255}
	}

	var sr, sg, sb int
	for _, c := range colors {
		sr += int(c.R)
		sg += int(c.G)
		sb += int(c.B)
	}

	n := len(colors)
	return RGBA{
		R: byte((sr + n/2) / n),
		G: byte((sg + n/2) / n),
		B: byte((sb + n/2) / n),
		A: 255,
	}
}

// DisplayColor returns the mix of the display colors of the fields of id.
// Wildcards do not take part; an id without colors yields opaque black.
func (s *Set) DisplayColor(id ID) RGBA {
	var colors []RGBA
	for i := Index(0); i < NumIndexes; i++ {
		if c := id.IndexColor(i); c != 0 {
			colors = append(colors, s.ColorAt(c).Display)
		}
	}

	return MixColors(colors...)
}

// Hex formats the color as #rrggbb, with an alpha byte appended when not opaque.
func (c RGBA) Hex() string {
	const digits = "0123456789abcdef"

	out := []byte{'#'}
	for _, v := range []byte{c.R, c.G, c.B} {
		out = append(out, digits[v>>4], digits[v&0x0f])
	}
	if c.A != 255 {
		out = append(out, digits[c.A>>4], digits[c.A&0x0f])
	}

	return string(out)
}
