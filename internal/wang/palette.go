package wang

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// defaultColors are handed out to new colors in order.
var defaultColors = []RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 119, B: 0, A: 255},
	{R: 0, G: 233, B: 255, A: 255},
	{R: 255, G: 0, B: 216, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 160, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 161, A: 255},
	{R: 255, G: 168, B: 168, A: 255},
	{R: 180, G: 168, B: 255, A: 255},
	{R: 150, G: 255, B: 167, A: 255},
	{R: 142, G: 120, B: 72, A: 255},
	{R: 90, G: 90, B: 90, A: 255},
	{R: 14, G: 122, B: 70, A: 255},
}

// terrainRule assigns a display color to terrain names containing one of Keys.
type terrainRule struct {
	Keys  []string // substrings to match (e.g. ["water", "sea"])
	Color RGBA
}

var terrainRules = []terrainRule{
	{Keys: []string{"water", "sea", "lake"}, Color: RGBA{R: 60, G: 120, B: 220, A: 255}},
	{Keys: []string{"snow", "ice"}, Color: RGBA{R: 170, G: 220, B: 255, A: 255}},
	{Keys: []string{"sand", "beach", "desert"}, Color: RGBA{R: 220, G: 200, B: 160, A: 255}},
	{Keys: []string{"grass", "meadow"}, Color: RGBA{R: 80, G: 200, B: 120, A: 255}},
	{Keys: []string{"forest", "wood"}, Color: RGBA{R: 40, G: 110, B: 40, A: 255}},
	{Keys: []string{"rock", "stone", "cliff"}, Color: RGBA{R: 120, G: 115, B: 110, A: 255}},
	{Keys: []string{"dirt", "mud"}, Color: RGBA{R: 140, G: 90, B: 55, A: 255}},
	{Keys: []string{"lava"}, Color: RGBA{R: 200, G: 70, B: 50, A: 255}},
	{Keys: []string{"road", "path"}, Color: RGBA{R: 170, G: 170, B: 170, A: 255}},
}

// DefaultColor returns the display color handed out to the n-th (1-based) color of a set.
// Beyond the built-in table the color is derived from a hash of the set name and n.
func DefaultColor(setName string, n int) RGBA {
	if n >= 1 && n <= len(defaultColors) {
		return defaultColors[n-1]
	}

	return hashColor(setName + "#" + strconv.Itoa(n))
}

// PaletteColor returns a display color for a terrain name.
func PaletteColor(name string) RGBA {
	name = strings.ToLower(name)
	for _, rule := range terrainRules {
		if rule.matches(name) {
			return rule.Color
		}
	}

	return hashColor(name)
}

// matches checks if a name matches a terrain rule.
func (r terrainRule) matches(name string) bool {
	for _, k := range r.Keys {
		if strings.Contains(name, k) {
			return true
		}
	}

	return false
}

// hashColor hashes a name to a saturated, mid-bright color.
func hashColor(name string) RGBA {
	h := hash32(name)
	r := byte(60 + (h&0xff)%160)
	g := byte(60 + ((h>>8)&0xff)%160)
	b := byte(60 + ((h>>16)&0xff)%160)
	avg := (int(r) + int(g) + int(b)) / 3
	r = clampByte(avg + int(float64(int(r)-avg)*1.2))
	g = clampByte(avg + int(float64(int(g)-avg)*1.2))
	b = clampByte(avg + int(float64(int(b)-avg)*1.2))

	return RGBA{R: r, G: g, B: b, A: 255}
}

// hash32 folds the 64-bit xxhash of s into 32 bits.
func hash32(s string) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], xxhash.Sum64String(s))
	lo := binary.LittleEndian.Uint32(buf[:4])
	hi := binary.LittleEndian.Uint32(buf[4:])

	return lo ^ hi
}

// clampByte clamps a channel value.
func clampByte(v int) byte {
	if v < 40 {
		return 40
	}
	if v > 220 {
		return 220
	}

	return byte(v)
}
