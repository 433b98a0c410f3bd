package settings

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NamedColor is an entry in the bulb color table.
type NamedColor struct {
	Name  string
	Hex   string
	Color colorful.Color
	// Hue is the color's HSV hue as a fraction of a full turn (0..1).
	Hue float64
	// Chromatic is false for whites, which have no hue to rotate towards.
	Chromatic bool
}

var colorTable = []struct {
	name string
	hex  string
}{
	{"Red", "#E8202A"},
	{"Orange", "#FF8A1C"},
	{"Yellow", "#FFD21F"},
	{"Gold", "#E0B030"},
	{"Lime", "#9BE22D"},
	{"Green", "#1FB33C"},
	{"Teal", "#17B5A5"},
	{"Cyan", "#2BD9F0"},
	{"Blue", "#2B5BF0"},
	{"Purple", "#8A3BE8"},
	{"Magenta", "#E02DC8"},
	{"Pink", "#FF6FAE"},
	{"White", "#F4F4F4"},
	{"Warm White", "#FFE9C2"},
}

// NamedColors maps lowercased color names to their table entries. The table
// is the full set of colors a pattern can hold, which also bounds the hue
// texture cache.
var NamedColors = buildColorTable()

func buildColorTable() map[string]NamedColor {
	out := make(map[string]NamedColor, len(colorTable))
	for _, c := range colorTable {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			panic(fmt.Sprintf("settings: bad color %s: %v", c.name, err))
		}
		h, s, _ := col.Hsv()
		out[strings.ToLower(c.name)] = NamedColor{
			Name:      c.name,
			Hex:       c.hex,
			Color:     col,
			Hue:       math.Mod(h/360, 1),
			Chromatic: s > 0.25,
		}
	}
	return out
}

// LookupColor finds a color by name, ignoring case and surrounding space.
func LookupColor(name string) (NamedColor, bool) {
	c, ok := NamedColors[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ColorNames returns the canonical color names in table order.
func ColorNames() []string {
	names := make([]string, len(colorTable))
	for i, c := range colorTable {
		names[i] = c.name
	}
	return names
}

// ParsePattern splits a comma-separated list of color names and returns them
// in their canonical spelling. Unknown names are reported together.
func ParsePattern(s string) ([]string, error) {
	var out []string
	var unknown []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, ok := LookupColor(part)
		if !ok {
			unknown = append(unknown, part)
			continue
		}
		out = append(out, c.Name)
	}
	if len(unknown) > 0 {
		return out, fmt.Errorf("unknown colors: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

// Preset is a named color pattern.
type Preset struct {
	Name    string
	Pattern []string
}

var presets = []Preset{
	{Name: "classic", Pattern: []string{"Red", "Green", "Blue", "Yellow"}},
	{Name: "candy cane", Pattern: []string{"Red", "White"}},
	{Name: "icy", Pattern: []string{"White", "Cyan", "Blue"}},
	{Name: "warm", Pattern: []string{"Warm White", "Gold", "Orange"}},
	{Name: "rainbow", Pattern: []string{"Red", "Orange", "Yellow", "Green", "Blue", "Purple"}},
}

// Presets returns the built-in patterns in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: p.Name, Pattern: append([]string(nil), p.Pattern...)}
	}
	return out
}

// PresetFor returns the index of the preset whose pattern equals pattern, or -1.
func PresetFor(pattern []string) int {
	for i, p := range presets {
		if len(p.Pattern) != len(pattern) {
			continue
		}
		match := true
		for j := range pattern {
			if !strings.EqualFold(p.Pattern[j], pattern[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// HueOffsets returns the distinct hue offsets of the chromatic colors in
// pattern, shifted by rotation and sorted.
func HueOffsets(pattern []string, rotation float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, name := range pattern {
		c, ok := LookupColor(name)
		if !ok || !c.Chromatic {
			continue
		}
		off := WrapHue(c.Hue + rotation)
		if seen[off] {
			continue
		}
		seen[off] = true
		out = append(out, off)
	}
	sort.Float64s(out)
	return out
}

// WrapHue folds a hue offset into [0, 1).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}
	return h
}
