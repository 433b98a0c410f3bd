package garland

import (
	"image/color"

	"github.com/olivier-w/garland/internal/settings"
)

// Palette returns the named color table in the form the sprite store takes.
func Palette() map[string]color.Color {
	out := make(map[string]color.Color, len(settings.NamedColors))
	for _, c := range settings.NamedColors {
		out[c.Name] = c.Color
	}
	return out
}
