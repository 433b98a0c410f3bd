package settings

import (
	"fmt"
	"strings"
)

// AnimationStyle selects the timed visibility cycle a lightbulb runs.
type AnimationStyle int

const (
	StyleNone AnimationStyle = iota
	StyleSteady
	StyleFlicker
	StyleTwinkle
	StylePulse
	StyleChase
)

var styleNames = [...]string{
	StyleNone:    "none",
	StyleSteady:  "steady",
	StyleFlicker: "flicker",
	StyleTwinkle: "twinkle",
	StylePulse:   "pulse",
	StyleChase:   "chase",
}

// Styles returns every animation style in display order.
func Styles() []AnimationStyle {
	return []AnimationStyle{StyleNone, StyleSteady, StyleFlicker, StyleTwinkle, StylePulse, StyleChase}
}

// String returns the name of the style.
func (s AnimationStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

// Valid reports whether s is one of the known styles.
func (s AnimationStyle) Valid() bool {
	return s >= StyleNone && s <= StyleChase
}

// Next cycles to the following style, wrapping around.
func (s AnimationStyle) Next() AnimationStyle {
	return AnimationStyle((int(s) + 1) % len(styleNames))
}

// Prev cycles to the preceding style, wrapping around.
func (s AnimationStyle) Prev() AnimationStyle {
	return AnimationStyle((int(s) + len(styleNames) - 1) % len(styleNames))
}

// ParseStyle looks up a style by name, ignoring case.
func ParseStyle(name string) (AnimationStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return AnimationStyle(i), nil
		}
	}
	return StyleNone, fmt.Errorf("unknown animation style %q (want one of %s)", name, strings.Join(styleNames[:], ", "))
}

// ColorMode selects how bulb textures are colored.
type ColorMode int

const (
	// ColorPredefined loads a pre-drawn texture per color name.
	ColorPredefined ColorMode = iota
	// ColorDynamic hue-rotates the base textures.
	ColorDynamic
)

// Toggle switches between predefined and dynamic coloring.
func (m ColorMode) Toggle() ColorMode {
	if m == ColorDynamic {
		return ColorPredefined
	}
	return ColorDynamic
}

func (m ColorMode) String() string {
	if m == ColorDynamic {
		return "dynamic"
	}
	return "predefined"
}
