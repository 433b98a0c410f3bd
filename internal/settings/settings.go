package settings

import (
	"errors"
	"fmt"
	"math"
)

// Configuration holds every tunable parameter of the decoration. It is a
// plain value: the renderer reads a copy on every pass.
type Configuration struct {
	NumberOfPins    int
	WireYHeight     float64 // baseline, measured down from the top of the scene
	DroopHeight     float64
	Resolution      int // samples per Bézier segment
	NumberOfLights  int
	LightbulbScale  float64
	LightbulbOffset float64
	SocketOffset    float64
	AnchorBuffer    float64
	AnimationStyle  AnimationStyle
	Pattern         []string
	ColorMode       ColorMode
	HueRotation     float64 // 0..1, added to every dynamic hue
	FrameRate       int
}

// Ranges used by Normalize and the settings panel.
const (
	MaxPins       = 32
	MaxLights     = 200
	MaxResolution = 400
	MinScale      = 0.25
	MaxScale      = 4
	MinFrameRate  = 1
	MaxFrameRate  = 120
)

// Default returns the configuration garland starts with.
func Default() Configuration {
	return Configuration{
		NumberOfPins:    4,
		WireYHeight:     6,
		DroopHeight:     8,
		Resolution:      50,
		NumberOfLights:  18,
		LightbulbScale:  1,
		LightbulbOffset: 0,
		SocketOffset:    1.5,
		AnchorBuffer:    4,
		AnimationStyle:  StyleTwinkle,
		Pattern:         []string{"Red", "Green", "Blue", "Yellow"},
		ColorMode:       ColorPredefined,
		HueRotation:     0,
		FrameRate:       30,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Configuration) Clone() Configuration {
	c.Pattern = append([]string(nil), c.Pattern...)
	return c
}

// Validate reports every field that is out of range. A pin count below two is
// not an error: the renderer degrades to an empty wire.
func (c Configuration) Validate() error {
	var errs []error
	if c.NumberOfPins < 0 {
		errs = append(errs, fmt.Errorf("number of pins must not be negative, got %d", c.NumberOfPins))
	}
	if c.NumberOfLights < 0 {
		errs = append(errs, fmt.Errorf("number of lights must not be negative, got %d", c.NumberOfLights))
	}
	if c.Resolution < 1 {
		errs = append(errs, fmt.Errorf("resolution must be at least 1, got %d", c.Resolution))
	}
	if c.FrameRate < MinFrameRate {
		errs = append(errs, fmt.Errorf("frame rate must be at least %d, got %d", MinFrameRate, c.FrameRate))
	}
	if c.LightbulbScale <= 0 {
		errs = append(errs, fmt.Errorf("lightbulb scale must be positive, got %g", c.LightbulbScale))
	}
	if c.AnchorBuffer < 0 {
		errs = append(errs, fmt.Errorf("anchor buffer must not be negative, got %g", c.AnchorBuffer))
	}
	if !c.AnimationStyle.Valid() {
		errs = append(errs, fmt.Errorf("unknown animation style %d", int(c.AnimationStyle)))
	}
	for name, v := range map[string]float64{
		"wire y height":    c.WireYHeight,
		"droop height":     c.DroopHeight,
		"lightbulb scale":  c.LightbulbScale,
		"lightbulb offset": c.LightbulbOffset,
		"socket offset":    c.SocketOffset,
		"anchor buffer":    c.AnchorBuffer,
		"hue rotation":     c.HueRotation,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite", name))
		}
	}
	for _, name := range c.Pattern {
		if _, ok := LookupColor(name); !ok {
			errs = append(errs, fmt.Errorf("unknown pattern color %q", name))
		}
	}
	return errors.Join(errs...)
}

// Normalize clamps every field into its legal range.
func (c Configuration) Normalize() Configuration {
	c = c.Clone()
	c.NumberOfPins = clampInt(c.NumberOfPins, 0, MaxPins)
	c.NumberOfLights = clampInt(c.NumberOfLights, 0, MaxLights)
	c.Resolution = clampInt(c.Resolution, 1, MaxResolution)
	c.FrameRate = clampInt(c.FrameRate, MinFrameRate, MaxFrameRate)
	c.WireYHeight = finite(c.WireYHeight, 0)
	c.DroopHeight = finite(c.DroopHeight, 0)
	c.LightbulbScale = clampFloat(finite(c.LightbulbScale, 1), MinScale, MaxScale)
	c.LightbulbOffset = finite(c.LightbulbOffset, 0)
	c.SocketOffset = finite(c.SocketOffset, 0)
	c.AnchorBuffer = math.Max(0, finite(c.AnchorBuffer, 0))
	c.HueRotation = WrapHue(finite(c.HueRotation, 0))
	if !c.AnimationStyle.Valid() {
		c.AnimationStyle = StyleNone
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
