package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"github.com/olivier-w/garland/internal/settings"
)

// envPrefix lets every flag be set from the environment, e.g. GARLAND_LIGHTS.
const envPrefix = "GARLAND"

type options struct {
	cfg   settings.Configuration
	debug bool
}

// parseFlags builds the starting configuration from args and the
// environment. It returns flag.ErrHelp when usage was requested.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	d := settings.Default()
	fs := flag.NewFlagSet("garland", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		pins      = fs.Int("pins", d.NumberOfPins, "number of pins the wire hangs from")
		lights    = fs.Int("lights", d.NumberOfLights, "number of lightbulbs")
		droop     = fs.Float64("droop", d.DroopHeight, "how far the wire sags between pins, in pixels")
		height    = fs.Float64("wire-height", d.WireYHeight, "distance of the pins below the top edge, in pixels")
		scale     = fs.Float64("scale", d.LightbulbScale, "lightbulb scale")
		style     = fs.String("style", d.AnimationStyle.String(), "animation: "+styleList())
		pattern   = fs.String("pattern", strings.Join(d.Pattern, ","), "comma-separated bulb colors: "+strings.Join(settings.ColorNames(), ", "))
		preset    = fs.String("preset", "", "named pattern: "+presetList()+" (overrides -pattern)")
		hueDeg    = fs.Float64("hue", 0, "hue shift in degrees for dynamic colors")
		dynamic   = fs.Bool("dynamic", false, "tint bulbs by hue instead of predefined textures")
		frameRate = fs.Int("fps", d.FrameRate, "frames per second")
		debug     = fs.Bool("debug", false, "write a debug log")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix(envPrefix)); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := d
	cfg.NumberOfPins = *pins
	cfg.NumberOfLights = *lights
	cfg.DroopHeight = *droop
	cfg.WireYHeight = *height
	cfg.LightbulbScale = *scale
	cfg.HueRotation = *hueDeg / 360
	cfg.FrameRate = *frameRate
	if *dynamic {
		cfg.ColorMode = settings.ColorDynamic
	}

	var errs []error
	s, err := settings.ParseStyle(*style)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.AnimationStyle = s

	if *preset != "" {
		p, ok := lookupPreset(*preset)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown preset %q (want one of %s)", *preset, presetList()))
		}
		cfg.Pattern = p.Pattern
	} else {
		p, err := settings.ParsePattern(*pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("pattern: %w", err))
		}
		cfg.Pattern = p
	}

	if len(errs) == 0 {
		if err := cfg.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return options{}, err
	}
	return options{cfg: cfg.Normalize(), debug: *debug}, nil
}

func lookupPreset(name string) (settings.Preset, bool) {
	for _, p := range settings.Presets() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return settings.Preset{}, false
}

func styleList() string {
	var names []string
	for _, s := range settings.Styles() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

func presetList() string {
	var names []string
	for _, p := range settings.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
