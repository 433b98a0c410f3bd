package main

import (
	"bytes"
	"errors"
	"flag"
	"math"
	"strings"
	"testing"

	"github.com/olivier-w/garland/internal/settings"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := settings.Default()
	if opts.cfg.NumberOfLights != d.NumberOfLights || opts.cfg.NumberOfPins != d.NumberOfPins {
		t.Fatalf("expected defaults, got %+v", opts.cfg)
	}
	if opts.cfg.AnimationStyle != settings.StyleTwinkle || opts.cfg.ColorMode != settings.ColorPredefined {
		t.Fatalf("unexpected style or mode: %v %v", opts.cfg.AnimationStyle, opts.cfg.ColorMode)
	}
	if strings.Join(opts.cfg.Pattern, ",") != "Red,Green,Blue,Yellow" {
		t.Fatalf("unexpected pattern %v", opts.cfg.Pattern)
	}
	if opts.debug {
		t.Fatal("expected debug off")
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{
		"-pins", "6", "-lights", "30", "-droop", "12", "-style", "Chase",
		"-pattern", "red, warm white", "-hue", "90", "-dynamic", "-fps", "60", "-debug",
	}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := opts.cfg
	if c.NumberOfPins != 6 || c.NumberOfLights != 30 || c.DroopHeight != 12 || c.FrameRate != 60 {
		t.Fatalf("unexpected numbers %+v", c)
	}
	if c.AnimationStyle != settings.StyleChase || c.ColorMode != settings.ColorDynamic {
		t.Fatalf("unexpected style or mode: %v %v", c.AnimationStyle, c.ColorMode)
	}
	if strings.Join(c.Pattern, ",") != "Red,Warm White" {
		t.Fatalf("expected canonical names, got %v", c.Pattern)
	}
	if math.Abs(c.HueRotation-0.25) > 1e-12 {
		t.Fatalf("expected a quarter turn, got %v", c.HueRotation)
	}
	if !opts.debug {
		t.Fatal("expected debug on")
	}
}

func TestParseFlagsPreset(t *testing.T) {
	opts, err := parseFlags([]string{"-preset", "Candy Cane", "-pattern", "blue"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(opts.cfg.Pattern, ",") != "Red,White" {
		t.Fatalf("expected the preset to win, got %v", opts.cfg.Pattern)
	}
}

func TestParseFlagsEnvironment(t *testing.T) {
	t.Setenv("GARLAND_LIGHTS", "7")
	t.Setenv("GARLAND_STYLE", "steady")
	opts, err := parseFlags([]string{"-style", "pulse"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.cfg.NumberOfLights != 7 {
		t.Fatalf("expected lights from the environment, got %d", opts.cfg.NumberOfLights)
	}
	if opts.cfg.AnimationStyle != settings.StylePulse {
		t.Fatalf("expected the flag to beat the environment, got %v", opts.cfg.AnimationStyle)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"style", []string{"-style", "strobe"}, "strobe"},
		{"pattern", []string{"-pattern", "red,plaid"}, "plaid"},
		{"preset", []string{"-preset", "neon"}, "neon"},
		{"negative lights", []string{"-lights", "-1"}, "lights"},
		{"not a number", []string{"-pins", "many"}, "pins"},
		{"extra args", []string{"extra"}, "unexpected arguments"},
		{"fps", []string{"-fps", "0"}, "frame rate"},
	}
	for _, tt := range tests {
		_, err := parseFlags(tt.args, &bytes.Buffer{})
		if err == nil {
			t.Fatalf("%s: expected an error", tt.name)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%s: expected %q in %v", tt.name, tt.want, err)
		}
	}
}

func TestParseFlagsHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "-lights") {
		t.Fatalf("expected usage on stderr, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Warm White") {
		t.Fatalf("expected the color names in the pattern help, got %q", out.String())
	}
}

func TestRunExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-style", "strobe"}, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for a bad flag, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Fatalf("expected an error message, got %q", stderr.String())
	}
	if code := run([]string{"-help"}, &bytes.Buffer{}); code != 0 {
		t.Fatalf("expected exit 0 for help, got %d", code)
	}
}
