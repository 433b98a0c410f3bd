package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatNumber formats v with at most decimals fraction digits, dropping
// trailing zeros.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// FormatHue formats a 0..1 hue offset as whole degrees.
func FormatHue(offset float64) string {
	deg := int(math.Round(offset*360)) % 360
	if deg < 0 {
		deg += 360
	}
	return fmt.Sprintf("%d°", deg)
}

// FormatPattern joins color names for display. An empty pattern shows the
// color every bulb falls back to.
func FormatPattern(pattern []string, fallback string) string {
	if len(pattern) == 0 {
		return "(" + fallback + ")"
	}
	return strings.Join(pattern, ", ")
}

// FormatFrameTime formats the frame interval of fps as milliseconds.
func FormatFrameTime(fps int) string {
	if fps <= 0 {
		return "-"
	}
	d := time.Second / time.Duration(fps)
	return fmt.Sprintf("%dms", d.Milliseconds())
}
