package wire

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// FallbackColor is used when a pattern has no colors.
const FallbackColor = "white"

// Anchor is a point on the wire where a lightbulb hangs, with the unit normal
// of the wire there. Normal is the zero vector where the tangent vanished.
type Anchor struct {
	Position r2.Vec
	Normal   r2.Vec
}

// Angle returns the direction of the normal in radians. A zero normal points
// straight up so the bulb keeps its default orientation.
func (a Anchor) Angle() float64 {
	if a.Normal.X == 0 && a.Normal.Y == 0 {
		return math.Pi / 2
	}
	return math.Atan2(a.Normal.Y, a.Normal.X)
}

// Rotation is the bulb rotation for this anchor: the normal's angle minus 90°.
func (a Anchor) Rotation() float64 {
	return a.Angle() - math.Pi/2
}

// ExtractAnchors picks count evenly spaced anchors from sampled points,
// skipping points within buffer of either horizontal end. The last surviving
// point is always included once when count is at least two.
func ExtractAnchors(points []r2.Vec, count int, buffer float64) []Anchor {
	if len(points) == 0 || count <= 0 {
		return nil
	}
	minX := points[0].X + buffer
	maxX := points[len(points)-1].X - buffer

	filtered := make([]r2.Vec, 0, len(points))
	for _, p := range points {
		if p.X >= minX && p.X <= maxX {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	stride := float64(len(filtered)) / float64(max(count-1, 1))
	if count <= 1 {
		stride = float64(len(filtered))
	}

	indices := make([]int, 0, count)
	for i := 0; len(indices) < count; i++ {
		idx := int(math.Round(float64(i) * stride))
		if idx >= len(filtered) {
			break
		}
		if n := len(indices); n > 0 && filtered[indices[n-1]] == filtered[idx] {
			continue
		}
		indices = append(indices, idx)
	}

	last := len(filtered) - 1
	if count > 1 && filtered[indices[len(indices)-1]] != filtered[last] {
		if len(indices) < count {
			indices = append(indices, last)
		} else {
			indices[len(indices)-1] = last
		}
	}

	anchors := make([]Anchor, len(indices))
	for i, idx := range indices {
		anchors[i] = Anchor{
			Position: filtered[idx],
			Normal:   normalAt(filtered, idx),
		}
	}
	return anchors
}

// normalAt estimates the tangent at i by finite differences and rotates it
// 90° counterclockwise.
func normalAt(points []r2.Vec, i int) r2.Vec {
	if len(points) < 2 {
		return r2.Vec{}
	}
	var tangent r2.Vec
	switch {
	case i == 0:
		tangent = r2.Sub(points[1], points[0])
	case i == len(points)-1:
		tangent = r2.Sub(points[i], points[i-1])
	default:
		tangent = r2.Sub(points[i+1], points[i-1])
	}
	if r2.Norm(tangent) == 0 {
		return r2.Vec{}
	}
	return r2.Unit(r2.Vec{X: -tangent.Y, Y: tangent.X})
}

// DetermineColor returns the pattern color for the bulb at index, cycling
// through the pattern. An empty pattern yields FallbackColor.
func DetermineColor(pattern []string, index int) string {
	if len(pattern) == 0 {
		return FallbackColor
	}
	if index < 0 {
		index = -index
	}
	c := strings.TrimSpace(pattern[index%len(pattern)])
	if c == "" {
		return FallbackColor
	}
	return c
}
