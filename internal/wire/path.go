// Package wire builds the drooping light-string path and places anchors on it.
//
// Coordinates are y-up: droop moves control points towards smaller y.
package wire

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CalculatePinPoints spaces n pins evenly along a baseline at height y, the
// first at x=0 and the last at x=width. A single pin sits at x=0.
func CalculatePinPoints(width, y float64, n int) []r2.Vec {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []r2.Vec{{X: 0, Y: y}}
	}
	step := width / float64(n-1)
	pins := make([]r2.Vec, n)
	for i := range n {
		pins[i] = r2.Vec{X: float64(i) * step, Y: y}
	}
	// Pin the last point exactly to width regardless of rounding.
	pins[n-1].X = width
	return pins
}

// Segment is a quadratic Bézier curve between two pins.
type Segment struct {
	Start   r2.Vec
	Control r2.Vec
	End     r2.Vec
}

// At evaluates the segment at parameter t in [0, 1].
func (s Segment) At(t float64) r2.Vec {
	u := 1 - t
	p := r2.Scale(u*u, s.Start)
	p = r2.Add(p, r2.Scale(2*u*t, s.Control))
	return r2.Add(p, r2.Scale(t*t, s.End))
}

// Path is the chain of droop segments between consecutive pins. Adjacent
// segments share endpoints but not tangents, so the wire kinks at every pin.
type Path struct {
	Segments []Segment
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool {
	return len(p.Segments) == 0
}

// BuildPath connects consecutive pins with segments whose control point hangs
// droop below the lower of the two endpoints, halfway between them.
func BuildPath(pins []r2.Vec, droop float64) Path {
	if len(pins) < 2 {
		return Path{}
	}
	segs := make([]Segment, 0, len(pins)-1)
	for i := 1; i < len(pins); i++ {
		start, end := pins[i-1], pins[i]
		segs = append(segs, Segment{
			Start: start,
			Control: r2.Vec{
				X: (start.X + end.X) / 2,
				Y: math.Min(start.Y, end.Y) - droop,
			},
			End: end,
		})
	}
	return Path{Segments: segs}
}

// Sample evaluates every segment at resolution+1 evenly spaced parameters and
// concatenates them in pin order. A shared pin is emitted once.
func (p Path) Sample(resolution int) []r2.Vec {
	if p.Empty() {
		return nil
	}
	if resolution < 1 {
		resolution = 1
	}
	out := make([]r2.Vec, 0, len(p.Segments)*resolution+1)
	for i, seg := range p.Segments {
		first := 0
		if i > 0 {
			first = 1
		}
		for step := first; step <= resolution; step++ {
			out = append(out, seg.At(float64(step)/float64(resolution)))
		}
	}
	return out
}
