package wire

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculatePinPointsEvenlySpaced(t *testing.T) {
	tests := []struct {
		width float64
		n     int
	}{
		{1200, 2},
		{1200, 4},
		{80, 7},
		{333, 32},
	}
	for _, tt := range tests {
		pins := CalculatePinPoints(tt.width, 10, tt.n)
		if len(pins) != tt.n {
			t.Fatalf("n=%d: expected %d pins, got %d", tt.n, tt.n, len(pins))
		}
		if pins[0].X != 0 || pins[len(pins)-1].X != tt.width {
			t.Fatalf("n=%d: expected x from 0 to %v, got %v..%v", tt.n, tt.width, pins[0].X, pins[len(pins)-1].X)
		}
		gap := tt.width / float64(tt.n-1)
		for i := 1; i < len(pins); i++ {
			if pins[i].X <= pins[i-1].X {
				t.Fatalf("n=%d: x not strictly increasing at %d", tt.n, i)
			}
			if math.Abs(pins[i].X-pins[i-1].X-gap) > 1e-6 {
				t.Fatalf("n=%d: uneven gap at %d", tt.n, i)
			}
			if pins[i].Y != 10 {
				t.Fatalf("n=%d: expected y 10, got %v", tt.n, pins[i].Y)
			}
		}
	}
}

func TestCalculatePinPointsDegenerate(t *testing.T) {
	if pins := CalculatePinPoints(100, 5, 0); pins != nil {
		t.Fatalf("expected no pins, got %v", pins)
	}
	pins := CalculatePinPoints(100, 5, 1)
	if len(pins) != 1 || pins[0] != (r2.Vec{X: 0, Y: 5}) {
		t.Fatalf("expected single pin at origin x, got %v", pins)
	}
	if p := BuildPath(pins, 10); !p.Empty() {
		t.Fatal("expected empty path for a single pin")
	}
	if pts := BuildPath(pins, 10).Sample(10); pts != nil {
		t.Fatalf("expected no samples, got %d", len(pts))
	}
}

func TestBuildPathScenario(t *testing.T) {
	pins := CalculatePinPoints(1200, 165, 4)
	wantX := []float64{0, 400, 800, 1200}
	for i, p := range pins {
		if !near(p.X, wantX[i]) || p.Y != 165 {
			t.Fatalf("pin %d: expected (%v,165), got %v", i, wantX[i], p)
		}
	}

	path := BuildPath(pins, 58)
	if len(path.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(path.Segments))
	}
	wantCX := []float64{200, 600, 1000}
	for i, seg := range path.Segments {
		if !near(seg.Control.X, wantCX[i]) || !near(seg.Control.Y, 107) {
			t.Fatalf("segment %d: expected control (%v,107), got %v", i, wantCX[i], seg.Control)
		}
	}
}

func TestBuildPathUsesLowerEndpoint(t *testing.T) {
	path := BuildPath([]r2.Vec{{X: 0, Y: 50}, {X: 10, Y: 30}}, 5)
	if got := path.Segments[0].Control.Y; got != 25 {
		t.Fatalf("expected control y 25, got %v", got)
	}
}

func TestZeroDroopIsStraight(t *testing.T) {
	path := BuildPath(CalculatePinPoints(100, 40, 3), 0)
	for _, seg := range path.Segments {
		if seg.Control.Y != 40 {
			t.Fatalf("expected baseline control, got %v", seg.Control)
		}
	}
	for _, p := range path.Sample(8) {
		if !near(p.Y, 40) {
			t.Fatalf("expected flat wire, got y=%v", p.Y)
		}
	}
}

func TestSampleSharesEndpoints(t *testing.T) {
	path := BuildPath(CalculatePinPoints(300, 20, 4), 10)
	pts := path.Sample(10)
	if len(pts) != 3*10+1 {
		t.Fatalf("expected 31 samples, got %d", len(pts))
	}
	if pts[0] != (r2.Vec{X: 0, Y: 20}) || pts[len(pts)-1] != (r2.Vec{X: 300, Y: 20}) {
		t.Fatalf("unexpected endpoints %v %v", pts[0], pts[len(pts)-1])
	}
	// Midpoint of the first segment sits halfway to the control point.
	if mid := pts[5]; !near(mid.X, 50) || !near(mid.Y, 15) {
		t.Fatalf("expected (50,15) at t=0.5, got %v", mid)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Fatalf("duplicate sample at %d", i)
		}
	}
}

func samplesFor(t *testing.T) []r2.Vec {
	t.Helper()
	return BuildPath(CalculatePinPoints(200, 30, 3), 12).Sample(40)
}

func TestExtractSingleAnchor(t *testing.T) {
	pts := samplesFor(t)
	anchors := ExtractAnchors(pts, 1, 5)
	if len(anchors) != 1 {
		t.Fatalf("expected one anchor, got %d", len(anchors))
	}
	var first r2.Vec
	for _, p := range pts {
		if p.X >= 5 {
			first = p
			break
		}
	}
	if anchors[0].Position != first {
		t.Fatalf("expected anchor at first filtered sample %v, got %v", first, anchors[0].Position)
	}
}

func TestExtractAnchorsCountAndLastPoint(t *testing.T) {
	pts := samplesFor(t)
	var lastFiltered r2.Vec
	for _, p := range pts {
		if p.X <= 200-5 {
			lastFiltered = p
		}
	}

	for _, count := range []int{2, 3, 5, 18, 79, 200} {
		anchors := ExtractAnchors(pts, count, 5)
		if len(anchors) > count {
			t.Fatalf("count=%d: got %d anchors", count, len(anchors))
		}
		seen := make(map[r2.Vec]bool)
		lastHits := 0
		for _, a := range anchors {
			if seen[a.Position] {
				t.Fatalf("count=%d: duplicate anchor at %v", count, a.Position)
			}
			seen[a.Position] = true
			if a.Position == lastFiltered {
				lastHits++
			}
		}
		if lastHits != 1 {
			t.Fatalf("count=%d: expected final filtered point once, got %d", count, lastHits)
		}
		for i := 1; i < len(anchors); i++ {
			if anchors[i].Position.X <= anchors[i-1].Position.X {
				t.Fatalf("count=%d: anchors out of order at %d", count, i)
			}
		}
	}
}

func TestExtractAnchorsRequestedCountWhenPointsSuffice(t *testing.T) {
	pts := samplesFor(t)
	if got := len(ExtractAnchors(pts, 18, 5)); got != 18 {
		t.Fatalf("expected 18 anchors, got %d", got)
	}
}

func TestExtractAnchorsStayInsideBuffer(t *testing.T) {
	pts := samplesFor(t)
	for _, buffer := range []float64{0, 5, 40, 99} {
		for _, a := range ExtractAnchors(pts, 18, buffer) {
			if a.Position.X < buffer || a.Position.X > 200-buffer {
				t.Fatalf("buffer=%v: anchor %v inside the edge buffer", buffer, a.Position)
			}
		}
	}
}

func TestExtractAnchorsEmptyCases(t *testing.T) {
	pts := samplesFor(t)
	if a := ExtractAnchors(pts, 0, 5); a != nil {
		t.Fatalf("expected no anchors for zero lights, got %d", len(a))
	}
	if a := ExtractAnchors(pts, 10, 150); a != nil {
		t.Fatalf("expected buffer to filter every point, got %d", len(a))
	}
	if a := ExtractAnchors(nil, 10, 0); a != nil {
		t.Fatalf("expected no anchors for no samples, got %d", len(a))
	}
}

func TestNormalsPointOutOfTheDroop(t *testing.T) {
	pts := BuildPath(CalculatePinPoints(100, 30, 2), 20).Sample(50)
	anchors := ExtractAnchors(pts, 3, 1)
	for _, a := range anchors {
		if n := r2.Norm(a.Normal); !near(n, 1) {
			t.Fatalf("expected unit normal, got length %v", n)
		}
	}
	// Bottom of a symmetric droop: tangent is horizontal, normal points up.
	mid := anchors[1]
	if math.Abs(mid.Normal.X) > 0.05 || mid.Normal.Y < 0.99 {
		t.Fatalf("expected upward normal at the bottom, got %v", mid.Normal)
	}
	if math.Abs(mid.Rotation()) > 0.05 {
		t.Fatalf("expected near-zero rotation at the bottom, got %v", mid.Rotation())
	}
	// Descending left side leans the normal right, ascending right side leans it left.
	if anchors[0].Normal.X <= 0 || anchors[2].Normal.X >= 0 {
		t.Fatalf("unexpected normal lean %v %v", anchors[0].Normal, anchors[2].Normal)
	}
}

func TestZeroTangentGivesZeroNormal(t *testing.T) {
	pts := []r2.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}}
	anchors := ExtractAnchors(pts, 1, 0)
	if len(anchors) != 1 {
		t.Fatalf("expected one anchor, got %d", len(anchors))
	}
	if anchors[0].Normal != (r2.Vec{}) {
		t.Fatalf("expected zero normal, got %v", anchors[0].Normal)
	}
	if anchors[0].Rotation() != 0 {
		t.Fatalf("expected default rotation, got %v", anchors[0].Rotation())
	}
}

func TestDetermineColor(t *testing.T) {
	pattern := []string{"Red", "White"}
	want := []string{"Red", "White", "Red", "White"}
	for i, w := range want {
		if got := DetermineColor(pattern, i); got != w {
			t.Fatalf("index %d: expected %s, got %s", i, w, got)
		}
	}
	for i := range 5 {
		if got := DetermineColor(nil, i); got != FallbackColor {
			t.Fatalf("expected fallback, got %s", got)
		}
	}
}
