package hue

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/garland/internal/texture"
)

type mapStore map[string]texture.Texture

func (m mapStore) Load(id string) texture.Texture { return m[id] }

func solid(id string, c color.NRGBA) texture.Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, c)
		}
	}
	return texture.New(id, img)
}

var red = color.NRGBA{R: 230, G: 20, B: 20, A: 255}

func TestQuantizeKeysAreDistinct(t *testing.T) {
	a, b := Quantize(0.123449), Quantize(0.123451)
	if a != 0.1234 || b != 0.1235 {
		t.Fatalf("expected 0.1234 and 0.1235, got %v and %v", a, b)
	}
	if quantKey(0.123449) == quantKey(0.123451) {
		t.Fatal("expected distinct cache keys")
	}
	if quantKey(0.1+0.2) != quantKey(0.3) {
		t.Fatal("expected floating point noise to share a key")
	}
}

func TestPreloadThenTextureReturnsCachedInstance(t *testing.T) {
	base := solid("bulb_on", red)
	m := NewManager(mapStore{"bulb_on": base})
	m.Preload("bulb_on", base, []float64{0.5, 0.25})
	if m.Len() != 2 {
		t.Fatalf("expected 2 cached variants, got %d", m.Len())
	}

	first, ok := m.Texture("bulb_on", 0.50001)
	if !ok {
		t.Fatal("expected cached texture")
	}
	second, _ := m.Texture("bulb_on", 0.5)
	if first.Image() != second.Image() {
		t.Fatal("expected the identical cached instance")
	}
}

func TestTextureMissIsNotCached(t *testing.T) {
	base := solid("bulb_on", red)
	m := NewManager(mapStore{"bulb_on": base})
	a, ok := m.Texture("bulb_on", 0.3)
	if !ok {
		t.Fatal("expected on-demand rotation")
	}
	b, _ := m.Texture("bulb_on", 0.3)
	if a.Image() == b.Image() {
		t.Fatal("expected on-demand results to be fresh")
	}
	if m.Len() != 0 || m.Cached("bulb_on", 0.3) {
		t.Fatal("expected on-demand result to stay out of the cache")
	}
}

func TestTextureMissingSourceFails(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(mapStore{}, WithLogger(log.New(&buf, "", 0)))
	if _, ok := m.Texture("flare", 0.2); ok {
		t.Fatal("expected failure for missing source")
	}
	if !strings.Contains(buf.String(), "flare") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestPreloadSkipsFailures(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	rotate := func(tex texture.Texture, off float64) (texture.Texture, error) {
		calls++
		if off == 0.2 {
			return texture.Texture{}, errors.New("filter failed")
		}
		return Rotate(tex, off)
	}
	m := NewManager(nil, WithRotate(rotate), WithLogger(log.New(&buf, "", 0)))
	m.Preload("bulb_off", solid("bulb_off", red), []float64{0.1, 0.2, 0.3})
	if calls != 3 {
		t.Fatalf("expected every offset attempted, got %d", calls)
	}
	if m.Len() != 2 || m.Cached("bulb_off", 0.2) {
		t.Fatalf("expected the failed offset skipped, cache has %d", m.Len())
	}
	if !strings.Contains(buf.String(), "filter failed") {
		t.Fatalf("expected failure logged, got %q", buf.String())
	}

	m.Preload("bulb_off", solid("bulb_off", red), []float64{0.1})
	if calls != 3 {
		t.Fatal("expected cached offsets not to be regenerated")
	}
}

func TestRotateShiftsHue(t *testing.T) {
	base := solid("bulb_on", red)
	out, err := Rotate(base, 1.0/3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := out.Image().NRGBAAt(0, 0)
	c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
	h, _, _ := c.Hsv()
	if math.Abs(h-120) > 2 {
		t.Fatalf("expected hue near 120, got %v", h)
	}
	if p.A != 255 {
		t.Fatalf("expected alpha kept, got %d", p.A)
	}
	if base.Image().NRGBAAt(0, 0) != red {
		t.Fatal("expected source image untouched")
	}
}

func TestRotateEmpty(t *testing.T) {
	if _, err := Rotate(texture.Texture{}, 0.5); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}
