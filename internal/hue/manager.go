// Package hue generates hue-rotated texture variants and caches them.
//
// The cache is never evicted. It holds at most one entry per base texture
// and quantized offset: for one hue rotation that is one entry per chromatic
// named color and base texture, and 10,000 offsets per base texture overall.
package hue

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/garland/internal/texture"
)

// ErrEmptySource is returned when asked to rotate an empty texture.
var ErrEmptySource = errors.New("hue: empty source texture")

// Quantize rounds an offset to four decimal places.
func Quantize(offset float64) float64 {
	return float64(quantKey(offset)) / 1e4
}

func quantKey(offset float64) int64 {
	return int64(math.Round(offset * 1e4))
}

type cacheKey struct {
	id     string
	offset int64
}

// RotateFunc produces a hue-rotated copy of a texture.
type RotateFunc func(tex texture.Texture, offset float64) (texture.Texture, error)

// Manager caches hue-rotated textures keyed by image identifier and
// quantized offset. It is used from a single goroutine.
type Manager struct {
	source texture.Store
	cache  map[cacheKey]texture.Texture
	rotate RotateFunc
	logger *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithRotate replaces the rotation function.
func WithRotate(fn RotateFunc) Option {
	return func(m *Manager) { m.rotate = fn }
}

// WithLogger sets the logger used for preload failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates an empty cache that loads base images from source on a
// miss. Failures are logged through the standard logger unless WithLogger
// says otherwise.
func NewManager(source texture.Store, opts ...Option) *Manager {
	m := &Manager{
		source: source,
		cache:  make(map[cacheKey]texture.Texture),
		rotate: Rotate,
		logger: log.Default(),
	}
	for _, o := range opts {
		o(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	return m
}

// Preload generates and stores a variant of base for every offset. A failed
// offset is logged and skipped.
func (m *Manager) Preload(id string, base texture.Texture, offsets []float64) {
	for _, off := range offsets {
		key := cacheKey{id: id, offset: quantKey(off)}
		if _, ok := m.cache[key]; ok {
			continue
		}
		tex, err := m.rotate(base, Quantize(off))
		if err != nil {
			m.logger.Printf("hue: preload %s at %.4f: %v", id, Quantize(off), err)
			continue
		}
		m.cache[key] = tex
	}
}

// Texture returns the cached variant of id at offset. On a miss it loads the
// base image and rotates it without caching the result; ok is false when the
// base image is missing or the rotation fails.
func (m *Manager) Texture(id string, offset float64) (texture.Texture, bool) {
	key := cacheKey{id: id, offset: quantKey(offset)}
	if tex, ok := m.cache[key]; ok {
		return tex, true
	}
	var base texture.Texture
	if m.source != nil {
		base = m.source.Load(id)
	}
	tex, err := m.rotate(base, Quantize(offset))
	if err != nil {
		m.logger.Printf("hue: rotate %s at %.4f: %v", id, Quantize(offset), err)
		return texture.Texture{}, false
	}
	return tex, true
}

// Cached reports whether a variant of id at offset is in the cache.
func (m *Manager) Cached(id string, offset float64) bool {
	_, ok := m.cache[cacheKey{id: id, offset: quantKey(offset)}]
	return ok
}

// Len returns the number of cached variants.
func (m *Manager) Len() int {
	return len(m.cache)
}

// Rotate shifts the hue of every pixel of tex by offset turns (offset·2π
// radians), keeping saturation, value and alpha.
func Rotate(tex texture.Texture, offset float64) (texture.Texture, error) {
	if tex.Empty() {
		return texture.Texture{}, ErrEmptySource
	}
	src := tex.Image()
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	deg := offset * 360
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := src.NRGBAAt(x, y)
			if p.A == 0 {
				continue
			}
			c := colorful.Color{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
			h, s, v := c.Hsv()
			h = math.Mod(h+deg, 360)
			if h < 0 {
				h += 360
			}
			r, g, bl := colorful.Hsv(h, s, v).Clamped().RGB255()
			p.R, p.G, p.B = r, g, bl
			dst.SetNRGBA(x, y, p)
		}
	}
	return texture.New(fmt.Sprintf("%s@%.4f", tex.ID(), Quantize(offset)), dst), nil
}
