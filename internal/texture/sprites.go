package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Sprite sizes in scene pixels. Sprites are painted at masterScale times this
// size and downsampled, which keeps the tiny terminal sprites smooth.
var (
	SocketSize = image.Pt(3, 2)
	BulbSize   = image.Pt(3, 4)
	FlareSize  = image.Pt(9, 9)
)

const masterScale = 8

// BaseColor is the hue-0 red the base textures are painted in, so a hue
// rotation by a color's hue offset lands on that color.
var BaseColor = colorful.Color{R: 0.91, G: 0.14, B: 0.14}

var socketColor = colorful.Color{R: 0.12, G: 0.28, B: 0.14}

// SpriteStore paints bulb sprites on demand and keeps them for reuse.
type SpriteStore struct {
	palette map[string]colorful.Color
	cache   map[string]Texture
}

// NewSpriteStore creates a store that can paint every color in palette.
// Palette keys are color names in any case.
func NewSpriteStore(palette map[string]color.Color) *SpriteStore {
	p := make(map[string]colorful.Color, len(palette))
	for name, c := range palette {
		if cc, ok := colorful.MakeColor(c); ok {
			p[ColorKey(name)] = cc
		}
	}
	return &SpriteStore{palette: p, cache: make(map[string]Texture)}
}

// Load returns the sprite for id, painting it the first time. Unknown
// identifiers yield an empty texture.
func (s *SpriteStore) Load(id string) Texture {
	if t, ok := s.cache[id]; ok {
		return t
	}
	var img *image.NRGBA
	switch id {
	case SocketID:
		img = paintSocket()
	case KindBulbOff:
		img = paintBulb(BaseColor, false)
	case KindBulbOn:
		img = paintBulb(BaseColor, true)
	case KindFlare:
		img = paintFlare(BaseColor)
	default:
		key, kind, ok := SplitID(id)
		if !ok {
			return Texture{}
		}
		c, ok := s.palette[key]
		if !ok {
			return Texture{}
		}
		switch kind {
		case KindBulbOff:
			img = paintBulb(c, false)
		case KindBulbOn:
			img = paintBulb(c, true)
		case KindFlare:
			img = paintFlare(c)
		}
	}
	t := New(id, img)
	s.cache[id] = t
	return t
}

func paintSocket() *image.NRGBA {
	return paint(SocketSize, func(u, v float64) color.NRGBA {
		c := socketColor
		// Ridges across the cap.
		if math.Mod(v*4, 1) < 0.3 {
			c = c.BlendRgb(colorful.Color{}, 0.35)
		}
		return opaque(c)
	})
}

func paintBulb(c colorful.Color, lit bool) *image.NRGBA {
	h, sat, val := c.Hsv()
	if !lit {
		val *= 0.35
		sat *= 0.7
	}
	glass := colorful.Hsv(h, sat, val)
	highlight := glass.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.6)
	return paint(BulbSize, func(u, v float64) color.NRGBA {
		// Teardrop: wide at the bottom, narrowing towards the socket at v=0.
		cx, cy := 0.5, 0.6
		rx := 0.5 * (0.55 + 0.45*math.Min(1, v/cy))
		ry := 0.55
		dx, dy := (u-cx)/rx, (v-cy)/ry
		d := dx*dx + dy*dy
		if d > 1 {
			return color.NRGBA{}
		}
		col := glass
		if lit {
			hx, hy := u-0.35, v-0.45
			if hl := 1 - math.Sqrt(hx*hx+hy*hy)/0.3; hl > 0 {
				col = glass.BlendRgb(highlight, hl)
			}
		}
		edge := 1 - math.Max(0, d-0.8)/0.2
		return withAlpha(col, edge)
	})
}

func paintFlare(c colorful.Color) *image.NRGBA {
	glow := c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.25)
	return paint(FlareSize, func(u, v float64) color.NRGBA {
		dx, dy := u-0.5, v-0.5
		r := math.Sqrt(dx*dx+dy*dy) / 0.5
		if r >= 1 {
			return color.NRGBA{}
		}
		a := (1 - r) * (1 - r) * 0.8
		return withAlpha(glow, a)
	})
}

// paint evaluates shade over a master-resolution grid, with u and v in [0, 1],
// and downsamples the result to size.
func paint(size image.Point, shade func(u, v float64) color.NRGBA) *image.NRGBA {
	mw, mh := size.X*masterScale, size.Y*masterScale
	master := image.NewNRGBA(image.Rect(0, 0, mw, mh))
	for y := range mh {
		for x := range mw {
			u := (float64(x) + 0.5) / float64(mw)
			v := (float64(y) + 0.5) / float64(mh)
			master.SetNRGBA(x, y, shade(u, v))
		}
	}
	out := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(out, out.Bounds(), master, master.Bounds(), draw.Src, nil)
	return out
}

func opaque(c colorful.Color) color.NRGBA {
	return withAlpha(c, 1)
}

func withAlpha(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))}
}
