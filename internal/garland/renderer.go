// Package garland runs the render pass: it turns a configuration and a
// scene size into a wire and a row of animated lightbulbs on a surface.
package garland

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/olivier-w/garland/internal/bulb"
	"github.com/olivier-w/garland/internal/hue"
	"github.com/olivier-w/garland/internal/scene"
	"github.com/olivier-w/garland/internal/settings"
	"github.com/olivier-w/garland/internal/texture"
	"github.com/olivier-w/garland/internal/wire"
	"gonum.org/v1/gonum/spatial/r2"
)

// Renderer rebuilds the wire and its lightbulbs on a surface.
type Renderer struct {
	surface *scene.Surface
	store   texture.Store
	hues    *hue.Manager
	logger  *log.Logger
	rng     *rand.Rand

	bulbs []*bulb.Node
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for missing assets and render summaries.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithRand sets the random source handed to every lightbulb.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// New creates a renderer drawing onto surface. hues may be nil, in which
// case dynamic coloring falls back to predefined textures.
func New(surface *scene.Surface, store texture.Store, hues *hue.Manager, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		store:   store,
		hues:    hues,
		logger:  log.Default(),
	}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, "", 0)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() *scene.Surface { return r.surface }

// Lightbulbs returns the bulbs of the last pass in wire order.
func (r *Renderer) Lightbulbs() []*bulb.Node {
	return append([]*bulb.Node(nil), r.bulbs...)
}

// Tick advances every bulb's animation.
func (r *Renderer) Tick(dt time.Duration) {
	for _, b := range r.bulbs {
		b.Tick(dt)
	}
}

// RenderWire tears down the previous wire and bulbs, then rebuilds them from
// cfg for a scene of the given size. It always runs to completion.
func (r *Renderer) RenderWire(size scene.Size, cfg settings.Configuration) {
	removed := r.surface.RemoveWhere(func(n scene.Node) bool {
		return n.Name() == scene.WireNodeName || scene.IsLightbulbName(n.Name())
	})
	r.bulbs = nil
	r.surface.SetSize(size)

	// The scene is y-up; the wire hangs WireYHeight below the top edge.
	baseline := size.Height - cfg.WireYHeight
	pins := wire.CalculatePinPoints(size.Width, baseline, cfg.NumberOfPins)
	path := wire.BuildPath(pins, cfg.DroopHeight)
	points := path.Sample(cfg.Resolution)
	r.surface.AddVisual(&scene.WireNode{Points: points})

	anchors := wire.ExtractAnchors(points, cfg.NumberOfLights, cfg.AnchorBuffer)
	dynamic := cfg.ColorMode == settings.ColorDynamic && r.hues != nil
	if dynamic {
		r.preload(cfg)
	}

	r.bulbs = make([]*bulb.Node, 0, len(anchors))
	for i, a := range anchors {
		color := wire.DetermineColor(cfg.Pattern, i)
		var tex bulb.Textures
		if dynamic {
			tex = r.dynamicTextures(color, cfg.HueRotation)
		} else {
			tex = r.staticTextures(color)
		}
		b := bulb.New(i, cfg.AnimationStyle, tex, bulb.Placement{
			Position:   r2.Sub(a.Position, r2.Scale(cfg.SocketOffset, a.Normal)),
			Rotation:   a.Rotation(),
			Scale:      cfg.LightbulbScale,
			BulbOffset: cfg.LightbulbOffset,
		}, bulb.WithRand(rand.New(rand.NewSource(r.rng.Int63()))))
		r.surface.AddVisual(b)
		r.bulbs = append(r.bulbs, b)
	}

	r.logger.Printf("garland: rendered %d pins, %d samples, %d bulbs (%s, %s), removed %d nodes",
		len(pins), len(points), len(r.bulbs), cfg.AnimationStyle, cfg.ColorMode, removed)
}

func (r *Renderer) staticTextures(color string) bulb.Textures {
	return bulb.Textures{
		Socket:  r.load(texture.SocketID),
		BulbOff: r.load(texture.ColorID(color, texture.KindBulbOff)),
		BulbOn:  r.load(texture.ColorID(color, texture.KindBulbOn)),
		Flare:   r.load(texture.ColorID(color, texture.KindFlare)),
	}
}

// dynamicTextures hue-rotates the base textures towards color. Colors with no
// hue, or whose rotation fails, use the predefined textures instead.
func (r *Renderer) dynamicTextures(color string, rotation float64) bulb.Textures {
	named, ok := settings.LookupColor(color)
	if !ok || !named.Chromatic {
		if !ok {
			r.logger.Printf("garland: color %q is not in the color table", color)
		}
		return r.staticTextures(color)
	}
	offset := settings.WrapHue(named.Hue + rotation)
	tex := bulb.Textures{Socket: r.load(texture.SocketID)}
	var miss bool
	for _, kind := range texture.Kinds {
		t, ok := r.hues.Texture(kind, offset)
		if !ok {
			miss = true
			break
		}
		switch kind {
		case texture.KindBulbOff:
			tex.BulbOff = t
		case texture.KindBulbOn:
			tex.BulbOn = t
		case texture.KindFlare:
			tex.Flare = t
		}
	}
	if miss {
		return r.staticTextures(color)
	}
	return tex
}

// preload fills the hue cache for every chromatic color in the pattern.
func (r *Renderer) preload(cfg settings.Configuration) {
	offsets := settings.HueOffsets(cfg.Pattern, cfg.HueRotation)
	if len(offsets) == 0 {
		return
	}
	for _, kind := range texture.Kinds {
		base := r.load(kind)
		if base.Empty() {
			continue
		}
		r.hues.Preload(kind, base, offsets)
	}
}

// load fetches a texture, logging a miss. Rendering continues with the empty
// texture, which draws nothing.
func (r *Renderer) load(id string) texture.Texture {
	t := r.store.Load(id)
	if t.Empty() {
		r.logger.Printf("garland: missing texture %q", id)
	}
	return t
}
