// Package bulb implements a lightbulb hanging from the wire: four sprite
// layers and the animation state machine that switches them.
package bulb

import (
	"image"
	"math/rand"
	"sort"
	"time"

	"github.com/olivier-w/garland/internal/scene"
	"github.com/olivier-w/garland/internal/settings"
	"github.com/olivier-w/garland/internal/texture"
	"gonum.org/v1/gonum/spatial/r2"
)

// LayerKind identifies one of a bulb's sprite layers.
type LayerKind int

const (
	Flare LayerKind = iota
	Socket
	BulbOff
	BulbOn
)

func (k LayerKind) String() string {
	switch k {
	case Flare:
		return "flare"
	case Socket:
		return "socket"
	case BulbOff:
		return "bulb_off"
	case BulbOn:
		return "bulb_on"
	}
	return "unknown"
}

// DefaultZOrder stacks flare behind socket behind bulb-off behind bulb-on.
var DefaultZOrder = map[LayerKind]int{Flare: 0, Socket: 1, BulbOff: 2, BulbOn: 3}

// Layer is one sprite of a bulb. Offset is the sprite center in the bulb's
// local, unrotated and unscaled frame (y-up, origin at the socket top).
type Layer struct {
	Kind    LayerKind
	Texture texture.Texture
	Offset  r2.Vec
	Visible bool
	Alpha   float64
	Z       int
}

// Textures are the sprites a bulb is built from.
type Textures struct {
	Socket  texture.Texture
	BulbOff texture.Texture
	BulbOn  texture.Texture
	Flare   texture.Texture
}

// Placement fixes where a bulb hangs. It is set once at construction.
type Placement struct {
	Position r2.Vec
	Rotation float64 // radians, counterclockwise
	Scale    float64
	// BulbOffset pushes the glass further below the socket.
	BulbOffset float64
}

// Node is one animated lightbulb.
type Node struct {
	index     int
	style     settings.AnimationStyle
	placement Placement
	layers    [4]Layer
	rng       *rand.Rand

	state   State
	elapsed time.Duration
	dur     time.Duration // zero for a static state
	period  time.Duration // current flicker period
	stopped bool
}

// Option configures a Node.
type Option func(*Node)

// WithRand sets the random source for randomized periods.
func WithRand(r *rand.Rand) Option {
	return func(n *Node) { n.rng = r }
}

// WithZOrder overrides the z position of the given layers.
func WithZOrder(z map[LayerKind]int) Option {
	return func(n *Node) {
		for k, v := range z {
			n.layers[k].Z = v
		}
	}
}

// New builds the bulb at index and starts its animation.
func New(index int, style settings.AnimationStyle, tex Textures, place Placement, opts ...Option) *Node {
	if place.Scale <= 0 {
		place.Scale = 1
	}
	n := &Node{
		index:     index,
		style:     style,
		placement: place,
	}
	n.layers = layout(tex, place.BulbOffset)
	for _, o := range opts {
		o(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano() + int64(index)))
	}
	n.start()
	return n
}

func layout(tex Textures, bulbOffset float64) [4]Layer {
	socket := sizeOr(tex.Socket, texture.SocketSize)
	glass := sizeOr(tex.BulbOn, texture.BulbSize)
	socketCenter := r2.Vec{X: 0, Y: -float64(socket.Y) / 2}
	glassCenter := r2.Vec{X: 0, Y: -float64(socket.Y) - float64(glass.Y)/2 - bulbOffset}

	var l [4]Layer
	l[Flare] = Layer{Kind: Flare, Texture: tex.Flare, Offset: glassCenter, Alpha: 1}
	l[Socket] = Layer{Kind: Socket, Texture: tex.Socket, Offset: socketCenter, Visible: true, Alpha: 1}
	l[BulbOff] = Layer{Kind: BulbOff, Texture: tex.BulbOff, Offset: glassCenter, Alpha: 1}
	l[BulbOn] = Layer{Kind: BulbOn, Texture: tex.BulbOn, Offset: glassCenter, Alpha: 1}
	for k, z := range DefaultZOrder {
		l[k].Z = z
	}
	return l
}

func sizeOr(t texture.Texture, fallback image.Point) image.Point {
	if t.Empty() {
		return fallback
	}
	return t.Size()
}

// Name implements scene.Node.
func (n *Node) Name() string { return scene.LightbulbName(n.index) }


// Style returns the animation style the bulb runs.
func (n *Node) Style() settings.AnimationStyle { return n.style }

// Placement returns where the bulb hangs.
func (n *Node) Placement() Placement { return n.placement }

// State returns the current animation state.
func (n *Node) State() State { return n.state }

// Stop cancels the animation. Later ticks do nothing.
func (n *Node) Stop() { n.stopped = true }

// Stopped reports whether Stop was called.
func (n *Node) Stopped() bool { return n.stopped }

// Layer returns the layer of the given kind.
func (n *Node) Layer(k LayerKind) Layer { return n.layers[k] }

// Layers returns the layers sorted back to front.
func (n *Node) Layers() []Layer {
	out := n.layers[:]
	sorted := make([]Layer, len(out))
	copy(sorted, out)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Z < sorted[j].Z })
	return sorted
}

// Lit reports whether the bulb is showing any light.
func (n *Node) Lit() bool {
	on := n.layers[BulbOn]
	return on.Visible && on.Alpha > 0
}

// WorldPoint maps a point in the bulb's local frame to scene coordinates.
func (n *Node) WorldPoint(local r2.Vec) r2.Vec {
	p := n.placement
	rotated := r2.Rotate(r2.Scale(p.Scale, local), p.Rotation, r2.Vec{})
	return r2.Add(p.Position, rotated)
}

// setLit switches bulb-off, bulb-on and flare together.
func (n *Node) setLit(on bool) {
	n.layers[BulbOff].Visible = !on
	n.layers[BulbOn].Visible = on
	n.layers[Flare].Visible = on
	n.layers[BulbOn].Alpha = 1
	n.layers[Flare].Alpha = 1
}

// setGlow sets the twinkle alpha of bulb-on and flare. Bulb-off stays up.
func (n *Node) setGlow(alpha float64) {
	n.layers[BulbOff].Visible = true
	n.layers[BulbOn].Visible = true
	n.layers[Flare].Visible = true
	n.layers[BulbOn].Alpha = alpha
	n.layers[Flare].Alpha = alpha
}
