// Package canvas draws a scene surface into pixels and turns those pixels
// into terminal text.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/olivier-w/garland/internal/bulb"
	"github.com/olivier-w/garland/internal/scene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// WireColor is the stroke color of the wire.
var WireColor = color.RGBA{R: 46, G: 84, B: 38, A: 255}

// WireWidth is the stroke width of the wire in pixels.
const WireWidth = 1.0

// Rasterize draws every visual of the surface onto a transparent frame the
// size of the surface. Scene y grows upwards, image y downwards.
func Rasterize(s *scene.Surface) *image.RGBA {
	size := s.Size()
	w, h := int(math.Round(size.Width)), int(math.Round(size.Height))
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, n := range s.Children() {
		switch v := n.(type) {
		case *scene.WireNode:
			drawWire(img, v)
		case *bulb.Node:
			drawBulb(img, v)
		}
	}
	return img
}

func drawWire(img *image.RGBA, wn *scene.WireNode) {
	if len(wn.Points) < 2 {
		return
	}
	b := img.Bounds()
	height := float64(b.Dy())
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b))
	stroker.SetStroke(fixed.Int26_6(WireWidth*64), 4<<6, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(WireColor)
	for i, p := range wn.Points {
		fp := rasterx.ToFixedP(p.X, height-p.Y)
		if i == 0 {
			stroker.Start(fp)
			continue
		}
		stroker.Line(fp)
	}
	stroker.Stop(false)
	stroker.Draw()
	stroker.Clear()
}

func drawBulb(img *image.RGBA, n *bulb.Node) {
	height := float64(img.Bounds().Dy())
	for _, l := range n.Layers() {
		if !l.Visible || l.Alpha <= 0 || l.Texture.Empty() {
			continue
		}
		src := l.Texture.Image()
		var opts *draw.Options
		if l.Alpha < 1 {
			opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(math.Round(l.Alpha * 255))})}
		}
		draw.NearestNeighbor.Transform(img, layerTransform(n.Placement(), l, src.Bounds().Size(), height), src, src.Bounds(), draw.Over, opts)
	}
}

// layerTransform maps sprite pixels to image pixels. A sprite is centered on
// the layer offset in the bulb's local frame, then scaled, rotated and moved
// to the bulb position, then flipped into image space.
func layerTransform(p bulb.Placement, l bulb.Layer, size image.Point, height float64) f64.Aff3 {
	c := math.Cos(p.Rotation) * p.Scale
	s := math.Sin(p.Rotation) * p.Scale
	ax := l.Offset.X - float64(size.X)/2
	ay := l.Offset.Y + float64(size.Y)/2
	tx := c*ax - s*ay + p.Position.X
	ty := s*ax + c*ay + p.Position.Y
	return f64.Aff3{
		c, s, tx,
		-s, c, height - ty,
	}
}
