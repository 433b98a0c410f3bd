// Package texture provides the bulb sprite images and the store that names them.
package texture

import (
	"image"
	"strings"
)

// Texture kinds that vary per color.
const (
	KindBulbOff = "bulb_off"
	KindBulbOn  = "bulb_on"
	KindFlare   = "flare"
)

// SocketID names the socket image, which is the same for every color.
const SocketID = "socket"

// Kinds lists the colored texture kinds.
var Kinds = []string{KindBulbOff, KindBulbOn, KindFlare}

// Texture is an immutable sprite image. The zero Texture is empty and stands
// in for a missing asset.
type Texture struct {
	id  string
	img *image.NRGBA
}

// New wraps img as a texture named id. The image must not be modified
// afterwards.
func New(id string, img *image.NRGBA) Texture {
	return Texture{id: id, img: img}
}

// ID returns the identifier the texture was loaded or generated under.
func (t Texture) ID() string { return t.id }

// Image returns the underlying image, or nil for an empty texture.
func (t Texture) Image() *image.NRGBA { return t.img }

// Size returns the texture dimensions in pixels.
func (t Texture) Size() image.Point {
	if t.img == nil {
		return image.Point{}
	}
	return t.img.Bounds().Size()
}

// Empty reports whether the texture has no pixels.
func (t Texture) Empty() bool {
	s := t.Size()
	return s.X == 0 || s.Y == 0
}

// Store loads textures by identifier. A miss returns an empty Texture.
type Store interface {
	Load(id string) Texture
}

// ColorKey normalizes a color name for use in identifiers.
func ColorKey(color string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(color)), " ", "_")
}

// ColorID composes the identifier of a colored texture, e.g. "red_bulb_on".
func ColorID(color, kind string) string {
	return ColorKey(color) + "_" + kind
}

// SplitID breaks a colored identifier into its color key and kind. ok is
// false for base names and unknown kinds.
func SplitID(id string) (color, kind string, ok bool) {
	for _, k := range Kinds {
		suffix := "_" + k
		if strings.HasSuffix(id, suffix) && len(id) > len(suffix) {
			return strings.TrimSuffix(id, suffix), k, true
		}
	}
	return "", "", false
}
