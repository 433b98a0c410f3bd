package canvas

import (
	"image"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"

	"github.com/olivier-w/garland/internal/scene"
)

// Brightness ramp from darkest to brightest, used when colors are off.
const asciiRamp = " .:-=+*#%@"

// Pixels with less coverage than this are left to the terminal background.
const minAlpha = 16

var (
	detectOnce sync.Once
	termColor  colorprofile.Profile
)

// DetectProfile checks the terminal's color support once. NO_COLOR and dumb
// terminals disable color.
func DetectProfile() colorprofile.Profile {
	detectOnce.Do(func() {
		termColor = colorprofile.Detect(os.Stdout, os.Environ())
	})
	return termColor
}

// SceneSize returns the pixel size of a cols x rows terminal area. Each cell
// holds two pixel rows.
func SceneSize(cols, rows int) scene.Size {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return scene.Size{Width: float64(cols), Height: float64(rows * 2)}
}

// Encoder converts frames into terminal text.
//   - Color: "▀" and "▄" cells with fg/bg colors pack two pixel rows per line.
//   - No color: each cell becomes a brightness character.
type Encoder struct {
	profile colorprofile.Profile
	seqs    map[uint64]string
	sb      strings.Builder
}

// NewEncoder creates an encoder for the given color profile.
func NewEncoder(p colorprofile.Profile) *Encoder {
	return &Encoder{profile: p, seqs: make(map[uint64]string)}
}

// Profile returns the color profile the encoder writes for.
func (e *Encoder) Profile() colorprofile.Profile { return e.profile }

// Encode renders img as ceil(height/2) lines of width cells.
func (e *Encoder) Encode(img *image.RGBA) string {
	b := img.Bounds()
	if b.Empty() {
		return ""
	}
	rows := (b.Dy() + 1) / 2
	e.sb.Reset()
	if e.profile <= colorprofile.Ascii {
		e.encodeASCII(img, rows)
	} else {
		e.sb.Grow(b.Dx() * rows * 24)
		e.encodeHalfBlock(img, rows)
	}
	return e.sb.String()
}

func (e *Encoder) encodeHalfBlock(img *image.RGBA, rows int) {
	b := img.Bounds()
	for row := 0; row < rows; row++ {
		y := b.Min.Y + row*2
		last := ""
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := pixel(img, x, y)
			bot, botOK := pixel(img, x, y+1)

			var seq, glyph string
			switch {
			case topOK && botOK:
				seq, glyph = e.style(top, bot, true, true), "▀"
			case topOK:
				seq, glyph = e.style(top, color.RGBA{}, true, false), "▀"
			case botOK:
				seq, glyph = e.style(bot, color.RGBA{}, true, false), "▄"
			default:
				seq, glyph = "", " "
			}
			if seq != last {
				if seq == "" {
					e.sb.WriteString(ansi.ResetStyle)
				} else {
					e.sb.WriteString(seq)
				}
				last = seq
			}
			e.sb.WriteString(glyph)
		}
		if last != "" {
			e.sb.WriteString(ansi.ResetStyle)
		}
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

func (e *Encoder) encodeASCII(img *image.RGBA, rows int) {
	b := img.Bounds()
	for row := 0; row < rows; row++ {
		y := b.Min.Y + row*2
		for x := b.Min.X; x < b.Max.X; x++ {
			var lum uint8
			if c, ok := pixel(img, x, y); ok {
				lum = luminance(c)
			}
			if c, ok := pixel(img, x, y+1); ok {
				lum = max(lum, luminance(c))
			}
			e.sb.WriteByte(brightnessChar(lum))
		}
		if row < rows-1 {
			e.sb.WriteByte('\n')
		}
	}
}

// style returns the SGR sequence for a cell, converted to the profile.
func (e *Encoder) style(fg, bg color.RGBA, hasFg, hasBg bool) string {
	key := uint64(fg.R)<<40 | uint64(fg.G)<<32 | uint64(fg.B)<<24 | uint64(bg.R)<<16 | uint64(bg.G)<<8 | uint64(bg.B)
	if hasBg {
		key |= 1 << 48
	}
	if seq, ok := e.seqs[key]; ok {
		return seq
	}
	var st ansi.Style
	if hasFg {
		st = st.ForegroundColor(e.profile.Convert(fg))
	}
	if hasBg {
		st = st.BackgroundColor(e.profile.Convert(bg))
	}
	seq := st.String()
	e.seqs[key] = seq
	return seq
}

// pixel returns the opaque color of a frame pixel. Partially covered pixels
// are composited over black.
func pixel(img *image.RGBA, x, y int) (color.RGBA, bool) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return color.RGBA{}, false
	}
	c := img.RGBAAt(x, y)
	if c.A < minAlpha {
		return color.RGBA{}, false
	}
	c.A = 255
	return c, true
}

// luminance computes perceived brightness (ITU-R BT.601).
func luminance(c color.RGBA) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}

// brightnessChar maps a 0-255 luminance to an ASCII character.
func brightnessChar(lum uint8) byte {
	idx := int(lum) * (len(asciiRamp) - 1) / 255
	return asciiRamp[idx]
}
