package ui

import (
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/garland/internal/settings"
	"github.com/olivier-w/garland/internal/util"
	"github.com/olivier-w/garland/internal/wire"
)

// panelWidth is the full width of the settings panel, border included.
const panelWidth = 46

const labelWidth = 13

type fieldKind int

const (
	fieldChoice fieldKind = iota
	fieldText
	fieldNumber
)

// field is one editable row of the settings panel.
type field struct {
	label string
	kind  fieldKind

	// choice rows
	cycle func(c *settings.Configuration, dir int)
	show  func(c settings.Configuration) string

	// number rows
	lo, hi, step float64
	decimals     int
	wrap         bool
	get          func(c settings.Configuration) float64
	set          func(c *settings.Configuration, v float64)
}

func (f field) display(c settings.Configuration) string {
	if f.kind == fieldNumber {
		if f.wrap {
			return util.FormatHue(f.get(c))
		}
		return util.FormatNumber(f.get(c), f.decimals)
	}
	return f.show(c)
}

// adjust moves the field one step in dir.
func (f field) adjust(c *settings.Configuration, dir int) {
	switch f.kind {
	case fieldChoice:
		f.cycle(c, dir)
	case fieldNumber:
		v := f.get(*c) + float64(dir)*f.step
		if f.wrap {
			span := f.hi - f.lo
			v = f.lo + math.Mod(math.Mod(v-f.lo, span)+span, span)
		} else {
			v = math.Min(f.hi, math.Max(f.lo, v))
		}
		f.set(c, v)
	}
}

func intField(label string, lo, hi, step int, get func(settings.Configuration) int, set func(*settings.Configuration, int)) field {
	return field{
		label: label, kind: fieldNumber,
		lo: float64(lo), hi: float64(hi), step: float64(step),
		get: func(c settings.Configuration) float64 { return float64(get(c)) },
		set: func(c *settings.Configuration, v float64) { set(c, int(math.Round(v))) },
	}
}

func floatField(label string, lo, hi, step float64, decimals int, ptr func(*settings.Configuration) *float64) field {
	return field{
		label: label, kind: fieldNumber,
		lo: lo, hi: hi, step: step, decimals: decimals,
		get: func(c settings.Configuration) float64 { return *ptr(&c) },
		set: func(c *settings.Configuration, v float64) { *ptr(c) = v },
	}
}

func panelFields() []field {
	return []field{
		{
			label: "Animation", kind: fieldChoice,
			cycle: func(c *settings.Configuration, dir int) {
				if dir < 0 {
					c.AnimationStyle = c.AnimationStyle.Prev()
				} else {
					c.AnimationStyle = c.AnimationStyle.Next()
				}
			},
			show: func(c settings.Configuration) string { return c.AnimationStyle.String() },
		},
		{
			label: "Colors", kind: fieldChoice,
			cycle: func(c *settings.Configuration, _ int) { c.ColorMode = c.ColorMode.Toggle() },
			show:  func(c settings.Configuration) string { return c.ColorMode.String() },
		},
		{
			label: "Pattern", kind: fieldText,
			show: func(c settings.Configuration) string { return util.FormatPattern(c.Pattern, wire.FallbackColor) },
		},
		{
			label: "Preset", kind: fieldChoice,
			cycle: cyclePreset,
			show: func(c settings.Configuration) string {
				if i := settings.PresetFor(c.Pattern); i >= 0 {
					return settings.Presets()[i].Name
				}
				return "custom"
			},
		},
		intField("Lights", 0, settings.MaxLights, 1,
			func(c settings.Configuration) int { return c.NumberOfLights },
			func(c *settings.Configuration, v int) { c.NumberOfLights = v }),
		intField("Pins", 0, settings.MaxPins, 1,
			func(c settings.Configuration) int { return c.NumberOfPins },
			func(c *settings.Configuration, v int) { c.NumberOfPins = v }),
		floatField("Droop", 0, 40, 1, 0, func(c *settings.Configuration) *float64 { return &c.DroopHeight }),
		floatField("Wire drop", 0, 100, 1, 0, func(c *settings.Configuration) *float64 { return &c.WireYHeight }),
		intField("Resolution", 1, 200, 5,
			func(c settings.Configuration) int { return c.Resolution },
			func(c *settings.Configuration, v int) { c.Resolution = v }),
		floatField("Bulb scale", settings.MinScale, settings.MaxScale, 0.25, 2, func(c *settings.Configuration) *float64 { return &c.LightbulbScale }),
		floatField("Bulb offset", 0, 4, 0.5, 1, func(c *settings.Configuration) *float64 { return &c.LightbulbOffset }),
		floatField("Socket gap", 0, 4, 0.5, 1, func(c *settings.Configuration) *float64 { return &c.SocketOffset }),
		floatField("Edge buffer", 0, 40, 1, 0, func(c *settings.Configuration) *float64 { return &c.AnchorBuffer }),
		{
			label: "Hue shift", kind: fieldNumber,
			lo: 0, hi: 1, step: 1.0 / 36, wrap: true,
			get: func(c settings.Configuration) float64 { return c.HueRotation },
			set: func(c *settings.Configuration, v float64) { c.HueRotation = v },
		},
		intField("Frame rate", settings.MinFrameRate, settings.MaxFrameRate, 5,
			func(c settings.Configuration) int { return c.FrameRate },
			func(c *settings.Configuration, v int) { c.FrameRate = v }),
	}
}

func cyclePreset(c *settings.Configuration, dir int) {
	presets := settings.Presets()
	i := settings.PresetFor(c.Pattern)
	switch {
	case i < 0 && dir < 0:
		i = len(presets) - 1
	case i < 0:
		i = 0
	default:
		i = (i + dir + len(presets)) % len(presets)
	}
	c.Pattern = presets[i].Pattern
}

// panel is the slide-in settings editor. Every change goes through the
// settings store.
type panel struct {
	fields  []field
	cursor  int
	editing bool
	input   textinput.Model
	bar     progress.Model
	slide   slide
	err     string
}

func newPanel(fps int) panel {
	ti := textinput.New()
	ti.Placeholder = "Red, Green, Blue"
	ti.CharLimit = 256
	ti.Width = panelWidth - labelWidth - 8
	ti.Prompt = ""
	return panel{
		fields: panelFields(),
		input:  ti,
		bar:    newSlider(),
		slide:  newSlide(fps),
	}
}

func (p *panel) open() bool { return p.slide.target == 1 }

func (p *panel) toggle() {
	if p.open() {
		p.close()
		return
	}
	p.slide.target = 1
}

func (p *panel) close() {
	p.slide.target = 0
	p.stopEditing()
}

// width returns how many columns the panel currently covers.
func (p *panel) width() int {
	return int(math.Round(p.slide.pos * panelWidth))
}

func (p *panel) stopEditing() {
	p.editing = false
	p.err = ""
	p.input.Blur()
}

func (p *panel) selected() field { return p.fields[p.cursor] }

// update handles a key while the panel is open.
func (p *panel) update(msg tea.KeyMsg, keys keyMap, store *settings.Store) tea.Cmd {
	if p.editing {
		return p.updateInput(msg, keys, store)
	}
	switch {
	case key.Matches(msg, keys.Close):
		p.close()
	case key.Matches(msg, keys.Up):
		p.cursor = (p.cursor + len(p.fields) - 1) % len(p.fields)
	case key.Matches(msg, keys.Down):
		p.cursor = (p.cursor + 1) % len(p.fields)
	case key.Matches(msg, keys.Left):
		p.adjust(store, -1)
	case key.Matches(msg, keys.Right):
		p.adjust(store, 1)
	case key.Matches(msg, keys.Preset):
		store.Update(func(c *settings.Configuration) { cyclePreset(c, 1) })
	case key.Matches(msg, keys.Edit):
		if p.selected().kind == fieldText {
			p.editing = true
			p.err = ""
			p.input.SetValue(strings.Join(store.Config().Pattern, ", "))
			p.input.CursorEnd()
			return p.input.Focus()
		}
		p.adjust(store, 1)
	}
	return nil
}

func (p *panel) adjust(store *settings.Store, dir int) {
	f := p.selected()
	if f.kind == fieldText {
		return
	}
	store.Update(func(c *settings.Configuration) { f.adjust(c, dir) })
}

func (p *panel) updateInput(msg tea.KeyMsg, keys keyMap, store *settings.Store) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Close):
		p.stopEditing()
		return nil
	case key.Matches(msg, keys.Edit):
		pattern, err := settings.ParsePattern(p.input.Value())
		if err != nil {
			p.err = err.Error()
			log.Printf("ui: rejected pattern %q: %v", p.input.Value(), err)
			return nil
		}
		store.Update(func(c *settings.Configuration) { c.Pattern = pattern })
		p.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *panel) view(cfg settings.Configuration) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("garland settings"))
	sb.WriteString("\n\n")
	for i, f := range p.fields {
		marker := "  "
		label := labelStyle.Render(padRight(f.label, labelWidth))
		if i == p.cursor {
			marker = selectedStyle.Render("▸ ")
			label = selectedStyle.Render(padRight(f.label, labelWidth))
		}
		sb.WriteString(marker)
		sb.WriteString(label)
		switch {
		case f.kind == fieldText && p.editing && i == p.cursor:
			sb.WriteString(p.input.View())
		case f.kind == fieldNumber:
			sb.WriteString(valueStyle.Render(padRight(f.display(cfg), 6)))
			sb.WriteString(" ")
			sb.WriteString(renderSlider(p.bar, f.get(cfg), f.lo, f.hi))
		default:
			sb.WriteString(valueStyle.Render(truncate(f.display(cfg), panelWidth-labelWidth-8)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if p.err != "" {
		sb.WriteString(errorStyle.Render(truncate(p.err, panelWidth-6)))
	} else {
		sb.WriteString(helpStyle.Render("frame " + util.FormatFrameTime(cfg.FrameRate)))
	}
	return panelStyle.Width(panelWidth - 2).Render(sb.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// overlay lays the panel over the right edge of the frame lines, showing its
// leftmost width columns.
func overlay(frame []string, panelView string, cols, width int) []string {
	if width <= 0 {
		return frame
	}
	if width > cols {
		width = cols
	}
	plines := strings.Split(panelView, "\n")
	out := make([]string, len(frame))
	for i, line := range frame {
		left := cutLeft(line, cols-width)
		var right string
		if i < len(plines) {
			right = cutLeft(plines[i], width)
		}
		if pad := width - lipgloss.Width(right); pad > 0 {
			right += strings.Repeat(" ", pad)
		}
		out[i] = left + right
	}
	return out
}
