// Package ui hosts the garland in a Bubbletea program: it drives the frame
// clock, forwards window sizes to the renderer and runs the settings panel.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/olivier-w/garland/internal/canvas"
	"github.com/olivier-w/garland/internal/garland"
	"github.com/olivier-w/garland/internal/settings"
)

// Model is the Bubbletea model for the garland display.
type Model struct {
	store    *settings.Store
	renderer *garland.Renderer
	encoder  *canvas.Encoder
	keys     keyMap
	help     help.Model
	panel    panel

	width     int
	height    int
	lastFrame time.Time
	quitting  bool
}

// New creates the model and subscribes the renderer to configuration
// changes, so every store update redraws the wire at the current size.
func New(store *settings.Store, r *garland.Renderer, enc *canvas.Encoder) Model {
	store.OnChange(func(cfg settings.Configuration) {
		r.RenderWire(r.Surface().Size(), cfg)
	})
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle
	return Model{
		store:    store,
		renderer: r,
		encoder:  enc,
		keys:     newKeyMap(),
		help:     h,
		panel:    newPanel(store.Config().FrameRate),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.store.Config().FrameRate), tea.SetWindowTitle("garland"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() && now.After(m.lastFrame) {
			m.renderer.Tick(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		fps := m.store.Config().FrameRate
		m.panel.slide.setFPS(fps)
		if !m.panel.slide.settled() {
			m.panel.slide.step()
		}
		return m, frameCmd(fps)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isForceQuit(msg) || (!m.panel.editing && key.Matches(msg, m.keys.Quit)) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	if m.panel.editing {
		return m, m.panel.update(msg, m.keys, m.store)
	}
	switch {
	case key.Matches(msg, m.keys.Panel):
		m.panel.toggle()
		return m, nil
	case key.Matches(msg, m.keys.Style):
		m.store.Update(func(c *settings.Configuration) { c.AnimationStyle = c.AnimationStyle.Next() })
		return m, nil
	case key.Matches(msg, m.keys.Colors):
		m.store.Update(func(c *settings.Configuration) { c.ColorMode = c.ColorMode.Toggle() })
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}
	if m.panel.open() {
		return m, m.panel.update(msg, m.keys, m.store)
	}
	return m, nil
}

// resize re-renders after the help area changed height.
func (m *Model) resize() {
	if m.width > 0 {
		m.renderer.RenderWire(canvas.SceneSize(m.width, m.sceneRows()), m.store.Config())
	}
}

// sceneRows is the number of terminal rows left for the garland.
func (m Model) sceneRows() int {
	rows := m.height - m.helpHeight()
	if rows < 0 {
		return 0
	}
	return rows
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "\n  garland\n"
	}

	frame := m.encoder.Encode(canvas.Rasterize(m.renderer.Surface()))
	var lines []string
	if frame != "" {
		lines = strings.Split(frame, "\n")
	}
	for len(lines) < m.sceneRows() {
		lines = append(lines, strings.Repeat(" ", m.width))
	}
	if w := m.panel.width(); w > 0 {
		lines = overlay(lines, m.panel.view(m.store.Config()), m.width, w)
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	return strings.Join(lines, "\n") + "\n" + helpView
}

// cutLeft keeps the leftmost n cells of a styled line.
func cutLeft(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.Truncate(s, n, "") + ansi.ResetStyle
}
