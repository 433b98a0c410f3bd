package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

const sliderWidth = 14

func newSlider() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#E8202A", "#4E8A3E"),
		progress.WithoutPercentage(),
		progress.WithWidth(sliderWidth),
	)
}

func renderSlider(bar progress.Model, v, lo, hi float64) string {
	var ratio float64
	if hi > lo {
		ratio = (v - lo) / (hi - lo)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return bar.ViewAs(ratio)
}

// slide eases the panel between hidden (0) and shown (1).
type slide struct {
	spring harmonica.Spring
	fps    int
	pos    float64
	vel    float64
	target float64
}

func newSlide(fps int) slide {
	s := slide{}
	s.setFPS(fps)
	return s
}

func (s *slide) setFPS(fps int) {
	if fps < 1 {
		fps = 1
	}
	if fps == s.fps {
		return
	}
	s.fps = fps
	s.spring = harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)
}

// step advances one frame, snapping to the target once the motion is below
// a visible threshold.
func (s *slide) step() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.005 && math.Abs(s.vel) < 0.005 {
		s.pos, s.vel = s.target, 0
	}
}

// settled reports whether the panel rests fully shown or fully hidden.
func (s slide) settled() bool {
	return s.pos == s.target && s.vel == 0
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
