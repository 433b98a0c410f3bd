package bulb

import (
	"time"

	"github.com/olivier-w/garland/internal/settings"
)

// State is a step of a bulb's animation cycle.
type State int

const (
	StateOff State = iota
	StateOn
	StateIdle // chase startup delay
	StateFadingIn
	StateHoldingOn
	StateFadingOut
	StateHoldingOff
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	case StateIdle:
		return "idle"
	case StateFadingIn:
		return "fading-in"
	case StateHoldingOn:
		return "holding-on"
	case StateFadingOut:
		return "fading-out"
	case StateHoldingOff:
		return "holding-off"
	}
	return "unknown"
}

// Cycle timings.
const (
	FlickerMinPeriod = 800 * time.Millisecond
	FlickerMaxPeriod = 1600 * time.Millisecond
	FlickerOnShare   = 0.3

	TwinkleFade   = 300 * time.Millisecond
	TwinkleOnMin  = 800 * time.Millisecond
	TwinkleOnMax  = 1100 * time.Millisecond
	TwinkleOffMin = 400 * time.Millisecond
	TwinkleOffMax = 600 * time.Millisecond

	// A twinkle bulb starts dark for up to this long, so bulbs of one pass
	// are out of phase from the first frame.
	TwinkleStartMax = TwinkleOnMax + TwinkleOffMax

	PulseOn       = 700 * time.Millisecond
	PulseOff      = 500 * time.Millisecond
	ChaseStagger  = 200 * time.Millisecond
	ChaseOn       = 500 * time.Millisecond
	ChaseOff      = 500 * time.Millisecond
)

// start enters the first state of the bulb's style.
func (n *Node) start() {
	switch n.style {
	case settings.StyleSteady:
		n.enter(StateOn, 0)
	case settings.StyleFlicker:
		n.period = n.uniform(FlickerMinPeriod, FlickerMaxPeriod)
		n.enter(StateOn, n.flickerOn())
	case settings.StyleTwinkle:
		n.enter(StateHoldingOff, n.uniform(time.Millisecond, TwinkleStartMax))
	case settings.StylePulse:
		n.enter(StateOn, PulseOn)
	case settings.StyleChase:
		if delay := time.Duration(n.index) * ChaseStagger; delay > 0 {
			n.enter(StateIdle, delay)
		} else {
			n.enter(StateOn, ChaseOn)
		}
	default:
		n.enter(StateOff, 0)
	}
}

// Tick advances the animation by dt, crossing as many state boundaries as
// dt covers.
func (n *Node) Tick(dt time.Duration) {
	for dt > 0 && !n.stopped && n.dur > 0 {
		left := n.dur - n.elapsed
		if dt < left {
			n.elapsed += dt
			n.applyFade()
			return
		}
		dt -= left
		n.elapsed = n.dur
		n.advance()
	}
}

// Remaining returns the time left in the current state, or zero for a
// static state.
func (n *Node) Remaining() time.Duration {
	if n.dur == 0 {
		return 0
	}
	return n.dur - n.elapsed
}

func (n *Node) advance() {
	switch n.style {
	case settings.StyleFlicker:
		if n.state == StateOn {
			n.enter(StateOff, n.period-n.flickerOn())
			return
		}
		n.period = n.uniform(FlickerMinPeriod, FlickerMaxPeriod)
		n.enter(StateOn, n.flickerOn())
	case settings.StyleTwinkle:
		switch n.state {
		case StateFadingIn:
			n.enter(StateHoldingOn, n.uniform(TwinkleOnMin, TwinkleOnMax))
		case StateHoldingOn:
			n.enter(StateFadingOut, TwinkleFade)
		case StateFadingOut:
			n.enter(StateHoldingOff, n.uniform(TwinkleOffMin, TwinkleOffMax))
		default:
			n.enter(StateFadingIn, TwinkleFade)
		}
	case settings.StylePulse:
		if n.state == StateOn {
			n.enter(StateOff, PulseOff)
		} else {
			n.enter(StateOn, PulseOn)
		}
	case settings.StyleChase:
		if n.state == StateOn {
			n.enter(StateOff, ChaseOff)
		} else {
			n.enter(StateOn, ChaseOn)
		}
	}
}

func (n *Node) enter(s State, d time.Duration) {
	n.state = s
	n.elapsed = 0
	n.dur = d
	switch s {
	case StateOn:
		n.setLit(true)
	case StateOff, StateIdle:
		n.setLit(false)
	default:
		n.applyFade()
	}
}

// applyFade sets the twinkle glow for the current point in the state.
func (n *Node) applyFade() {
	var progress float64
	if n.dur > 0 {
		progress = float64(n.elapsed) / float64(n.dur)
	}
	switch n.state {
	case StateFadingIn:
		n.setGlow(progress)
	case StateHoldingOn:
		n.setGlow(1)
	case StateFadingOut:
		n.setGlow(1 - progress)
	case StateHoldingOff:
		n.setGlow(0)
	}
}

func (n *Node) flickerOn() time.Duration {
	return time.Duration(float64(n.period) * FlickerOnShare)
}

// uniform returns a duration in [lo, hi).
func (n *Node) uniform(lo, hi time.Duration) time.Duration {
	return lo + time.Duration(n.rng.Int63n(int64(hi-lo)))
}
