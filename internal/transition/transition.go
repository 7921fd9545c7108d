// Package transition animates a scalar toward a moving target along an
// easing curve, with shortest-path handling for periodic quantities such as
// angles.
package transition

import (
	"errors"
	"fmt"
	"math"
)

// StallThreshold is the largest gap between two advances, in timestamp
// units, that is integrated normally. Anything longer is treated as a stall.
const StallThreshold = 1000.0

var (
	ErrInvalidRate   = errors.New("transition: advance rate must be positive")
	ErrInvalidPeriod = errors.New("transition: period must not be negative")
)

// StallPolicy decides what an advance does after a stall.
type StallPolicy int

const (
	// StallTeleport completes the running animation instantly.
	StallTeleport StallPolicy = iota
	// StallFreeze makes no progress for the stalled step.
	StallFreeze
)

func (p StallPolicy) String() string {
	switch p {
	case StallFreeze:
		return "freeze"
	default:
		return "teleport"
	}
}

// ParseStallPolicy returns the policy named by s.
func ParseStallPolicy(s string) (StallPolicy, error) {
	switch s {
	case "teleport", "":
		return StallTeleport, nil
	case "freeze":
		return StallFreeze, nil
	}
	return StallTeleport, fmt.Errorf("unknown stall policy %q", s)
}

// Transition tracks one animated value. The zero value is not usable; create
// one with New.
type Transition struct {
	curve  Curve
	rate   float64
	period float64
	stall  StallPolicy

	value  float64
	phase  float64
	anchor float64
	target float64
	last   float64
}

// New returns a settled Transition at 0. rate is phase units per timestamp
// unit. A period of 0 disables wrap-around handling.
func New(curve Curve, rate, period float64, stall StallPolicy) (*Transition, error) {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
	}
	if period < 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, period)
	}
	if curve == nil {
		curve = Sine{}
	}
	return &Transition{curve: curve, rate: rate, period: period, stall: stall}, nil
}

// Reset settles the transition at v, discarding any animation in flight.
func (t *Transition) Reset(v float64) {
	t.value = v
	t.anchor = v
	t.target = v
	t.phase = 0
	t.last = 0
}

// Advance moves the animation toward target as of timestamp and returns the
// new current value.
func (t *Transition) Advance(target, timestamp float64) float64 {
	if target != t.target {
		start := t.target
		if t.period > 0 {
			start = t.unwrap(start, target)
		}
		t.anchor = start
		t.value = start
		t.target = target
		t.phase = 0
	}

	elapsed := timestamp - t.last
	stalled := elapsed > StallThreshold
	if elapsed < 0 || math.IsNaN(elapsed) || (stalled && t.stall == StallFreeze) {
		elapsed = 0
	}
	if stalled && t.stall == StallTeleport {
		t.phase = 1
	} else {
		t.phase = clamp01(t.phase + elapsed*t.rate)
	}

	if t.phase >= 1 {
		t.value = t.target
	} else {
		t.value = t.anchor + t.curve.Value(t.phase)*(t.target-t.anchor)
	}
	if !math.IsNaN(timestamp) {
		t.last = timestamp
	}
	return t.value
}

// unwrap shifts start by whole periods until it lies within half a period of
// target. A start exactly half a period away keeps its side.
func (t *Transition) unwrap(start, target float64) float64 {
	half := t.period / 2
	for start > target+half {
		start -= t.period
	}
	for start < target-half {
		start += t.period
	}
	return start
}

// Value returns the current animated value.
func (t *Transition) Value() float64 { return t.value }

// Phase returns progress through the current run, in [0,1].
func (t *Transition) Phase() float64 { return t.phase }

// Target returns the value the current run is heading to.
func (t *Transition) Target() float64 { return t.target }

// Anchor returns the value the current run started from.
func (t *Transition) Anchor() float64 { return t.anchor }

// Settled reports whether the current run has finished.
func (t *Transition) Settled() bool { return t.phase >= 1 || t.anchor == t.target }

// Curve returns the easing curve in use.
func (t *Transition) Curve() Curve { return t.curve }
