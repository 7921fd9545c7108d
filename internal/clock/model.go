// Package clock turns wall-clock time into animated analog hand angles.
package clock

import (
	"fmt"
	"math"
	"time"

	"github.com/olivier-w/clockface/internal/transition"
)

const fullTurn = 2 * math.Pi

// Model owns the animated second and minute hands. The hour hand follows its
// target directly.
type Model struct {
	cfg    Config
	second *transition.Transition
	minute *transition.Transition
	angles Angles
}

// NewModel builds a Model for cfg. Call Reset before the first Update.
func NewModel(cfg Config) (*Model, error) {
	m := &Model{}
	if err := m.configure(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) configure(cfg Config) error {
	cfg = cfg.withDefaults()
	second, err := transition.New(cfg.SecondCurve, cfg.SecondRate, fullTurn, cfg.Stall)
	if err != nil {
		return fmt.Errorf("second hand: %w", err)
	}
	minute, err := transition.New(cfg.MinuteCurve, cfg.MinuteRate, fullTurn, cfg.Stall)
	if err != nil {
		return fmt.Errorf("minute hand: %w", err)
	}
	m.cfg = cfg
	m.second = second
	m.minute = minute
	return nil
}

// Reset snaps every hand to its target for now without animating.
func (m *Model) Reset(now time.Time) {
	target := TargetAngles(now, m.cfg.TargetOptions())
	m.second.Reset(target.Second)
	m.minute.Reset(target.Minute)
	m.angles = target
}

// Update recomputes targets for now and advances the animated hands to
// timestamp, in milliseconds on a monotonic frame clock.
func (m *Model) Update(now time.Time, timestamp float64) Angles {
	target := TargetAngles(now, m.cfg.TargetOptions())
	m.angles = Angles{
		Hour:   target.Hour,
		Minute: m.minute.Advance(target.Minute, timestamp),
		Second: m.second.Advance(target.Second, timestamp),
	}
	return m.angles
}

// Angles returns the angles computed by the last Reset or Update.
func (m *Model) Angles() Angles { return m.angles }

// SecondTarget returns the target of the second hand's current run.
func (m *Model) SecondTarget() float64 { return m.second.Target() }

// Config returns the active configuration with defaults filled in.
func (m *Model) Config() Config { return m.cfg }

// SetConfig swaps the animation configuration and resets to now. On error
// the previous configuration stays in place.
func (m *Model) SetConfig(cfg Config, now time.Time) error {
	if err := m.configure(cfg); err != nil {
		return err
	}
	m.Reset(now)
	return nil
}
