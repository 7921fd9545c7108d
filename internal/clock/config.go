package clock

import (
	"errors"
	"fmt"
	"sort"

	"github.com/olivier-w/clockface/internal/transition"
)

// ErrUnknownPreset is returned by Preset for names it does not know.
var ErrUnknownPreset = errors.New("unknown preset")

// Default advance rates, in phase units per millisecond.
const (
	DefaultSecondRate = 1.0 / 300
	DefaultMinuteRate = 1.0 / 600
)

// Config selects the animation behavior of a Model.
type Config struct {
	SecondCurve transition.Curve
	MinuteCurve transition.Curve
	Stall       transition.StallPolicy
	Seconds     Quantization
	MinuteCreep bool

	// Rates default to DefaultSecondRate and DefaultMinuteRate when zero.
	SecondRate float64
	MinuteRate float64
}

// TargetOptions returns the target computation settings of c.
func (c Config) TargetOptions() TargetOptions {
	return TargetOptions{Seconds: c.Seconds, MinuteCreep: c.MinuteCreep}
}

func (c Config) withDefaults() Config {
	if c.SecondCurve == nil {
		c.SecondCurve = transition.Sine{}
	}
	if c.MinuteCurve == nil {
		c.MinuteCurve = transition.Sine{}
	}
	if c.SecondRate == 0 {
		c.SecondRate = DefaultSecondRate
	}
	if c.MinuteRate == 0 {
		c.MinuteRate = DefaultMinuteRate
	}
	return c
}

// DefaultPreset is the preset used when none is configured.
const DefaultPreset = "spring"

var presets = map[string]func() Config{
	"basic": func() Config {
		return Config{
			SecondCurve: transition.Sine{},
			MinuteCurve: transition.Sine{},
			Stall:       transition.StallTeleport,
			Seconds:     QuantizeLinear,
			MinuteCreep: true,
		}
	},
	"spring": func() Config {
		return Config{
			SecondCurve: transition.Sine{},
			MinuteCurve: transition.CubicOvershoot{},
			Stall:       transition.StallTeleport,
			Seconds:     QuantizeLinear,
		}
	},
	"deadzone": func() Config {
		return Config{
			SecondCurve: transition.Sine{},
			MinuteCurve: transition.Sine{},
			Stall:       transition.StallFreeze,
			Seconds:     QuantizeDeadZone,
		}
	},
}

// Preset returns the named configuration.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	return fn().withDefaults(), nil
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
