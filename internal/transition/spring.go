package transition

import "github.com/charmbracelet/harmonica"

const springSamples = 240

// Defaults used by ParseCurve("spring").
const (
	DefaultSpringFrequency = 9.0
	DefaultSpringDamping   = 0.35
)

// Spring is a damped harmonic response sampled once at construction and
// replayed by phase. Underdamped settings overshoot like CubicOvershoot but
// with a physically shaped tail.
type Spring struct {
	table []float64
}

// NewSpring samples a spring with the given angular frequency and damping
// ratio moving from 0 toward 1. The response is stretched so the last sample
// lands at phase 1, and the endpoints are pinned to exactly 0 and 1.
func NewSpring(frequency, damping float64) *Spring {
	s := harmonica.NewSpring(1.0/springSamples, frequency, damping)
	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		table[i] = pos
	}

	// Blend out whatever residual error the simulation leaves at the end so
	// the curve settles exactly on 1.
	residual := 1 - table[springSamples]
	for i := range table {
		table[i] += residual * float64(i) / springSamples
	}
	table[0] = 0
	table[springSamples] = 1
	return &Spring{table: table}
}

func (s *Spring) Value(phase float64) float64 {
	phase = clamp01(phase)
	pos := phase * springSamples
	lo := int(pos)
	if lo >= springSamples {
		return s.table[springSamples]
	}
	t := pos - float64(lo)
	return s.table[lo]*(1-t) + s.table[lo+1]*t
}
