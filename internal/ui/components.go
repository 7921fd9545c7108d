package ui

import (
	"fmt"
	"time"

	"github.com/olivier-w/clockface/internal/clock"
	"github.com/olivier-w/clockface/internal/transition"
)

// minuteProgress returns how far now is through the current minute.
func minuteProgress(now time.Time) float64 {
	ms := now.Second()*1000 + now.Nanosecond()/int(time.Millisecond)
	return float64(ms) / 60_000
}

func describeConfig(name string, cfg clock.Config) string {
	return fmt.Sprintf("%s · sec %s · min %s · %s · %s",
		name,
		transition.CurveName(cfg.SecondCurve),
		transition.CurveName(cfg.MinuteCurve),
		cfg.Stall,
		cfg.Seconds,
	)
}
