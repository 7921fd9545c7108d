package clock

import (
	"fmt"
	"math"
	"time"
)

// Angles holds hand rotations in radians, applied to a hand drawn along the
// +x axis in screen coordinates: -π/2 points at twelve and positive values
// turn clockwise.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Degrees returns the angles converted to degrees.
func (a Angles) Degrees() (hour, minute, second float64) {
	const k = 180 / math.Pi
	return a.Hour * k, a.Minute * k, a.Second * k
}

func (a Angles) String() string {
	h, m, s := a.Degrees()
	return fmt.Sprintf("h=%.2f° m=%.2f° s=%.2f°", h, m, s)
}

// Quantization selects how the second hand's position within the minute is
// stepped.
type Quantization int

const (
	// QuantizeLinear sweeps the minute in 59 seconds so the hand reaches its
	// end position one tick early and never snaps back at the boundary. Steps
	// are 59000/60 ms apart, so they drift off whole-second marks.
	QuantizeLinear Quantization = iota
	// QuantizeDeadZone holds the hand for the first and last 750ms of each
	// minute and sweeps linearly in between.
	QuantizeDeadZone
)

const (
	msPerMinute   = 60_000
	linearSweepMs = 59_000
	deadZoneMs    = 750
)

func (q Quantization) String() string {
	switch q {
	case QuantizeDeadZone:
		return "deadzone"
	default:
		return "linear"
	}
}

// ParseQuantization returns the quantization named by s.
func ParseQuantization(s string) (Quantization, error) {
	switch s {
	case "linear", "":
		return QuantizeLinear, nil
	case "deadzone":
		return QuantizeDeadZone, nil
	}
	return QuantizeLinear, fmt.Errorf("unknown quantization %q", s)
}

// minutePhase maps milliseconds into the minute onto sixtieths in [0,1].
func (q Quantization) minutePhase(ms float64) float64 {
	var p float64
	switch q {
	case QuantizeDeadZone:
		p = (ms - deadZoneMs) / (msPerMinute - 2*deadZoneMs)
	default:
		p = ms / linearSweepMs
	}
	p = math.Min(math.Max(p, 0), 1)
	return math.Floor(60*p) / 60
}

// TargetOptions controls how wall-clock time turns into target angles.
type TargetOptions struct {
	Seconds Quantization
	// MinuteCreep lets elapsed seconds move the minute hand between whole
	// minutes.
	MinuteCreep bool
}

// TargetAngles returns the unanimated hand angles for now.
func TargetAngles(now time.Time, opts TargetOptions) Angles {
	hours := float64(now.Hour() % 12)
	minutes := float64(now.Minute())
	seconds := float64(now.Second())
	ms := seconds*1000 + float64(now.Nanosecond()/int(time.Millisecond))

	minute := minutes / 30
	if opts.MinuteCreep {
		minute += seconds / 1800
	}

	return Angles{
		Hour:   math.Pi * (hours/6 + minutes/360 + seconds/21600 - 0.5),
		Minute: math.Pi * (minute - 0.5),
		Second: math.Pi * (2*opts.Seconds.minutePhase(ms) - 0.5),
	}
}
