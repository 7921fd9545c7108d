package clock

import "time"

// TimeSource supplies wall-clock time to the model.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the local wall clock.
var SystemTime TimeSource = systemTime{}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// FixedTime always reports the same instant.
type FixedTime time.Time

func (f FixedTime) Now() time.Time { return time.Time(f) }
