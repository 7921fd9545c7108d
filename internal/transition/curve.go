package transition

import (
	"fmt"
	"math"
)

// Curve maps normalized animation progress onto normalized output position.
// Implementations must satisfy Value(0) == 0 and Value(1) == 1.
type Curve interface {
	Value(phase float64) float64
}

// CurveFunc adapts a plain function to the Curve interface. The phase is
// clamped to [0,1] before f is called.
type CurveFunc func(phase float64) float64

func (f CurveFunc) Value(phase float64) float64 { return f(clamp01(phase)) }

// Sine eases in and out symmetrically.
type Sine struct{}

func (Sine) Value(phase float64) float64 {
	phase = clamp01(phase)
	switch phase {
	case 0:
		return 0
	case 1:
		return 1
	}
	return (1 + math.Sin((phase-0.5)*math.Pi)) / 2
}

// CubicOvershoot swings past the target before settling back, which reads as
// a small bounce on a clock hand.
type CubicOvershoot struct{}

func (CubicOvershoot) Value(phase float64) float64 {
	phase = clamp01(phase)
	switch phase {
	case 0:
		return 0
	case 1:
		return 1
	}
	return 6.634806*phase - 11.469158*phase*phase + 5.834352*phase*phase*phase
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseCurve returns the curve registered under name.
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "sine", "":
		return Sine{}, nil
	case "overshoot":
		return CubicOvershoot{}, nil
	case "spring":
		return NewSpring(DefaultSpringFrequency, DefaultSpringDamping), nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// CurveName returns the name ParseCurve accepts for c, or "custom".
func CurveName(c Curve) string {
	switch c.(type) {
	case Sine:
		return "sine"
	case CubicOvershoot:
		return "overshoot"
	case *Spring:
		return "spring"
	}
	return "custom"
}
