// Package face draws an analog clock face for a set of hand angles, either
// into a braille terminal canvas or into a PNG image.
package face

import "math"

// Layout holds the geometry of a face drawn into a w×h area.
type Layout struct {
	CX, CY float64
	Radius float64

	SecondLength float64
	MinuteLength float64
	HourLength   float64
}

// NewLayout centers a face in a w×h area.
func NewLayout(w, h float64) Layout {
	r := math.Min(w/2, h/2) * 0.7
	return Layout{
		CX:           w / 2,
		CY:           h / 2,
		Radius:       r,
		SecondLength: r * 0.9,
		MinuteLength: r * 0.8,
		HourLength:   r / 2,
	}
}

// Marker is a tick on the dial, drawn radially from Inner to Outer.
type Marker struct {
	Angle        float64
	Inner, Outer float64
	Major        bool
}

// Markers returns 48 minor ticks and 12 hour ticks.
func (l Layout) Markers() []Marker {
	out := make([]Marker, 0, 60)
	for i := range 60 {
		if i%5 == 0 {
			continue
		}
		out = append(out, Marker{
			Angle: math.Pi * (float64(i)/30 - 0.5),
			Inner: l.Radius * 0.9,
			Outer: l.Radius,
		})
	}
	for i := range 12 {
		out = append(out, Marker{
			Angle: math.Pi * (float64(i)/6 - 0.5),
			Inner: l.Radius * 0.8,
			Outer: l.Radius,
			Major: true,
		})
	}
	return out
}

// Point returns the position at distance d along angle from the center.
func (l Layout) Point(angle, d float64) (x, y float64) {
	return l.CX + d*math.Cos(angle), l.CY + d*math.Sin(angle)
}
