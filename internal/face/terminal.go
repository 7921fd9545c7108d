package face

import "github.com/olivier-w/clockface/internal/clock"

var (
	dialColor   = colorRGB{R: 110, G: 110, B: 110}
	markerColor = colorRGB{R: 170, G: 170, B: 170}
	handColor   = colorRGB{R: 235, G: 235, B: 235}
	secondColor = colorRGB{R: 255, G: 95, B: 31}
)

// Terminal renders a face into braille characters.
type Terminal struct {
	profile colorProfile
	palette map[layer]colorRGB
	output  string
}

// NewTerminal returns a renderer using the color support detected from the
// environment (NO_COLOR, COLORTERM, TERM).
func NewTerminal() *Terminal {
	return newTerminal(currentColorProfile())
}

func newTerminal(p colorProfile) *Terminal {
	return &Terminal{
		profile: p,
		palette: map[layer]colorRGB{
			layerDial:   dialColor,
			layerMarker: markerColor,
			layerHour:   handColor,
			layerMinute: lerpColor(handColor, markerColor, 0.25),
			layerSecond: secondColor,
		},
	}
}

// Update draws a into a cols×rows cell area.
func (t *Terminal) Update(a clock.Angles, cols, rows int) {
	if cols < 4 || rows < 2 {
		t.output = ""
		return
	}
	c := newDotCanvas(cols, rows)
	l := NewLayout(float64(c.w), float64(c.h))

	c.circle(l.CX, l.CY, l.Radius, layerDial)
	for _, m := range l.Markers() {
		x0, y0 := l.Point(m.Angle, m.Inner)
		x1, y1 := l.Point(m.Angle, m.Outer)
		lay := layerDial
		if m.Major {
			lay = layerMarker
		}
		c.line(x0, y0, x1, y1, lay)
	}

	hands := []struct {
		angle  float64
		length float64
		layer  layer
	}{
		{a.Hour, l.HourLength, layerHour},
		{a.Minute, l.MinuteLength, layerMinute},
		{a.Second, l.SecondLength, layerSecond},
	}
	for _, h := range hands {
		x, y := l.Point(h.angle, h.length)
		c.line(l.CX, l.CY, x, y, h.layer)
	}

	t.output = c.render(t.profile, t.palette)
}

// View returns the last rendered face.
func (t *Terminal) View() string { return t.output }
