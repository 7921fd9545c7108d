package face

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/olivier-w/clockface/internal/clock"
)

// Raster draws faces into an image with the gg software rasterizer.
type Raster struct {
	size int
	dc   *gg.Context
}

// NewRaster returns a square size×size raster.
func NewRaster(size int) *Raster {
	return &Raster{size: size, dc: gg.NewContext(size, size)}
}

// Close releases the drawing context.
func (r *Raster) Close() error { return r.dc.Close() }

// Draw renders a onto a cleared canvas.
func (r *Raster) Draw(a clock.Angles) error {
	dc := r.dc
	l := NewLayout(float64(r.size), float64(r.size))

	dc.Identity()
	dc.ClearWithColor(gg.White)

	dc.SetFillBrush(gg.NewRadialGradientBrush(l.CX, l.CY, 0, l.Radius).
		AddColorStop(0, gg.Hex("#FFFFFF")).
		AddColorStop(1, gg.Hex("#E6E6E6")))
	dc.DrawCircle(l.CX, l.CY, l.Radius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill dial: %w", err)
	}

	dc.Translate(l.CX, l.CY)

	dc.SetStrokeBrush(gg.Solid(gg.Black))
	dc.SetLineWidth(2)
	dc.DrawCircle(0, 0, l.Radius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke dial: %w", err)
	}

	for _, m := range l.Markers() {
		width := 1.0
		if m.Major {
			width = 3
		}
		dc.Push()
		dc.Rotate(m.Angle)
		dc.SetLineWidth(width)
		dc.DrawLine(m.Inner, 0, m.Outer, 0)
		err := dc.Stroke()
		dc.Pop()
		if err != nil {
			return fmt.Errorf("stroke marker: %w", err)
		}
	}

	hands := []struct {
		angle  float64
		length float64
		width  float64
		color  gg.RGBA
	}{
		{a.Hour, l.HourLength, 6, gg.Black},
		{a.Minute, l.MinuteLength, 6, gg.Black},
		{a.Second, l.SecondLength, 4, gg.Hex("#FF5F1F")},
	}
	for _, h := range hands {
		dc.Push()
		dc.Rotate(h.angle)
		dc.SetFillBrush(gg.Solid(h.color))
		dc.DrawRectangle(0, -h.width/2, h.length, h.width)
		err := dc.Fill()
		dc.Pop()
		if err != nil {
			return fmt.Errorf("fill hand: %w", err)
		}
	}
	return nil
}

// EncodePNG writes the current canvas as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// WritePNG renders a at size×size pixels and writes it to w as PNG.
func WritePNG(w io.Writer, a clock.Angles, size int) error {
	r := NewRaster(size)
	defer r.Close()
	if err := r.Draw(a); err != nil {
		return err
	}
	return r.EncodePNG(w)
}
