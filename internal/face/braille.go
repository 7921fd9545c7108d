package face

import (
	"math"
	"strings"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// layer orders what is drawn on top when several elements share a cell.
type layer uint8

const (
	layerNone layer = iota
	layerDial
	layerMarker
	layerHour
	layerMinute
	layerSecond
)

// dotCanvas is a grid of braille dots, two per cell horizontally and four
// vertically. Each dot remembers the topmost layer drawn on it.
type dotCanvas struct {
	cols, rows int
	w, h       int
	dots       []layer
}

func newDotCanvas(cols, rows int) *dotCanvas {
	c := &dotCanvas{cols: cols, rows: rows, w: cols * 2, h: rows * 4}
	c.dots = make([]layer, c.w*c.h)
	return c
}

func (c *dotCanvas) set(x, y float64, l layer) {
	ix, iy := int(math.Floor(x)), int(math.Floor(y))
	if ix < 0 || iy < 0 || ix >= c.w || iy >= c.h {
		return
	}
	if i := iy*c.w + ix; c.dots[i] < l {
		c.dots[i] = l
	}
}

func (c *dotCanvas) line(x0, y0, x1, y1 float64, l layer) {
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.set(x0+(x1-x0)*t, y0+(y1-y0)*t, l)
	}
}

func (c *dotCanvas) circle(cx, cy, r float64, l layer) {
	steps := int(math.Ceil(2 * math.Pi * r * 2))
	if steps < 8 {
		steps = 8
	}
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.set(cx+r*math.Cos(a), cy+r*math.Sin(a), l)
	}
}

// cell returns the braille pattern of a cell and the topmost layer in it.
func (c *dotCanvas) cell(col, row int) (uint, layer) {
	var pattern uint
	top := layerNone
	for dx := range 2 {
		for dy := range 4 {
			l := c.dots[(row*4+dy)*c.w+col*2+dx]
			if l == layerNone {
				continue
			}
			pattern |= 1 << brailleBits[dx][dy]
			if l > top {
				top = l
			}
		}
	}
	return pattern, top
}

func (c *dotCanvas) render(p colorProfile, palette map[layer]colorRGB) string {
	rows := make([]string, c.rows)
	for row := range c.rows {
		var line strings.Builder
		color := newANSIState(p)
		for col := range c.cols {
			pattern, top := c.cell(col, row)
			if pattern == 0 {
				color.reset(&line)
				line.WriteRune(' ')
				continue
			}
			color.set(&line, palette[top])
			line.WriteRune(rune(0x2800 + pattern))
		}
		color.reset(&line)
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}
