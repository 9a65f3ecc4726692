package terminal

import "github.com/matzehuels/logtrack/pkg/core/color"

// dot bits for the 2x4 micro-pixels of a braille cell, indexed [row][col]
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille raster of w×h terminal cells, each holding 2×4
// micro-pixels.
type Canvas struct {
	w, h int
	mask [][]uint8
	ink  [][]color.RGB
	text [][]rune
}

// NewCanvas allocates a blank canvas. Non-positive sizes yield an empty canvas.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h}
	c.mask = make([][]uint8, h)
	c.ink = make([][]color.RGB, h)
	c.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		c.mask[i] = make([]uint8, w)
		c.ink[i] = make([]color.RGB, w)
		c.text[i] = make([]rune, w)
	}
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// MicroSize returns the canvas size in micro-pixels.
func (c *Canvas) MicroSize() (w, h int) { return c.w * 2, c.h * 4 }

// Set turns on the micro-pixel at (mx, my). Out-of-range pixels are ignored.
func (c *Canvas) Set(mx, my int, ink color.RGB) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.mask[cy][cx] |= dotBits[my%4][mx%2]
	c.ink[cy][cx] = ink
}

// Line draws a Bresenham line between two micro-pixels.
func (c *Canvas) Line(x0, y0, x1, y1 int, ink color.RGB) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Text writes s starting at cell (cx, cy), replacing braille dots.
func (c *Canvas) Text(cx, cy int, s string, ink color.RGB) {
	if cy < 0 || cy >= c.h {
		return
	}
	for _, r := range s {
		if cx >= 0 && cx < c.w {
			c.text[cy][cx] = r
			c.ink[cy][cx] = ink
		}
		cx++
	}
}

// Cell returns the rune drawn at a cell and the colour of its last stroke.
func (c *Canvas) Cell(cx, cy int) (rune, color.RGB, bool) {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return ' ', 0, false
	}
	if r := c.text[cy][cx]; r != 0 {
		return r, c.ink[cy][cx], true
	}
	if m := c.mask[cy][cx]; m != 0 {
		return rune(0x2800 + int(m)), c.ink[cy][cx], true
	}
	return ' ', 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
