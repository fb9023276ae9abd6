package viz

import (
	"strings"
)

// brailleBase is the empty braille cell; dot bits are or-ed into it, so a
// cell never drops below the base.
const brailleBase = 0x2800

// dotMask holds the bit for each sub-pixel of a braille cell, dots laid out
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a character grid of braille cells. Each cell packs 2x4
// sub-pixels, so the drawable resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
	return c
}

// cell maps sub-pixel coordinates to a grid cell and its dot bit.
// ok is false when the coordinates fall outside the canvas.
func (c *Canvas) cell(x, y int) (row, col int, bit rune, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, 0, false
	}
	return row, col, dotMask[y%4][x%2], true
}

// Set turns on the sub-pixel at (x, y). Out-of-range coordinates are
// silently dropped so line clipping needs no special casing.
func (c *Canvas) Set(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] |= bit
	}
}

// Unset turns the sub-pixel back off. The base cell is untouched since the
// dot bits live below it.
func (c *Canvas) Unset(x, y int) {
	if row, col, bit, ok := c.cell(x, y); ok {
		c.Grid[row][col] &^= bit
	}
}

// Clear resets every cell to the empty braille char.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's
// algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// bounds is the data window a canvas maps onto its sub-pixel grid.
type bounds struct{ minX, maxX, minY, maxY float64 }

func newBounds(x, y float64) *bounds {
	return &bounds{minX: x, maxX: x, minY: y, maxY: y}
}

func (b *bounds) add(x, y float64) {
	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// pad widens the window by a fraction of its range on each side, so points
// on the hull do not land on the canvas edge. Degenerate ranges widen from
// a unit range.
func (b *bounds) pad(frac float64) {
	rx := b.maxX - b.minX
	ry := b.maxY - b.minY
	if rx == 0 {
		rx = 1
	}
	if ry == 0 {
		ry = 1
	}
	b.minX -= rx * frac
	b.maxX += rx * frac
	b.minY -= ry * frac
	b.maxY += ry * frac
}

// project maps a data point into sub-pixel coordinates, y growing upward.
func (c *Canvas) project(b *bounds, x, y float64) (int, int) {
	pw, ph := c.Width*2, c.Height*4
	px := int((x - b.minX) / (b.maxX - b.minX) * float64(pw-1))
	py := ph - 1 - int((y-b.minY)/(b.maxY-b.minY)*float64(ph-1))
	return px, py
}

// plot sets the sub-pixel nearest a data point.
func (c *Canvas) plot(b *bounds, x, y float64) {
	c.Set(c.project(b, x, y))
}

// plotSegment draws the line between two data points.
func (c *Canvas) plotSegment(b *bounds, x0, y0, x1, y1 float64) {
	px0, py0 := c.project(b, x0, y0)
	px1, py1 := c.project(b, x1, y1)
	c.DrawLine(px0, py0, px1, py1)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
