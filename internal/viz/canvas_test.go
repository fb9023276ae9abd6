package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("cell still empty after Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("cell not cleared: %U", c.Grid[0][0])
	}
}

func TestCanvasSubPixelPacking(t *testing.T) {
	c := NewCanvas(2, 2)

	// All 8 sub-pixels of one cell light every dot of the braille char.
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y)
		}
	}
	if c.Grid[0][0] != 0x28FF {
		t.Errorf("full cell = %U, want U+28FF", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2800 {
		t.Error("neighboring cell modified")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
	c.Unset(100, 100)

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("out-of-bounds writes changed the canvas")
			}
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool {
		return r != 0x2800 && r != '\n'
	}) {
		t.Error("canvas not empty after Clear")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	// Both endpoints must be lit.
	if c.Grid[0][0] == 0x2800 {
		t.Error("start of line not drawn")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("end of line not drawn")
	}
}

func TestPlotMapsDataCorners(t *testing.T) {
	c := NewCanvas(4, 4)
	b := &bounds{minX: 0, maxX: 1, minY: 0, maxY: 1}

	// Data y grows upward, so (0,0) lands in the bottom-left cell and
	// (1,1) in the top-right.
	c.plot(b, 0, 0)
	if c.Grid[3][0] == brailleBase {
		t.Error("origin not drawn in the bottom-left cell")
	}
	c.plot(b, 1, 1)
	if c.Grid[0][3] == brailleBase {
		t.Error("(1,1) not drawn in the top-right cell")
	}
}

func TestPlotSegmentSpansBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	b := newBounds(0, 0)
	b.add(1, 1)

	c.plotSegment(b, 0, 0, 1, 1)
	if c.Grid[3][0] == brailleBase || c.Grid[0][3] == brailleBase {
		t.Error("segment endpoints not drawn")
	}
	// A diagonal across a square window passes through the middle cells.
	if c.Grid[1][1] == brailleBase && c.Grid[2][2] == brailleBase &&
		c.Grid[1][2] == brailleBase && c.Grid[2][1] == brailleBase {
		t.Error("segment interior not drawn")
	}
}

func TestBoundsPadDegenerate(t *testing.T) {
	b := newBounds(2, 3)
	b.pad(0.05)
	if b.maxX <= b.minX || b.maxY <= b.minY {
		t.Errorf("degenerate window not widened: %+v", b)
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("line %d has %d runes, want 5", i, len([]rune(line)))
		}
	}
}
