package viz

import (
	"math"
	"strings"

	"github.com/san-kum/chaoslab/internal/analysis"
	"github.com/san-kum/chaoslab/internal/maps"
	"github.com/san-kum/chaoslab/internal/stability"
)

// RenderPortrait draws a phase portrait on a braille canvas.
// Width and height are in characters; sub-pixel resolution is 2x4 per char.
func RenderPortrait(portrait *analysis.Portrait, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 {
		return ""
	}

	b := newBounds(portrait.Points[0].X, portrait.Points[0].Y)
	for _, p := range portrait.Points {
		b.add(p.X, p.Y)
	}
	b.pad(0.05)

	canvas := NewCanvas(width, height)
	prev := portrait.Points[0]
	canvas.plot(b, prev.X, prev.Y)
	for _, p := range portrait.Points[1:] {
		canvas.plotSegment(b, prev.X, prev.Y, p.X, p.Y)
		prev = p
	}

	return canvas.String()
}

// RenderSection draws a Poincaré section as a braille scatter.
func RenderSection(section *analysis.Section, width, height int) string {
	if section == nil || len(section.Points) == 0 {
		return "no crossings detected"
	}

	b := newBounds(section.Points[0].X, section.Points[0].Y)
	for _, p := range section.Points {
		b.add(p.X, p.Y)
	}
	b.pad(0.05)

	canvas := NewCanvas(width, height)
	for _, p := range section.Points {
		canvas.plot(b, p.X, p.Y)
	}
	return canvas.String()
}

// RenderReturnMap draws the successive-maxima scatter with the diagonal,
// the "Lorenz map" figure. Points above the diagonal grow, below shrink.
func RenderReturnMap(m *analysis.ReturnMap, width, height int) string {
	if m == nil || len(m.X) == 0 {
		return "not enough maxima"
	}

	b := newBounds(m.X[0], m.Y[0])
	for i := range m.X {
		b.add(m.X[i], m.Y[i])
	}
	b.pad(0.05)

	// Square up so the diagonal is at 45 degrees.
	lo := math.Min(b.minX, b.minY)
	hi := math.Max(b.maxX, b.maxY)
	b.minX, b.minY, b.maxX, b.maxY = lo, lo, hi, hi

	canvas := NewCanvas(width, height)
	canvas.plotSegment(b, lo, lo, hi, hi)
	for i := range m.X {
		canvas.plot(b, m.X[i], m.Y[i])
	}
	return canvas.String()
}

// RenderMapBifurcation draws a 1D map bifurcation diagram as a braille
// scatter: parameter on x, attractor samples on y.
func RenderMapBifurcation(points []maps.BifurcationPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	var b *bounds
	for _, p := range points {
		for _, v := range p.Values {
			if b == nil {
				b = newBounds(p.Param, v)
			}
			b.add(p.Param, v)
		}
	}
	if b == nil {
		return ""
	}
	b.pad(0.02)

	canvas := NewCanvas(width, height)
	for _, p := range points {
		for _, v := range p.Values {
			canvas.plot(b, p.Param, v)
		}
	}
	return canvas.String()
}

// RenderSweep draws a flow bifurcation sweep the same way.
func RenderSweep(points []analysis.BifurcationPoint, width, height int) string {
	converted := make([]maps.BifurcationPoint, len(points))
	for i, p := range points {
		converted[i] = maps.BifurcationPoint{Param: p.Param, Values: p.Values}
	}
	return RenderMapBifurcation(converted, width, height)
}

// RenderBranches draws equilibrium branches, stable as dots, unstable as a
// sparser dashed texture.
func RenderBranches(points []stability.BranchPoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	b := newBounds(points[0].Rho, points[0].Value)
	for _, p := range points {
		b.add(p.Rho, p.Value)
	}
	b.pad(0.05)

	canvas := NewCanvas(width, height)
	for i, p := range points {
		if p.Stable || i%2 == 0 {
			canvas.plot(b, p.Rho, p.Value)
		}
	}
	return canvas.String()
}

// RenderCobweb draws the map curve, the diagonal, and the staircase.
func RenderCobweb(m maps.Map, segs []maps.CobwebSegment, width, height int) string {
	lo, hi := m.Domain()

	b := &bounds{minX: lo, maxX: hi, minY: lo, maxY: hi}
	for _, s := range segs {
		b.add(s.X0, s.Y0)
		b.add(s.X1, s.Y1)
	}
	b.pad(0.03)

	canvas := NewCanvas(width, height)

	// Diagonal y = x.
	canvas.plotSegment(b, lo, lo, hi, hi)

	// The curve y = f(x), sampled once per sub-pixel column.
	samples := width * 2
	prevSet := false
	var prevX, prevY float64
	for i := 0; i <= samples; i++ {
		x := lo + (hi-lo)*float64(i)/float64(samples)
		y := m.Apply(x)
		if y < b.minY || y > b.maxY {
			prevSet = false
			continue
		}
		if prevSet {
			canvas.plotSegment(b, prevX, prevY, x, y)
		}
		prevX, prevY = x, y
		prevSet = true
	}

	// The staircase.
	for _, s := range segs {
		canvas.plotSegment(b, s.X0, s.Y0, s.X1, s.Y1)
	}

	return canvas.String()
}

// Frame wraps a rendered plot with a labeled border.
func Frame(plot, title string) string {
	lines := strings.Split(strings.TrimRight(plot, "\n"), "\n")
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}

	var sb strings.Builder
	sb.WriteString("┌─ " + title + " " + strings.Repeat("─", maxInt(0, width-len([]rune(title))-3)) + "┐\n")
	for _, l := range lines {
		pad := width - len([]rune(l))
		sb.WriteString("│" + l + strings.Repeat(" ", pad) + "│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", width) + "┘\n")
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
