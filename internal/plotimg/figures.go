// Package plotimg renders publication figures (PNG/SVG) with gonum/plot.
// The braille renderers in viz cover the terminal; this package covers
// handouts.
package plotimg

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/chaoslab/internal/analysis"
	"github.com/san-kum/chaoslab/internal/maps"
	"github.com/san-kum/chaoslab/internal/stability"
)

var (
	trajColor     = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	scatterColor  = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	stableColor   = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	unstableColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// SavePortrait writes a phase portrait figure. The extension of path picks
// the format (.png, .svg, .pdf).
func SavePortrait(portrait *analysis.Portrait, title, xLabel, yLabel, path string) error {
	if portrait == nil || len(portrait.Points) == 0 {
		return fmt.Errorf("plotimg: empty portrait")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(portrait.Points))
	for i, pt := range portrait.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(0.5)
	line.LineStyle.Color = trajColor
	p.Add(line)

	return p.Save(7*vg.Inch, 5*vg.Inch, path)
}

// SaveTimeSeries writes one state component against time.
func SaveTimeSeries(times, values []float64, title, path string) error {
	if len(times) == 0 || len(times) != len(values) {
		return fmt.Errorf("plotimg: bad series lengths %d/%d", len(times), len(values))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"

	xys := make(plotter.XYs, len(times))
	for i := range times {
		xys[i].X = times[i]
		xys[i].Y = values[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(0.75)
	line.LineStyle.Color = trajColor
	p.Add(line)

	return p.Save(8*vg.Inch, 3*vg.Inch, path)
}

// SaveMapBifurcation writes a 1D map bifurcation diagram as a dot plot.
func SaveMapBifurcation(points []maps.BifurcationPoint, title, paramLabel, path string) error {
	xys := make(plotter.XYs, 0, len(points)*32)
	for _, bp := range points {
		for _, v := range bp.Values {
			xys = append(xys, plotter.XY{X: bp.Param, Y: v})
		}
	}
	if len(xys) == 0 {
		return fmt.Errorf("plotimg: empty bifurcation data")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = paramLabel
	p.Y.Label.Text = "x"

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(0.4)
	scatter.GlyphStyle.Color = scatterColor
	p.Add(scatter)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// SaveReturnMap writes the successive-maxima scatter with the diagonal.
func SaveReturnMap(m *analysis.ReturnMap, title, path string) error {
	if m == nil || len(m.X) == 0 {
		return fmt.Errorf("plotimg: empty return map")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "z max (n)"
	p.Y.Label.Text = "z max (n+1)"

	xys := make(plotter.XYs, len(m.X))
	lo, hi := m.X[0], m.X[0]
	for i := range m.X {
		xys[i].X = m.X[i]
		xys[i].Y = m.Y[i]
		for _, v := range []float64{m.X[i], m.Y[i]} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	scatter.GlyphStyle.Color = scatterColor
	p.Add(scatter)

	diag, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	diag.LineStyle.Color = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	diag.LineStyle.Width = vg.Points(0.5)
	p.Add(diag)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// SaveBranches writes a fixed-point branch diagram: stable branches in
// green, unstable in red.
func SaveBranches(points []stability.BranchPoint, title, path string) error {
	var stable, unstable plotter.XYs
	for _, bp := range points {
		xy := plotter.XY{X: bp.Rho, Y: bp.Value}
		if bp.Stable {
			stable = append(stable, xy)
		} else {
			unstable = append(unstable, xy)
		}
	}
	if len(stable)+len(unstable) == 0 {
		return fmt.Errorf("plotimg: empty branch data")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "rho"
	p.Y.Label.Text = "x*"

	if len(stable) > 0 {
		s, err := plotter.NewScatter(stable)
		if err != nil {
			return err
		}
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Color = stableColor
		p.Add(s)
		p.Legend.Add("stable", s)
	}
	if len(unstable) > 0 {
		s, err := plotter.NewScatter(unstable)
		if err != nil {
			return err
		}
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Color = unstableColor
		p.Add(s)
		p.Legend.Add("unstable", s)
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
