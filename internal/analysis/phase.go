package analysis

import "github.com/san-kum/chaoslab/internal/dynamo"

// Point2 is a single phase-plane sample.
type Point2 struct{ X, Y float64 }

// Portrait holds data for a 2D phase space plot.
type Portrait struct {
	XIndex, YIndex int
	Points         []Point2
}

// PhasePortrait runs a simulation and records the trajectory projected on
// two state indices.
func PhasePortrait(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	xIdx, yIdx int,
	dt, duration float64,
) *Portrait {
	if xIdx >= len(x0) || yIdx >= len(x0) {
		return nil
	}

	portrait := &Portrait{
		XIndex: xIdx,
		YIndex: yIdx,
		Points: make([]Point2, 0, int(duration/dt)),
	}

	x := x0.Clone()
	t := 0.0

	for t < duration {
		x = integ.Step(sys, x, t, dt)
		t += dt

		portrait.Points = append(portrait.Points, Point2{X: x[xIdx], Y: x[yIdx]})
	}

	return portrait
}

// TrajectoryPortrait projects an already recorded trajectory.
func TrajectoryPortrait(states []dynamo.State, xIdx, yIdx int) *Portrait {
	portrait := &Portrait{XIndex: xIdx, YIndex: yIdx, Points: make([]Point2, 0, len(states))}
	for _, s := range states {
		if xIdx >= len(s) || yIdx >= len(s) {
			continue
		}
		portrait.Points = append(portrait.Points, Point2{X: s[xIdx], Y: s[yIdx]})
	}
	return portrait
}

// Section records trajectory samples on plane crossings.
type Section struct {
	Points []Point2
}

// PoincareSection records the trajectory each time the variable at crossIdx
// crosses threshold in the positive direction. The crossing state is
// linearly interpolated between the bracketing samples.
func PoincareSection(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	crossIdx int,
	threshold float64,
	recordX, recordY int,
	dt, duration float64,
) *Section {
	if crossIdx >= len(x0) || recordX >= len(x0) || recordY >= len(x0) {
		return nil
	}

	section := &Section{Points: make([]Point2, 0)}

	x := x0.Clone()
	prev := x.Clone()
	t := 0.0

	for t < duration {
		copy(prev, x)
		x = integ.Step(sys, x, t, dt)
		t += dt

		if prev[crossIdx] < threshold && x[crossIdx] >= threshold {
			frac := (threshold - prev[crossIdx]) / (x[crossIdx] - prev[crossIdx])

			section.Points = append(section.Points, Point2{
				X: prev[recordX] + frac*(x[recordX]-prev[recordX]),
				Y: prev[recordY] + frac*(x[recordY]-prev[recordY]),
			})
		}
	}

	return section
}

// StroboscopicSection samples the trajectory once per forcing period,
// the standard construction for driven systems like Duffing.
func StroboscopicSection(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	period float64,
	recordX, recordY int,
	dt, duration float64,
) *Section {
	if period <= 0 || recordX >= len(x0) || recordY >= len(x0) {
		return nil
	}

	section := &Section{Points: make([]Point2, 0, int(duration/period))}

	x := x0.Clone()
	t := 0.0
	next := period

	for t < duration {
		x = integ.Step(sys, x, t, dt)
		t += dt

		if t >= next {
			section.Points = append(section.Points, Point2{X: x[recordX], Y: x[recordY]})
			next += period
		}
	}

	return section
}
