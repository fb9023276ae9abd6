package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
	"github.com/san-kum/chaoslab/internal/integrators"
)

// rotor is x' = y, y' = -x; orbits are circles about the origin.
type rotor struct{}

func (rotor) Name() string { return "rotor" }
func (rotor) Dim() int     { return 2 }
func (rotor) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func TestPhasePortraitCircle(t *testing.T) {
	p := PhasePortrait(rotor{}, integrators.NewRK4(), dynamo.State{1, 0}, 0, 1, 0.01, 2*math.Pi)
	if p == nil || len(p.Points) == 0 {
		t.Fatal("empty portrait")
	}

	// Every sample should stay on the unit circle.
	for i, pt := range p.Points {
		r := math.Hypot(pt.X, pt.Y)
		if math.Abs(r-1) > 1e-4 {
			t.Fatalf("point %d at radius %f", i, r)
		}
	}
}

func TestPhasePortraitBadIndices(t *testing.T) {
	if p := PhasePortrait(rotor{}, integrators.NewRK4(), dynamo.State{1, 0}, 0, 5, 0.01, 1); p != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestTrajectoryPortrait(t *testing.T) {
	states := []dynamo.State{{1, 2, 3}, {4, 5, 6}}
	p := TrajectoryPortrait(states, 0, 2)
	if len(p.Points) != 2 {
		t.Fatalf("got %d points", len(p.Points))
	}
	if p.Points[0].X != 1 || p.Points[0].Y != 3 {
		t.Errorf("bad projection: %v", p.Points[0])
	}
}

func TestPoincareSectionCrossings(t *testing.T) {
	// The rotor crosses y = 0 upward once per revolution.
	revs := 5.0
	s := PoincareSection(rotor{}, integrators.NewRK4(), dynamo.State{0, 1},
		1, 0, 0, 1, 0.01, revs*2*math.Pi)
	if s == nil {
		t.Fatal("nil section")
	}

	if len(s.Points) < 4 || len(s.Points) > 6 {
		t.Fatalf("expected ~5 crossings, got %d", len(s.Points))
	}
	// Upward crossing of y=0 on the unit circle happens at x = -1.
	for _, pt := range s.Points {
		if math.Abs(pt.X+1) > 1e-3 {
			t.Errorf("crossing at x=%f, want -1", pt.X)
		}
	}
}

func TestStroboscopicSectionSampleCount(t *testing.T) {
	d := flow.NewDuffing()
	period := d.ForcingPeriod()
	s := StroboscopicSection(d, integrators.NewRK4(), d.DefaultState(),
		period, 0, 1, 0.01, 10*period)
	if s == nil {
		t.Fatal("nil section")
	}
	if len(s.Points) < 8 || len(s.Points) > 11 {
		t.Errorf("expected ~10 samples, got %d", len(s.Points))
	}
}

func TestStroboscopicSectionInvalidPeriod(t *testing.T) {
	if s := StroboscopicSection(rotor{}, integrators.NewRK4(), dynamo.State{1, 0}, 0, 0, 1, 0.01, 1); s != nil {
		t.Error("expected nil for zero period")
	}
}

func TestSweepBifurcationRestoresParam(t *testing.T) {
	l := flow.NewLorenz()
	before := l.Params()["rho"]

	pts, err := SweepBifurcation(l, integrators.NewRK4(), "rho", 5, 15, 3, 2,
		dynamo.State{1, 1, 1}, 0.01, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	if l.Params()["rho"] != before {
		t.Errorf("rho not restored: %f", l.Params()["rho"])
	}
}

func TestSweepBifurcationUnknownParam(t *testing.T) {
	_, err := SweepBifurcation(flow.NewLorenz(), integrators.NewRK4(), "zeta", 0, 1, 2, 0,
		dynamo.State{1, 1, 1}, 0.01, 0.1, 0.1)
	if err == nil {
		t.Error("expected error for unknown parameter")
	}
}
