package analysis

import (
	"testing"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
	"github.com/san-kum/chaoslab/internal/integrators"
)

// contracting is x' = -x in each component; lambda = -1 exactly.
type contracting struct{}

func (contracting) Name() string { return "contracting" }
func (contracting) Dim() int     { return 2 }
func (contracting) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{-x[0], -x[1]}
}

func TestLargestLyapunovLorenzChaotic(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	// Canonical parameters: lambda_1 ~= 0.9.
	lambda := LargestLyapunov(flow.NewLorenz(), integrators.NewRK4(),
		dynamo.State{1, 1, 1}, 0.01, 100, 1e-8)

	if lambda < 0.3 {
		t.Errorf("lambda = %f, expected clearly positive on the attractor", lambda)
	}
	if lambda > 2.0 {
		t.Errorf("lambda = %f, far above the known value ~0.9", lambda)
	}
}

func TestLargestLyapunovContracting(t *testing.T) {
	lambda := LargestLyapunov(contracting{}, integrators.NewRK4(),
		dynamo.State{1, 1}, 0.01, 20, 1e-8)

	if lambda > -0.5 {
		t.Errorf("lambda = %f, expected near -1 for pure contraction", lambda)
	}
}

func TestLyapunovSpectrumLength(t *testing.T) {
	spectrum := LyapunovSpectrum(contracting{}, integrators.NewRK4(),
		dynamo.State{1, 1}, 0.01, 5, 1e-8)
	if len(spectrum) != 2 {
		t.Fatalf("spectrum length %d, want 2", len(spectrum))
	}
	for i, l := range spectrum {
		if l > 0 {
			t.Errorf("exponent %d positive for a contracting system: %f", i, l)
		}
	}
}

func TestLargestLyapunovEmptyState(t *testing.T) {
	if l := LargestLyapunov(contracting{}, integrators.NewRK4(), dynamo.State{}, 0.01, 1, 1e-8); l != 0 {
		t.Errorf("expected 0 for empty state, got %f", l)
	}
}
