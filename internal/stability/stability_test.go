package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
	"github.com/san-kum/chaoslab/internal/integrators"
)

func TestLorenzFixedPointsBelowPitchfork(t *testing.T) {
	points, err := FixedPoints(flow.NewLorenzWith(10, 0.5, 8.0/3.0))
	require.NoError(t, err)
	require.Len(t, points, 1, "only the origin exists for rho < 1")
	assert.InDelta(t, 0.0, points[0].Norm(), 1e-12)
}

func TestLorenzFixedPointsAbovePitchfork(t *testing.T) {
	rho, beta := 28.0, 8.0/3.0
	points, err := FixedPoints(flow.NewLorenzWith(10, rho, beta))
	require.NoError(t, err)
	require.Len(t, points, 3)

	c := math.Sqrt(beta * (rho - 1))
	assert.InDelta(t, c, points[1][0], 1e-9)
	assert.InDelta(t, c, points[1][1], 1e-9)
	assert.InDelta(t, rho-1, points[1][2], 1e-9)
	assert.InDelta(t, -c, points[2][0], 1e-9)
}

func TestLorenzOriginStability(t *testing.T) {
	// rho < 1: the origin is globally attracting.
	reports, err := Analyze(flow.NewLorenzWith(10, 0.5, 8.0/3.0))
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Stable)
	assert.Equal(t, StableNode, reports[0].Kind)

	// rho > 1: the origin becomes a saddle.
	reports, err = Analyze(flow.NewLorenzWith(10, 28, 8.0/3.0))
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.False(t, reports[0].Stable)
	assert.Equal(t, Saddle, reports[0].Kind)
}

func TestLorenzWingStabilityAcrossHopf(t *testing.T) {
	sigma, beta := 10.0, 8.0/3.0

	// Below the Hopf threshold the wing centers are attracting spirals.
	reports, err := Analyze(flow.NewLorenzWith(sigma, 10, beta))
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for _, r := range reports[1:] {
		assert.True(t, r.Stable, "C at %v should attract for rho=10", r.Point)
		assert.Equal(t, StableFocus, r.Kind)
	}

	// At rho=28 they have shed stability.
	reports, err = Analyze(flow.NewLorenzWith(sigma, 28, beta))
	require.NoError(t, err)
	for _, r := range reports[1:] {
		assert.False(t, r.Stable, "C at %v should repel for rho=28", r.Point)
	}
}

func TestHopfRho(t *testing.T) {
	assert.InDelta(t, 24.7368, HopfRho(10, 8.0/3.0), 1e-3)
	assert.True(t, math.IsInf(HopfRho(1, 8.0/3.0), 1), "undefined below sigma = beta + 1")
}

func TestHopfRhoMatchesEigenvalues(t *testing.T) {
	sigma, beta := 10.0, 8.0/3.0
	rhoH := HopfRho(sigma, beta)

	// Just below the threshold C+ attracts, just above it repels.
	below, err := Analyze(flow.NewLorenzWith(sigma, rhoH-0.5, beta))
	require.NoError(t, err)
	assert.True(t, below[1].Stable)

	above, err := Analyze(flow.NewLorenzWith(sigma, rhoH+0.5, beta))
	require.NoError(t, err)
	assert.False(t, above[1].Stable)
}

func TestBranchDiagramPitchfork(t *testing.T) {
	points, err := BranchDiagram(10, 8.0/3.0, 0.5, 1.5, 3, 0)
	require.NoError(t, err)

	// rho = 0.5 and 1.0 contribute one branch each, rho = 1.5 three.
	perRho := map[float64]int{}
	for _, p := range points {
		perRho[p.Rho]++
	}
	assert.Equal(t, 1, perRho[0.5])
	assert.Equal(t, 3, perRho[1.5])
}

func TestClassifyVanDerPolOrigin(t *testing.T) {
	// mu=1: eigenvalues (1 +- i sqrt(3))/2, an unstable focus.
	report, err := Classify(flow.NewVanDerPol(), dynamo.State{0, 0})
	require.NoError(t, err)
	assert.Equal(t, UnstableFocus, report.Kind)
	assert.False(t, report.Stable)
	require.Len(t, report.Eigenvalues, 2)
	assert.InDelta(t, 0.5, real(report.Eigenvalues[0]), 1e-9)
}

func TestNewtonFindsVanDerPolOrigin(t *testing.T) {
	points, err := FixedPoints(flow.NewVanDerPol())
	require.NoError(t, err)
	require.NotEmpty(t, points)
	for _, p := range points {
		assert.InDelta(t, 0.0, p.Norm(), 1e-6, "van der Pol has only the origin")
	}
}

func TestFixedPointsNoJacobian(t *testing.T) {
	_, err := FixedPoints(bare{})
	assert.ErrorIs(t, err, ErrNoJacobian)
}

type bare struct{}

func (bare) Name() string                                  { return "bare" }
func (bare) Dim() int                                      { return 1 }
func (bare) Derive(x dynamo.State, _ float64) dynamo.State { return dynamo.State{-x[0]} }

func TestSeparationGrowthIsPositiveOnAttractor(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	times, logSep := SeparationGrowth(flow.NewLorenz(), integrators.NewRK4(),
		dynamo.State{1, 1, 1}, 1e-9, 0.01, 25)
	require.NotEmpty(t, times)
	require.Equal(t, len(times), len(logSep))

	// Separation grows by orders of magnitude before saturating.
	assert.Greater(t, logSep[len(logSep)-1]-logSep[0], 3.0)
}
