package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

func TestExtremes(t *testing.T) {
	e := NewExtremes()
	e.Observe(dynamo.State{1, -2}, 0)
	e.Observe(dynamo.State{3, 0}, 0.01)
	e.Observe(dynamo.State{-1, 5}, 0.02)

	if e.Value() != 5 {
		t.Errorf("max abs = %f, want 5", e.Value())
	}

	lo, hi := e.Range(0)
	if lo != -1 || hi != 3 {
		t.Errorf("component 0 range [%f, %f], want [-1, 3]", lo, hi)
	}

	e.Reset()
	if e.Value() != 0 {
		t.Errorf("value after reset = %f", e.Value())
	}
}

func TestVarianceWelford(t *testing.T) {
	v := NewVariance(0)
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		v.Observe(dynamo.State{x}, 0)
	}

	// Sample variance of the classic example set is 32/7.
	if math.Abs(v.Value()-32.0/7.0) > 1e-12 {
		t.Errorf("variance = %f, want %f", v.Value(), 32.0/7.0)
	}
}

func TestVarianceFewSamples(t *testing.T) {
	v := NewVariance(0)
	if v.Value() != 0 {
		t.Error("empty variance should be 0")
	}
	v.Observe(dynamo.State{3}, 0)
	if v.Value() != 0 {
		t.Error("single-sample variance should be 0")
	}
}

func TestVarianceIgnoresMissingComponent(t *testing.T) {
	v := NewVariance(5)
	v.Observe(dynamo.State{1, 2}, 0)
	v.Observe(dynamo.State{3, 4}, 0)
	if v.Value() != 0 {
		t.Error("out-of-range component should contribute nothing")
	}
}

func TestBoundedness(t *testing.T) {
	b := NewBoundedness(10)
	b.Observe(dynamo.State{1, 0}, 0)
	b.Observe(dynamo.State{20, 0}, 0.01)
	b.Observe(dynamo.State{2, 0}, 0.02)
	b.Observe(dynamo.State{3, 0}, 0.03)

	if b.Value() != 0.75 {
		t.Errorf("bounded fraction = %f, want 0.75", b.Value())
	}

	b.Reset()
	if b.Value() != 1.0 {
		t.Errorf("no-sample value = %f, want 1", b.Value())
	}
}
