package metrics

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// Extremes tracks the per-component range of a trajectory. Value reports
// the largest |x| seen, a quick divergence indicator.
type Extremes struct {
	min, max []float64
	seen     bool
}

func NewExtremes() *Extremes {
	return &Extremes{}
}

func (e *Extremes) Name() string { return "max_abs" }

func (e *Extremes) Observe(x dynamo.State, _ float64) {
	if len(e.min) != len(x) {
		e.min = make([]float64, len(x))
		e.max = make([]float64, len(x))
		e.seen = false
	}
	if !e.seen {
		copy(e.min, x)
		copy(e.max, x)
		e.seen = true
		return
	}
	for i, v := range x {
		if v < e.min[i] {
			e.min[i] = v
		}
		if v > e.max[i] {
			e.max[i] = v
		}
	}
}

func (e *Extremes) Value() float64 {
	out := 0.0
	for i := range e.min {
		out = math.Max(out, math.Max(math.Abs(e.min[i]), math.Abs(e.max[i])))
	}
	return out
}

func (e *Extremes) Reset() {
	e.min = nil
	e.max = nil
	e.seen = false
}

// Range returns the observed [min, max] of component i.
func (e *Extremes) Range(i int) (float64, float64) {
	if i >= len(e.min) {
		return 0, 0
	}
	return e.min[i], e.max[i]
}
