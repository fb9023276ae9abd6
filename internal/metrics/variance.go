package metrics

import "github.com/san-kum/chaoslab/internal/dynamo"

// Variance computes the running variance of one state component using
// Welford's algorithm.
type Variance struct {
	component int
	count     int
	mean      float64
	m2        float64
}

func NewVariance(component int) *Variance {
	return &Variance{component: component}
}

func (v *Variance) Name() string { return "variance" }

func (v *Variance) Observe(x dynamo.State, _ float64) {
	if v.component >= len(x) {
		return
	}
	val := x[v.component]

	v.count++
	delta := val - v.mean
	v.mean += delta / float64(v.count)
	v.m2 += delta * (val - v.mean)
}

func (v *Variance) Value() float64 {
	if v.count < 2 {
		return 0
	}
	return v.m2 / float64(v.count-1)
}

func (v *Variance) Reset() {
	v.count = 0
	v.mean = 0
	v.m2 = 0
}
