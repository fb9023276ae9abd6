package metrics

import "github.com/san-kum/chaoslab/internal/dynamo"

// Boundedness reports the fraction of samples whose norm stayed inside a
// radius. 1.0 means the trajectory never left the ball.
type Boundedness struct {
	radius     float64
	violations int
	samples    int
}

func NewBoundedness(radius float64) *Boundedness {
	return &Boundedness{radius: radius}
}

func (b *Boundedness) Name() string { return "boundedness" }

func (b *Boundedness) Observe(x dynamo.State, _ float64) {
	b.samples++
	if x.Norm() > b.radius {
		b.violations++
	}
}

func (b *Boundedness) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Boundedness) Reset() {
	b.violations = 0
	b.samples = 0
}
