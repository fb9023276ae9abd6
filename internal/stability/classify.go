package stability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// Kind is the qualitative type of an equilibrium.
type Kind int

const (
	StableNode Kind = iota
	StableFocus
	Saddle
	UnstableNode
	UnstableFocus
	Center
)

func (k Kind) String() string {
	switch k {
	case StableNode:
		return "stable node"
	case StableFocus:
		return "stable focus"
	case Saddle:
		return "saddle"
	case UnstableNode:
		return "unstable node"
	case UnstableFocus:
		return "unstable focus"
	default:
		return "center/marginal"
	}
}

// Report is the stability analysis of one equilibrium.
type Report struct {
	Point       dynamo.State
	Eigenvalues []complex128
	Kind        Kind
	Stable      bool
}

const realPartTol = 1e-9

// Classify evaluates the Jacobian of sys at x and classifies the
// equilibrium by its eigenvalues.
func Classify(sys dynamo.System, x dynamo.State) (*Report, error) {
	jac, ok := sys.(dynamo.Jacobian)
	if !ok {
		return nil, ErrNoJacobian
	}

	n := sys.Dim()
	j := jac.Jacobian(x)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a.Set(i, k, j[i][k])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, fmt.Errorf("stability: eigenvalue factorization failed at %v", x)
	}

	values := eig.Values(nil)

	return &Report{
		Point:       x,
		Eigenvalues: values,
		Kind:        classifyEigenvalues(values),
		Stable:      allNegativeReal(values),
	}, nil
}

// Analyze runs Classify over every fixed point of sys.
func Analyze(sys dynamo.System) ([]*Report, error) {
	points, err := FixedPoints(sys)
	if err != nil {
		return nil, err
	}

	reports := make([]*Report, 0, len(points))
	for _, p := range points {
		r, err := Classify(sys, p)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func classifyEigenvalues(values []complex128) Kind {
	pos, neg, zero := 0, 0, 0
	complexPair := false

	for _, v := range values {
		if math.Abs(imag(v)) > realPartTol {
			complexPair = true
		}
		switch {
		case real(v) > realPartTol:
			pos++
		case real(v) < -realPartTol:
			neg++
		default:
			zero++
		}
	}

	switch {
	case zero > 0 && pos == 0:
		return Center
	case pos > 0 && neg > 0:
		return Saddle
	case pos > 0 && complexPair:
		return UnstableFocus
	case pos > 0:
		return UnstableNode
	case complexPair:
		return StableFocus
	default:
		return StableNode
	}
}

func allNegativeReal(values []complex128) bool {
	for _, v := range values {
		if real(v) >= -realPartTol {
			return false
		}
	}
	return true
}
