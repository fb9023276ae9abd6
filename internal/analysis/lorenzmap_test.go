package analysis

import (
	"math"
	"testing"
)

func TestFindPeaksSinusoid(t *testing.T) {
	n := 1000
	dt := 0.01
	series := make([]float64, n)
	times := make([]float64, n)
	for i := range series {
		times[i] = float64(i) * dt
		series[i] = math.Sin(2 * math.Pi * times[i]) // period 1, maxima at 0.25, 1.25, ...
	}

	peaks := FindPeaks(series, times)
	if len(peaks) != 10 {
		t.Fatalf("expected 10 peaks, got %d", len(peaks))
	}

	for i, p := range peaks {
		want := 0.25 + float64(i)
		if math.Abs(p.Time-want) > dt {
			t.Errorf("peak %d at t=%f, want %f", i, p.Time, want)
		}
		// Quadratic refinement should land much closer to 1 than the samples.
		if math.Abs(p.Value-1.0) > 1e-3 {
			t.Errorf("peak %d value %f, want ~1", i, p.Value)
		}
	}
}

func TestFindPeaksRefinementBeatsRawSample(t *testing.T) {
	// Sample a parabola so the true maximum falls between grid points.
	series := []float64{0, 0.84, 0.99, 0.91, 0.4}
	peaks := FindPeaks(series, nil)
	if len(peaks) != 1 {
		t.Fatalf("expected 1 peak, got %d", len(peaks))
	}
	if peaks[0].Value < series[2] {
		t.Errorf("refined value %f below raw sample %f", peaks[0].Value, series[2])
	}
}

func TestFindPeaksTooShort(t *testing.T) {
	if p := FindPeaks([]float64{1, 2}, nil); p != nil {
		t.Errorf("expected nil for short series, got %v", p)
	}
}

func TestFindPeaksMonotone(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	if p := FindPeaks(series, nil); len(p) != 0 {
		t.Errorf("monotone series has no maxima, got %v", p)
	}
}

func TestFindPeaksPlateau(t *testing.T) {
	// Flat top: rise then zero slope counts as a single maximum.
	series := []float64{0, 1, 2, 2, 1, 0}
	p := FindPeaks(series, nil)
	if len(p) != 1 {
		t.Fatalf("expected 1 peak on plateau, got %d", len(p))
	}
	if p[0].Index != 2 {
		t.Errorf("peak at index %d, want 2", p[0].Index)
	}
}

func TestLorenzMapPairsConsecutiveMaxima(t *testing.T) {
	// Alternate between two peak heights.
	series := make([]float64, 0, 40)
	for i := 0; i < 5; i++ {
		series = append(series, 0, 3, 0, 0, 5, 0)
	}

	m := LorenzMap(series, nil)
	if m == nil {
		t.Fatal("expected a return map")
	}
	if len(m.X) != len(m.Peaks)-1 {
		t.Fatalf("pair count %d for %d peaks", len(m.X), len(m.Peaks))
	}
	for i := range m.X {
		if m.Y[i] != m.Peaks[i+1].Value || m.X[i] != m.Peaks[i].Value {
			t.Errorf("pair %d does not link consecutive maxima", i)
		}
	}
}

func TestLorenzMapTooFewPeaks(t *testing.T) {
	if m := LorenzMap([]float64{0, 1, 0}, nil); m != nil {
		t.Errorf("expected nil with a single peak, got %v", m)
	}
}
