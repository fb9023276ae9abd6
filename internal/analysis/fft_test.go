package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumSinglePeak(t *testing.T) {
	n := 256
	data := make([]float64, n)
	for i := range data {
		// 8 full cycles over the window puts the peak at bin 8.
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)

	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if best != 8 {
		t.Errorf("dominant bin %d, want 8", best)
	}
}

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	fft := FFT(data)

	if math.Abs(real(fft[0])-4) > 1e-12 {
		t.Errorf("DC bin = %v, want 4", fft[0])
	}
	for i := 1; i < len(fft); i++ {
		if math.Hypot(real(fft[i]), imag(fft[i])) > 1e-12 {
			t.Errorf("bin %d nonzero for constant input: %v", i, fft[i])
		}
	}
}

func TestPadPow2(t *testing.T) {
	padded := PadPow2(make([]float64, 100))
	if len(padded) != 128 {
		t.Errorf("padded to %d, want 128", len(padded))
	}

	padded = PadPow2(make([]float64, 64))
	if len(padded) != 64 {
		t.Errorf("power-of-2 input resized to %d", len(padded))
	}
}

func TestAutocorrelationPeriodicSignal(t *testing.T) {
	n := 400
	period := 40
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}

	ac := Autocorrelation(data, period)

	if math.Abs(ac[0]-1) > 1e-12 {
		t.Errorf("zero-lag autocorrelation %f, want 1", ac[0])
	}
	// Strong anticorrelation at half period, recovery near full period.
	if ac[period/2] > -0.8 {
		t.Errorf("half-period autocorrelation %f, expected near -1", ac[period/2])
	}
	if ac[period] < 0.8 {
		t.Errorf("full-period autocorrelation %f, expected near 1", ac[period])
	}
}

func TestAutocorrelationEdgeCases(t *testing.T) {
	if ac := Autocorrelation(nil, 10); ac != nil {
		t.Errorf("expected nil for empty input, got %v", ac)
	}

	// Zero variance yields all zeros rather than NaN.
	ac := Autocorrelation([]float64{5, 5, 5, 5}, 2)
	for lag, v := range ac {
		if v != 0 {
			t.Errorf("lag %d = %f for constant input", lag, v)
		}
	}
}
