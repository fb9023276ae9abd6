package analysis

// Peak is a local maximum of a sampled time series.
type Peak struct {
	Index int     // sample index of the raw maximum
	Time  float64 // refined time of the maximum
	Value float64 // refined height of the maximum
}

// ReturnMap holds successive-maxima pairs (z_n, z_{n+1}). Lorenz observed
// that plotting consecutive maxima of z(t) against each other collapses the
// attractor onto a nearly one-dimensional tent-shaped curve.
type ReturnMap struct {
	Peaks []Peak
	X, Y  []float64 // X[i] = z_i, Y[i] = z_{i+1}
}

// FindPeaks locates local maxima of series by detecting sign changes of the
// discrete derivative (positive to negative). Each raw maximum is refined by
// fitting a parabola through the three surrounding samples.
//
// times may be nil, in which case the sample index is used as the time.
func FindPeaks(series, times []float64) []Peak {
	if len(series) < 3 {
		return nil
	}

	peaks := make([]Peak, 0)
	for i := 1; i < len(series)-1; i++ {
		dPrev := series[i] - series[i-1]
		dNext := series[i+1] - series[i]
		if dPrev > 0 && dNext <= 0 {
			t, v := refinePeak(series, times, i)
			peaks = append(peaks, Peak{Index: i, Time: t, Value: v})
		}
	}
	return peaks
}

// refinePeak fits y = a u^2 + b u + c through the samples at i-1, i, i+1
// (u in {-1, 0, 1}) and evaluates the vertex. Falls back to the raw sample
// when the parabola degenerates (a >= 0).
func refinePeak(series, times []float64, i int) (float64, float64) {
	y0, y1, y2 := series[i-1], series[i], series[i+1]

	a := (y0 - 2*y1 + y2) / 2
	b := (y2 - y0) / 2

	ti := float64(i)
	dt := 1.0
	if times != nil && i+1 < len(times) {
		ti = times[i]
		dt = times[i+1] - times[i]
	}

	if a >= 0 {
		return ti, y1
	}

	u := -b / (2 * a)
	// Vertex outside the bracketing samples means the fit is untrustworthy.
	if u < -1 || u > 1 {
		return ti, y1
	}

	return ti + u*dt, y1 + a*u*u + b*u
}

// LorenzMap extracts the successive-maxima return map of series.
// Returns nil when fewer than two maxima exist.
func LorenzMap(series, times []float64) *ReturnMap {
	peaks := FindPeaks(series, times)
	if len(peaks) < 2 {
		return nil
	}

	m := &ReturnMap{
		Peaks: peaks,
		X:     make([]float64, len(peaks)-1),
		Y:     make([]float64, len(peaks)-1),
	}
	for i := 0; i < len(peaks)-1; i++ {
		m.X[i] = peaks[i].Value
		m.Y[i] = peaks[i+1].Value
	}
	return m
}
