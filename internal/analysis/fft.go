package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform via radix-2 Cooley-Tukey.
// The input length must be a power of 2; use [PadPow2] first.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of the first half of the FFT.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// PadPow2 zero-pads data to the next power-of-2 length.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// Autocorrelation computes the normalized autocorrelation up to maxLag.
func Autocorrelation(data []float64, maxLag int) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	var variance float64
	for _, v := range data {
		d := v - mean
		variance += d * d
	}
	if variance == 0 {
		return make([]float64, maxLag+1)
	}

	ac := make([]float64, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		sum := 0.0
		for i := 0; i < n-lag; i++ {
			sum += (data[i] - mean) * (data[i+lag] - mean)
		}
		ac[lag] = sum / variance
	}
	return ac
}
