package dsp

import "math"

// hammingWindow holds precomputed Hamming coefficients scaled by a fixed
// factor (1/INT16_MAX for the FFT stage), applied to i16 PCM on the way
// into the transform.
type hammingWindow struct {
	coeffs []float64
}

func newHammingWindow(length int, scale float64) *hammingWindow {
	if length == 0 {
		panic("dsp: hamming window length must be > 0")
	}
	w := make([]float64, length)
	x := float64(length - 1)
	for i := range w {
		w[i] = scale * (0.54 - 0.46*math.Cos(float64(i)*2.0*math.Pi/x))
	}
	return &hammingWindow{coeffs: w}
}

func (w *hammingWindow) apply(in []int16, out []float64) {
	if len(out) < len(in) {
		panic("dsp: hamming window output buffer too small")
	}
	n := len(in)
	if len(w.coeffs) < n {
		n = len(w.coeffs)
	}
	for i := 0; i < n; i++ {
		out[i] = float64(in[i]) * w.coeffs[i]
	}
}
