// Package dsp implements the windowed real-FFT stage: overlapped framing
// of mono PCM followed by a Hamming-windowed real-input transform (gonum's
// complex half-spectrum coefficients), emitted as a squared-magnitude
// half-spectrum of length N/2+1.
package dsp

import (
	"math"

	"gonum.org/v1/gonum/fourier"

	"github.com/linuxmatters/chromafp/internal/pipeline"
)

// FFT composes windowing (frame length, overlap) with the per-window real
// FFT and magnitude-squared assembly. It implements pipeline.Step[int16,
// float64]: windows of N i16 samples in, N/2+1 non-negative float64 power
// values out.
type FFT struct {
	inner pipeline.Step[int16, float64]
}

// NewFFT returns an FFT stage for windows of length len with the given
// overlap (step = len-overlap). len must be > 0 and overlap < len.
func NewFFT(length, overlap int) *FFT {
	if length <= 0 {
		panic("dsp: FFT length must be > 0")
	}
	if overlap >= length {
		panic("dsp: FFT overlap must be < length")
	}
	windows := pipeline.NewWindows[int16](length, length-overlap)
	internal := newInternal(length)
	return &FFT{inner: pipeline.Then[int16, int16, float64](windows, internal)}
}

func (f *FFT) Process(input []int16, emit func([]float64)) { f.inner.Process(input, emit) }
func (f *FFT) Finish(emit func([]float64))                 { f.inner.Finish(emit) }

// internal performs the actual windowed transform on one length-N frame.
type internal struct {
	window *hammingWindow
	fft    *fourier.FFT
	in     []float64
	coef   []complex128
	out    []float64
}

func newInternal(length int) *internal {
	return &internal{
		window: newHammingWindow(length, 1.0/float64(math.MaxInt16)),
		fft:    fourier.NewFFT(length),
		in:     make([]float64, length),
		out:    make([]float64, length/2+1),
	}
}

func (in *internal) Process(input []int16, emit func([]float64)) {
	// Windows.Finish may hand us a short final frame; the FFT stage drops
	// it rather than transform a partial window (see the windowing tail
	// behavior this stage deliberately does not inherit).
	if len(input) != len(in.in) {
		return
	}

	inBuf := in.in[:len(input)]
	in.window.apply(input, inBuf)

	in.coef = in.fft.Coefficients(in.coef, inBuf)

	for i, c := range in.coef {
		re, im := real(c), imag(c)
		in.out[i] = re*re + im*im
	}
	emit(in.out)
}

func (in *internal) Finish(emit func([]float64)) {}
