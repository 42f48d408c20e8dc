package chroma

// TemporalFilter applies a static FIR across the last len(coeffs) chroma
// rows, independently per band, via a circular buffer. No emission occurs
// until len(coeffs) rows have been buffered (warm-up); finish emits
// nothing residual.
type TemporalFilter struct {
	coeffs   []float64
	buf      [][]float64
	bufPos   int
	bufReady int
	out      []float64
}

// NewTemporalFilter returns a FIR filter stage with the given coefficients.
func NewTemporalFilter(coeffs []float64) *TemporalFilter {
	buf := make([][]float64, len(coeffs))
	for i := range buf {
		buf[i] = make([]float64, BandCount)
	}
	return &TemporalFilter{
		coeffs:   coeffs,
		buf:      buf,
		bufReady: 1,
		out:      make([]float64, BandCount),
	}
}

func (f *TemporalFilter) Process(input []float64, emit func([]float64)) {
	n := len(f.buf)
	copy(f.buf[f.bufPos], input)
	f.bufPos = (f.bufPos + 1) % n

	if f.bufReady == n {
		for i := range f.out {
			f.out[i] = 0
		}
		for i := 0; i < BandCount; i++ {
			for j, coef := range f.coeffs {
				f.out[i] += f.buf[(f.bufPos+j)%n][i] * coef
			}
		}
		emit(f.out)
	} else {
		f.bufReady++
	}
}

func (f *TemporalFilter) Finish(emit func([]float64)) {}
