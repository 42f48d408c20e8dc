package audio

import (
	"fmt"

	samplerate "github.com/keereets/go-libsamplerate"
)

// Resample wraps a band-limited sample-rate converter. If source and
// destination rates are equal it passes input through unchanged; otherwise
// it converts via the float domain (i16 -> f32/32768 -> converter -> f32 ->
// i16*32768, saturating) and is stateful across calls, since the converter
// retains its own internal delay line.
type Resample struct {
	conv   *samplerate.Samplerate
	inBuf  []float32
	outBuf []int16
}

// NewResample returns a Resample stage converting from srcRate to dstRate.
// It panics if the underlying converter cannot be constructed, mirroring
// the fatal-precondition treatment of backend misconfiguration elsewhere in
// the pipeline.
func NewResample(srcRate, dstRate uint32) *Resample {
	if srcRate == dstRate {
		return &Resample{}
	}
	conv, err := samplerate.New(samplerate.ConverterTypeSincFastest, 1, float64(dstRate)/float64(srcRate))
	if err != nil {
		panic(fmt.Sprintf("audio: resample converter init failed: %v", err))
	}
	return &Resample{conv: conv}
}

func (r *Resample) Process(input []int16, emit func([]int16)) {
	if r.conv == nil {
		emit(input)
		return
	}

	r.inBuf = r.inBuf[:0]
	for _, v := range input {
		r.inBuf = append(r.inBuf, float32(float64(v)/32768.0))
	}

	res, err := r.conv.Process(r.inBuf, false)
	if err != nil {
		panic(fmt.Sprintf("audio: resample failed: %v", err))
	}

	r.outBuf = r.outBuf[:0]
	for _, v := range res {
		r.outBuf = append(r.outBuf, saturatingInt16(float64(v)*32768.0))
	}

	emit(r.outBuf)
}

func (r *Resample) Finish(emit func([]int16)) {}

func saturatingInt16(v float64) int16 {
	switch {
	case v >= 32767:
		return 32767
	case v <= -32768:
		return -32768
	default:
		return int16(v)
	}
}
