// Package fingerprint wires the CORE pipeline stages (internal/audio,
// internal/dsp, internal/chroma, internal/classify) into a single Session,
// and re-exports the wire codec and matcher as thin convenience wrappers.
package fingerprint

import (
	"github.com/linuxmatters/chromafp/internal/classify"
)

// defaultSampleRate is the rate every stage past Resample operates at.
const defaultSampleRate = 11025

const (
	defaultFrameSize    = 4096
	defaultFrameOverlap = defaultFrameSize - defaultFrameSize/3
)

// defaultMinFreq and defaultMaxFreq bound the chroma projection's FFT index
// range; these are the values the reference Test2 classifier bank was
// trained against.
const (
	defaultMinFreq = 28
	defaultMaxFreq = 3520
)

const defaultSilenceThreshold = 0.01

// Config configures a Session's pipeline. The zero Config is not usable;
// build one with NewConfig so every unset field gets the Test2 defaults.
type Config struct {
	// SrcSampleRate and SrcChannels describe the PCM the caller will Feed.
	SrcSampleRate uint32
	SrcChannels   int

	// SampleRate is the internal working rate all stages past Resample run
	// at; changing it from defaultSampleRate has not been validated against
	// the trained classifier thresholds and is not recommended.
	SampleRate uint32

	FrameSize    int
	FrameOverlap int

	MinFreq, MaxFreq uint32
	Interpolate      bool

	SilenceThreshold float64

	Classifiers     []classify.Classifier
	MaxFilterWidth  uint32
	FilterCoeffs    []float64
}

// NewConfig returns a Config for the Test2 algorithm, the only algorithm
// this module ships a trained classifier bank for, reading source PCM at
// srcSampleRate with srcChannels interleaved channels.
func NewConfig(srcSampleRate uint32, srcChannels int) Config {
	return Config{
		SrcSampleRate:    srcSampleRate,
		SrcChannels:      srcChannels,
		SampleRate:       defaultSampleRate,
		FrameSize:        defaultFrameSize,
		FrameOverlap:     defaultFrameOverlap,
		MinFreq:          defaultMinFreq,
		MaxFreq:          defaultMaxFreq,
		Interpolate:      false,
		SilenceThreshold: defaultSilenceThreshold,
		Classifiers:      classify.Test2Classifiers,
		MaxFilterWidth:   classify.Test2MaxFilterWidth,
		FilterCoeffs:     append([]float64(nil), chromaFilterCoefficients...),
	}
}

var chromaFilterCoefficients = []float64{0.25, 0.75, 1.0, 0.75, 0.25}
