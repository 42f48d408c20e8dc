// Package chroma implements the per-frame 12-band chroma projection, a
// temporal FIR smoothing filter across bands, and an in-place L2
// normalization step.
package chroma

import (
	"math"

	"github.com/linuxmatters/chromafp/internal/util"
)

// BandCount is the number of chroma bands (pitch classes).
const BandCount = 12

// Projector folds FFT magnitude-squared spectra onto a 12-band chroma
// vector, optionally splitting each bin's energy between its two nearest
// pitch classes.
type Projector struct {
	interpolate bool
	notes       []uint8
	notesFrac   []float64
	minIndex    uint32
	maxIndex    uint32
	out         []float64
}

// NewProjector builds a Projector for the given frequency range, frame
// length, sample rate, and interpolation mode.
func NewProjector(minFreq, maxFreq, frameLen, sampleRate uint32, interpolate bool) *Projector {
	notes := make([]uint8, frameLen)
	notesFrac := make([]float64, frameLen)

	minIndex := util.FreqToIndex(float64(minFreq), frameLen, sampleRate)
	if minIndex < 1 {
		minIndex = 1
	}
	maxIndex := util.FreqToIndex(float64(maxFreq), frameLen, sampleRate)
	if maxIndex > frameLen/2 {
		maxIndex = frameLen / 2
	}

	for i := minIndex; i < maxIndex; i++ {
		freq := util.IndexToFreq(i, frameLen, sampleRate)
		octave := freqToOctave(freq)
		note := float64(BandCount) * (octave - math.Floor(octave))
		notes[i] = uint8(note)
		notesFrac[i] = note - math.Floor(note)
	}

	return &Projector{
		interpolate: interpolate,
		notes:       notes,
		notesFrac:   notesFrac,
		minIndex:    minIndex,
		maxIndex:    maxIndex,
		out:         make([]float64, BandCount),
	}
}

func (p *Projector) Process(input []float64, emit func([]float64)) {
	if uint32(len(input)) < p.maxIndex {
		panic("chroma: spectrum frame shorter than configured max index")
	}
	for i := range p.out {
		p.out[i] = 0
	}
	for i := p.minIndex; i < p.maxIndex; i++ {
		note := p.notes[i]
		energy := input[i]
		if p.interpolate {
			noteFrac := p.notesFrac[i]
			var note2 uint8
			var a float64
			switch {
			case noteFrac < 0.5:
				note2 = (note + BandCount - 1) % BandCount
				a = 0.5 + noteFrac
			case noteFrac > 0.5:
				note2 = (note + 1) % BandCount
				a = 1.5 - noteFrac
			default:
				note2 = note
				a = 1.0
			}
			p.out[note] += energy * a
			p.out[note2] += energy * (1.0 - a)
		} else {
			p.out[note] += energy
		}
	}
	emit(p.out)
}

func (p *Projector) Finish(emit func([]float64)) {}

func freqToOctave(freq float64) float64 {
	const base = 440.0 / 16.0
	return math.Log(freq/base) / math.Log(2)
}
