// Package util holds small stateless helpers shared across the
// fingerprinting pipeline and matcher: frequency/index conversion and
// Hamming distance.
package util

import (
	"math"
	"math/bits"
)

// FreqToIndex maps a frequency in Hz to the nearest FFT bin index for a
// real transform of length frameSize sampled at sampleRate.
func FreqToIndex(freq float64, frameSize, sampleRate uint32) uint32 {
	return uint32(math.Round(float64(frameSize) * freq / float64(sampleRate)))
}

// IndexToFreq is the inverse of FreqToIndex.
func IndexToFreq(i, frameSize, sampleRate uint32) float64 {
	return float64(i) * float64(sampleRate) / float64(frameSize)
}

// HammingDistance returns the number of differing bits between a and b.
func HammingDistance(a, b uint32) uint32 {
	return uint32(bits.OnesCount32(a ^ b))
}
