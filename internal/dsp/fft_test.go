package dsp

import "testing"

func TestFFTEmissionLengthAndNonNegativity(t *testing.T) {
	f := NewFFT(32, 8)

	input := make([]int16, 64)
	for i := range input {
		input[i] = int16(16384)
	}

	var frames [][]float64
	f.Process(input, func(v []float64) {
		frames = append(frames, append([]float64(nil), v...))
	})

	if len(frames) == 0 {
		t.Fatalf("expected at least one emitted frame")
	}
	for _, frame := range frames {
		if len(frame) != 32/2+1 {
			t.Fatalf("frame length = %d, want %d", len(frame), 32/2+1)
		}
		for _, v := range frame {
			if v < 0 {
				t.Fatalf("negative magnitude-squared value %v", v)
			}
		}
	}
}

func TestFFTDCInputConcentratesEnergyAtBinZero(t *testing.T) {
	f := NewFFT(32, 0)

	input := make([]int16, 32)
	for i := range input {
		input[i] = int16(16384)
	}

	var frame []float64
	f.Process(input, func(v []float64) { frame = append([]float64(nil), v...) })

	if len(frame) == 0 {
		t.Fatalf("expected one emitted frame")
	}
	for i := 1; i < len(frame); i++ {
		if frame[i] > frame[0] {
			t.Fatalf("bin %d (%v) exceeds DC bin (%v) for a constant input", i, frame[i], frame[0])
		}
	}
}

func TestFFTDropsPartialTailWindow(t *testing.T) {
	f := NewFFT(32, 8)

	var frames [][]float64
	f.Process(make([]int16, 10), func(v []float64) {
		frames = append(frames, append([]float64(nil), v...))
	})
	f.Finish(func(v []float64) {
		frames = append(frames, append([]float64(nil), v...))
	})

	if len(frames) != 0 {
		t.Fatalf("expected a short tail window to be dropped, got %d frames", len(frames))
	}
}
