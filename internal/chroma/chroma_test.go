package chroma

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestProjectorBandAssignment(t *testing.T) {
	cases := []struct {
		name                           string
		minFreq, maxFreq, frameLen, sr uint32
		interpolate                    bool
		frameIndex                     int
		frameValue                     float64
		want                           [BandCount]float64
	}{
		{
			name: "A", minFreq: 10, maxFreq: 510, frameLen: 256, sr: 1000,
			frameIndex: 113, frameValue: 1.0,
			want: [BandCount]float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "G#", minFreq: 10, maxFreq: 510, frameLen: 256, sr: 1000,
			frameIndex: 112, frameValue: 1.0,
			want: [BandCount]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			name: "interpolated B", minFreq: 10, maxFreq: 510, frameLen: 256, sr: 1000,
			interpolate: true, frameIndex: 64, frameValue: 1.0,
			want: [BandCount]float64{0, 0.286905, 0.713095, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "interpolated A", minFreq: 10, maxFreq: 510, frameLen: 256, sr: 1000,
			interpolate: true, frameIndex: 113, frameValue: 1.0,
			want: [BandCount]float64{0.555242, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.444758},
		},
		{
			name: "interpolated G#", minFreq: 10, maxFreq: 510, frameLen: 256, sr: 1000,
			interpolate: true, frameIndex: 112, frameValue: 1.0,
			want: [BandCount]float64{0.401354, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0.598646},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjector(c.minFreq, c.maxFreq, c.frameLen, c.sr, c.interpolate)
			frame := make([]float64, 128)
			frame[c.frameIndex] = c.frameValue

			var out []float64
			p.Process(frame, func(v []float64) { out = v })

			for i, want := range c.want {
				if !approxEqual(out[i], want, 1e-4) {
					t.Fatalf("band %d = %v, want %v", i, out[i], want)
				}
			}
		})
	}
}

func TestTemporalFilter(t *testing.T) {
	cases := []struct {
		name   string
		coefs  []float64
		inputs [][BandCount]float64
		want   [4]float64 // (row0,col0), (row0,col1), (row1,col0), (row1,col1)
	}{
		{
			name:  "blur2",
			coefs: []float64{0.5, 0.5},
			inputs: [][BandCount]float64{
				{0, 5}, {1, 6}, {2, 7},
			},
			want: [4]float64{0.5, 5.5, 1.5, 6.5},
		},
		{
			name:  "blur3",
			coefs: []float64{0.5, 0.7, 0.5},
			inputs: [][BandCount]float64{
				{0, 5}, {1, 6}, {2, 7}, {3, 8},
			},
			want: [4]float64{1.7, 10.2, 3.4, 11.9},
		},
		{
			name:  "diff",
			coefs: []float64{1.0, -1.0},
			inputs: [][BandCount]float64{
				{0, 5}, {1, 6}, {2, 7},
			},
			want: [4]float64{-1, -1, -1, -1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewTemporalFilter(c.coefs)
			var outputs [][BandCount]float64
			for _, in := range c.inputs {
				row := in
				f.Process(row[:], func(v []float64) {
					var cp [BandCount]float64
					copy(cp[:], v)
					outputs = append(outputs, cp)
				})
			}

			points := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
			for i, p := range points {
				got := outputs[p[0]][p[1]]
				if !approxEqual(got, c.want[i], 1e-5) {
					t.Fatalf("point %v = %v, want %v", p, got, c.want[i])
				}
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("euclidian norm", func(t *testing.T) {
		if got := euclidianNorm([]float64{0.1, 0.2, 0.4, 1.0}); got != 1.1 {
			t.Fatalf("got %v want 1.1", got)
		}
	})

	t.Run("normal case", func(t *testing.T) {
		buf := []float64{0.1, 0.2, 0.4, 1.0}
		want := []float64{0.090909, 0.181818, 0.363636, 0.909091}
		NewNormalize(0.01).Process(buf)
		for i, w := range want {
			if !approxEqual(buf[i], w, 1e-5) {
				t.Fatalf("buf[%d] = %v want %v", i, buf[i], w)
			}
		}
	})

	t.Run("near zero", func(t *testing.T) {
		buf := []float64{0.0, 0.001, 0.002, 0.003}
		NewNormalize(0.01).Process(buf)
		for _, v := range buf {
			if v != 0 {
				t.Fatalf("expected zeroed buffer, got %v", buf)
			}
		}
	})

	t.Run("zero", func(t *testing.T) {
		buf := []float64{0, 0, 0, 0}
		NewNormalize(0.01).Process(buf)
		for _, v := range buf {
			if v != 0 {
				t.Fatalf("expected zeroed buffer, got %v", buf)
			}
		}
	})
}
