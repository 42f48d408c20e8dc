package match

import "testing"

func TestGradient(t *testing.T) {
	cases := []struct {
		inp  []float32
		want []float32
	}{
		{nil, nil},
		{[]float32{1.0}, []float32{0.0}},
		{[]float32{1.0, 2.0}, []float32{1.0, 1.0}},
		{[]float32{1.0, 2.0, 4.0}, []float32{1.0, 1.5, 2.0}},
		{[]float32{1.0, 2.0, 4.0, 10.0}, []float32{1.0, 1.5, 4.0, 6.0}},
	}

	for _, c := range cases {
		got := Gradient(c.inp)
		if len(got) != len(c.want) {
			t.Fatalf("Gradient(%v) len = %d, want %d", c.inp, len(got), len(c.want))
		}
		for i := range got {
			if !approxEqual32(float64(got[i]), float64(c.want[i]), 1e-5) {
				t.Fatalf("Gradient(%v)[%d] = %v, want %v", c.inp, i, got[i], c.want[i])
			}
		}
	}
}
