package audio

import "testing"

func TestResamplePassthroughWhenRatesEqual(t *testing.T) {
	r := NewResample(11025, 11025)
	input := []int16{100, -200, 300}
	var got []int16
	r.Process(input, func(v []int16) { got = v })
	if len(got) != len(input) {
		t.Fatalf("got %v want %v", got, input)
	}
	for i := range input {
		if got[i] != input[i] {
			t.Fatalf("got %v want %v", got, input)
		}
	}
}

func TestSaturatingInt16(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{40000, 32767},
		{-40000, -32768},
		{1000, 1000},
	}
	for _, c := range cases {
		if got := saturatingInt16(c.in); got != c.want {
			t.Fatalf("saturatingInt16(%v) = %v want %v", c.in, got, c.want)
		}
	}
}
