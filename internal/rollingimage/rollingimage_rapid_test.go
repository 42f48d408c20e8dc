package rollingimage

import (
	"testing"

	"pgregory.net/rapid"
)

// naiveArea recomputes area(r1,c1,r2,c2) directly from the retained rows,
// without going through the circular cumulative-sum machinery, as a
// reference to check Area against.
func naiveArea(rows [][]float64, r1, c1, r2, c2 int) float64 {
	var sum float64
	for r := r1; r < r2; r++ {
		for c := c1; c < c2; c++ {
			sum += rows[r][c]
		}
	}
	return sum
}

func TestAreaMatchesNaiveRecomputation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const width = 3
		maxHeight := rapid.IntRange(1, 8).Draw(t, "maxHeight")
		numPushes := rapid.IntRange(0, 20).Draw(t, "numPushes")

		im := New(width, maxHeight)
		var retained [][]float64

		for i := 0; i < numPushes; i++ {
			row := make([]float64, width)
			for c := range row {
				row[c] = rapid.Float64Range(-10, 10).Draw(t, "cell")
			}
			im.Push(row)

			retained = append(retained, row)
			if len(retained) > maxHeight {
				retained = retained[1:]
			}
		}

		h := im.Height()
		if h == 0 {
			return
		}

		r1 := rapid.IntRange(0, h).Draw(t, "r1")
		r2 := rapid.IntRange(r1, h).Draw(t, "r2")
		c1 := rapid.IntRange(0, width).Draw(t, "c1")
		c2 := rapid.IntRange(c1, width).Draw(t, "c2")

		got := im.Area(r1, c1, r2, c2)
		want := naiveArea(retained, r1, c1, r2, c2)

		if diff := got - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("area(%d,%d,%d,%d) = %v want %v", r1, c1, r2, c2, got, want)
		}
	})
}
