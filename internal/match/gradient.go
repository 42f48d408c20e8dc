package match

// Gradient computes a central-difference approximation of the derivative of
// inp, using forward/backward differences at the two endpoints. The result
// has the same length as inp.
func Gradient(inp []float32) []float32 {
	out := make([]float32, 0, len(inp))
	if len(inp) == 0 {
		return out
	}

	f0 := inp[0]
	if len(inp) == 1 {
		out = append(out, 0)
		return out
	}

	f1 := inp[1]
	out = append(out, f1-f0)

	if len(inp) == 2 {
		out = append(out, f1-f0)
		return out
	}

	f2 := inp[2]
	idx := 3
	for {
		out = append(out, (f2-f0)/2.0)
		if idx >= len(inp) {
			out = append(out, f2-f1)
			break
		}
		next := inp[idx]
		idx++
		f0, f1, f2 = f1, f2, next
	}

	return out
}
