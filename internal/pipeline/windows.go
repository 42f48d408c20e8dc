package pipeline

// Windows emits overlapping length-len slices, stepping by step each time,
// buffering just enough input to slide across call boundaries. Like Buf,
// Finish emits any remaining partial window as-is rather than dropping it
// (the windowing stage never discards tail samples; downstream FFT stages
// choose to ignore a short final window instead).
type Windows[T any] struct {
	length int
	step   int
	buf    []T
	bufPos int
}

// NewWindows returns a Windows stage producing slices of length len,
// stepping by step (step must be <= len).
func NewWindows[T any](length, step int) *Windows[T] {
	if length <= 0 {
		panic("pipeline: Windows length must be > 0")
	}
	if step > length {
		panic("pipeline: Windows step must be <= length")
	}
	return &Windows[T]{
		length: length,
		step:   step,
		buf:    make([]T, 0, length*2),
	}
}

func (w *Windows[T]) Process(input []T, emit func([]T)) {
	for len(input) > 0 {
		if len(w.buf) == 0 {
			for len(input) >= w.length {
				emit(input[:w.length])
				input = input[w.step:]
			}
		}

		canBuf := cap(w.buf) - len(w.buf)
		if canBuf > len(input) {
			canBuf = len(input)
		}
		w.buf = append(w.buf, input[:canBuf]...)
		input = input[canBuf:]

		for len(w.buf)-w.bufPos >= w.length {
			emit(w.buf[w.bufPos : w.bufPos+w.length])
			w.bufPos += w.step
		}

		w.buf = append(w.buf[:0], w.buf[w.bufPos:]...)
		w.bufPos = 0
	}
}

func (w *Windows[T]) Finish(emit func([]T)) {
	if len(w.buf) > 0 {
		emit(w.buf)
	}
}
