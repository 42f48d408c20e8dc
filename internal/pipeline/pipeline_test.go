package pipeline

import "testing"

// testStep mirrors the fixed-capacity test double used to exercise Then
// composition: it buffers input up to a fixed capacity and emits full
// groups, echoing input unchanged.
type testStep struct {
	buf      []int
	cap      int
	finished bool
}

func newTestStep(capacity int) *testStep {
	return &testStep{buf: make([]int, 0, capacity), cap: capacity}
}

func (s *testStep) Process(input []int, emit func([]int)) {
	for len(input) > 0 {
		canBuf := s.cap - len(s.buf)
		if canBuf > len(input) {
			canBuf = len(input)
		}
		s.buf = append(s.buf, input[:canBuf]...)
		if len(s.buf) == s.cap {
			emit(s.buf)
			s.buf = s.buf[:0]
		}
		input = input[canBuf:]
	}
}

func (s *testStep) Finish(emit func([]int)) {
	if s.finished {
		panic("testStep finished twice")
	}
	if len(s.buf) > 0 {
		emit(s.buf)
	}
	s.finished = true
}

type testInplace struct{}

func (testInplace) Process(inOut []int) {
	for i := range inOut {
		inOut[i]++
	}
}

func collect(dst *[][]int) func([]int) {
	return func(v []int) {
		cp := append([]int(nil), v...)
		*dst = append(*dst, cp)
	}
}

func TestThen(t *testing.T) {
	pl := Then[int, int, int](Then[int, int, int](newTestStep(3), newTestStep(2)), newTestStep(3))

	var out [][]int
	pl.Process([]int{1, 2, 3, 4}, collect(&out))
	if len(out) != 0 {
		t.Fatalf("expected no emissions yet, got %v", out)
	}

	pl.Process([]int{5, 6}, collect(&out))
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}

	out = nil
	pl.Process([]int{7, 8, 9, 10}, collect(&out))
	if len(out) != 0 {
		t.Fatalf("expected no emissions, got %v", out)
	}

	out = nil
	pl.Finish(collect(&out))
	want = [][]int{{7, 8, 9}, {10}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}
}

func TestThenInplace(t *testing.T) {
	pl := ThenInplace[int, int](newTestStep(3), testInplace{})

	var out [][]int
	pl.Process([]int{1, 2, 3, 4}, collect(&out))
	want := [][]int{{2, 3, 4}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}

	out = nil
	pl.Finish(collect(&out))
	want = [][]int{{5}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}
}

func TestInplaceThenInplace(t *testing.T) {
	inner := ThenInplace[int, int](newTestStep(3), InplaceThenInplace[int](testInplace{}, testInplace{}))
	pl := ThenInplace[int, int](inner, testInplace{})

	var out [][]int
	pl.Process([]int{1, 2, 3, 4}, collect(&out))
	want := [][]int{{4, 5, 6}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}

	out = nil
	pl.Finish(collect(&out))
	want = [][]int{{7}}
	if !equalChunks(out, want) {
		t.Fatalf("got %v want %v", out, want)
	}
}

func equalChunks(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
