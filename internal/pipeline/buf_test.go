package pipeline

import "testing"

func TestBufIndirect(t *testing.T) {
	b := NewBuf[int](3)

	var out [][]int
	b.Process([]int{1, 2}, collect(&out))
	if len(out) != 0 {
		t.Fatalf("expected no emission, got %v", out)
	}

	out = nil
	b.Process([]int{3, 4, 5}, collect(&out))
	if !equalChunks(out, [][]int{{1, 2, 3}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Process([]int{6, 7, 8, 9}, collect(&out))
	if !equalChunks(out, [][]int{{4, 5, 6}, {7, 8, 9}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Process([]int{10}, collect(&out))
	if len(out) != 0 {
		t.Fatalf("expected no emission, got %v", out)
	}

	out = nil
	b.Finish(collect(&out))
	if !equalChunks(out, [][]int{{10}}) {
		t.Fatalf("got %v", out)
	}
}

func TestBufDirect(t *testing.T) {
	b := NewBuf[int](3)

	var out [][]int
	b.Process([]int{1, 2, 3}, collect(&out))
	if !equalChunks(out, [][]int{{1, 2, 3}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Process([]int{4, 5, 6, 7}, collect(&out))
	if !equalChunks(out, [][]int{{4, 5, 6}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Process([]int{8, 9}, collect(&out))
	if !equalChunks(out, [][]int{{7, 8, 9}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Process([]int{9, 10, 11, 12, 13, 14}, collect(&out))
	if !equalChunks(out, [][]int{{9, 10, 11}, {12, 13, 14}}) {
		t.Fatalf("got %v", out)
	}

	out = nil
	b.Finish(collect(&out))
	if len(out) != 0 {
		t.Fatalf("expected no emission, got %v", out)
	}
}
