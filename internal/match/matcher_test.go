package match

import "testing"

func sequentialFingerprint(n int) []uint32 {
	fp := make([]uint32, n)
	for i := range fp {
		// alignStrip keeps the top 12 bits; shifting i into them gives each
		// position a distinct alignment hash so only the true alignment
		// produces a histogram peak.
		fp[i] = uint32(i) << 20
	}
	return fp
}

func TestMatchIdenticalSequencesYieldsOneLowScoreSegment(t *testing.T) {
	fp := sequentialFingerprint(50)
	m := NewMatcher(10.0, 1)

	segments := m.Match(fp, fp)
	if len(segments) != 1 {
		t.Fatalf("expected exactly one segment, got %d: %+v", len(segments), segments)
	}
	seg := segments[0]
	if seg.Duration != len(fp) {
		t.Fatalf("segment duration = %d, want %d", seg.Duration, len(fp))
	}
	if seg.Score >= 0.01 {
		t.Fatalf("segment score = %v, want near zero for identical input", seg.Score)
	}
}

func TestMatchUnrelatedSequencesYieldsNoSegments(t *testing.T) {
	fp1 := sequentialFingerprint(20)
	fp2 := make([]uint32, 20)
	for i := range fp2 {
		fp2[i] = uint32(i+1000) << 20
	}

	m := NewMatcher(10.0, 1)
	segments := m.Match(fp1, fp2)
	if segments != nil {
		t.Fatalf("expected no segments for unrelated fingerprints, got %+v", segments)
	}
}

func TestSegmentPublicScoreRounds(t *testing.T) {
	s := Segment{Score: 1.234}
	if got := s.PublicScore(); got != 123 {
		t.Fatalf("PublicScore() = %d, want 123", got)
	}
}

func TestSegmentMergeWeightsByDuration(t *testing.T) {
	a := Segment{Pos1: 0, Pos2: 0, Duration: 2, Score: 1.0}
	b := Segment{Pos1: 2, Pos2: 2, Duration: 2, Score: 3.0}
	merged := a.merge(b)
	if merged.Duration != 4 {
		t.Fatalf("duration = %d, want 4", merged.Duration)
	}
	if !approxEqual32(merged.Score, 2.0, 1e-9) {
		t.Fatalf("score = %v, want 2.0", merged.Score)
	}
}
