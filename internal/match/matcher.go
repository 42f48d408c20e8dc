// Package match aligns two fingerprint sequences and reports the segments
// where they agree closely enough to call a match.
package match

import (
	"math/rand"
	"sort"

	"github.com/linuxmatters/chromafp/internal/util"
)

const (
	alignBits  = 12
	hashShift  = 32 - alignBits
	hashMask   = uint32((1<<alignBits)-1) << hashShift
	offsetMask = uint32(1<<(32-alignBits-1)) - 1
	// sourceMask marks which of the two sequences an alignment-hash entry
	// came from. It is asymmetric by construction: every fp1 entry has the
	// bit clear and every fp2 entry has it set, so buildHistogram only ever
	// needs to test fp2 entries once it finds an fp1 entry to anchor on.
	sourceMask   = uint32(1) << (32 - alignBits - 1)
	lowFieldMask = offsetMask | sourceMask
)

// Segment is one aligned, close-enough region between two fingerprint
// sequences. Score is the mean Hamming distance per subfingerprint over the
// segment; lower is a closer match.
type Segment struct {
	Pos1, Pos2 int
	Duration   int
	Score      float64
}

// PublicScore rescales Score into the rounded integer form used when
// reporting a match externally.
func (s Segment) PublicScore() uint32 {
	return uint32(s.Score*100.0 + 0.5)
}

func (s Segment) merge(o Segment) Segment {
	duration := s.Duration + o.Duration
	score := (s.Score*float64(s.Duration) + o.Score*float64(o.Duration)) / float64(duration)
	return Segment{Pos1: s.Pos1, Pos2: s.Pos2, Duration: duration, Score: score}
}

// Matcher holds scratch buffers reused across Match calls and the RNG used
// to dither Hamming-distance ties before peak-finding. State is reset at
// the start of every call; Matcher is not safe for concurrent use.
type Matcher struct {
	// MatchThreshold is the maximum mean Hamming distance (in raw popcount
	// units, 0..32) a segment may have and still be reported.
	MatchThreshold float64

	rng *rand.Rand

	offsets   []uint32
	histogram []uint32
}

// NewMatcher returns a Matcher with the given score threshold. seed drives
// the tie-breaking dither added to Hamming distances before smoothing;
// pinning it makes Match's segment boundaries reproducible in tests. Callers
// wanting non-deterministic behavior across runs should derive seed from
// the current time.
func NewMatcher(matchThreshold float64, seed int64) *Matcher {
	return &Matcher{
		MatchThreshold: matchThreshold,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Match aligns fp1 against fp2 by histogramming alignment-hash offset
// differences, then segments the best-aligned region by Gaussian-smoothed
// gradient peaks in the Hamming-distance series. Returns nil if either
// sequence is too long to pack into the offset encoding, or no alignment
// candidate clears a histogram count of 1.
func (m *Matcher) Match(fp1, fp2 []uint32) []Segment {
	if len(fp1)+1 >= int(offsetMask) || len(fp2)+1 >= int(offsetMask) {
		return nil
	}

	m.buildOffsets(fp1, fp2)
	m.buildHistogram(fp1, fp2)

	diff, ok := m.bestAlignment()
	if !ok {
		return nil
	}

	offsetDiff := int(diff) - len(fp2)
	offset1 := maxInt(offsetDiff, 0)
	offset2 := maxInt(-offsetDiff, 0)
	length := minInt(len(fp1)-offset1, len(fp2)-offset2)
	if length <= 0 {
		return nil
	}

	bitCounts := make([]float32, length)
	for i := 0; i < length; i++ {
		d := util.HammingDistance(fp1[offset1+i], fp2[offset2+i])
		bitCounts[i] = float32(d) + float32(m.rng.Float64()*0.001)
	}

	gf := NewGaussianFilter(8.0, 3)
	smoothed := gf.Apply(bitCounts)

	grad := Gradient(smoothed)
	for i, g := range grad {
		if g < 0 {
			grad[i] = -g
		}
	}
	absGrad := grad

	var peaks []int
	for i := 1; i < len(absGrad)-1; i++ {
		g := absGrad[i]
		if g > 0.15 && g >= absGrad[i-1] && g >= absGrad[i+1] {
			if len(peaks) == 0 || peaks[len(peaks)-1]+1 < i {
				peaks = append(peaks, i)
			}
		}
	}
	peaks = append(peaks, length)

	var segments []Segment
	begin := 0
	for _, end := range peaks {
		duration := end - begin
		if duration <= 0 {
			begin = end
			continue
		}
		var sum float32
		for _, v := range bitCounts[begin:end] {
			sum += v
		}
		score := float64(sum) / float64(duration)
		if score < m.MatchThreshold {
			seg := Segment{Pos1: offset1 + begin, Pos2: offset2 + begin, Duration: duration, Score: score}
			added := false
			if n := len(segments); n > 0 {
				last := segments[n-1]
				if abs64(last.Score-score) < 0.7 {
					segments[n-1] = last.merge(seg)
					added = true
				}
			}
			if !added {
				segments = append(segments, seg)
			}
		}
		begin = end
	}

	return segments
}

func (m *Matcher) buildOffsets(fp1, fp2 []uint32) {
	m.offsets = m.offsets[:0]
	for i, v := range fp1 {
		m.offsets = append(m.offsets, packAlignEntry(v, uint32(i), 0))
	}
	for i, v := range fp2 {
		m.offsets = append(m.offsets, packAlignEntry(v, uint32(i), 1))
	}
	sort.Slice(m.offsets, func(i, j int) bool { return m.offsets[i] < m.offsets[j] })
}

func packAlignEntry(v uint32, offset uint32, source uint32) uint32 {
	entry := (alignStrip(v) << hashShift) | (offset & offsetMask)
	if source != 0 {
		entry |= sourceMask
	}
	return entry
}

func alignStrip(v uint32) uint32 { return v >> (32 - alignBits) }

func (m *Matcher) buildHistogram(fp1, fp2 []uint32) {
	m.histogram = make([]uint32, len(fp1)+len(fp2))
	for i := 0; i < len(m.offsets); i++ {
		v := m.offsets[i]
		if v&sourceMask != 0 {
			// entries from fp2 never anchor a scan; they're only ever the
			// forward-scanned partner of an fp1 entry sharing its hash.
			continue
		}
		hash := v & hashMask
		offset1 := v & offsetMask

		for j := i + 1; j < len(m.offsets); j++ {
			v2 := m.offsets[j]
			if v2&hashMask != hash {
				break
			}
			if v2&sourceMask == 0 {
				continue
			}
			offset2 := v2 & offsetMask
			diff := int(offset1) + len(fp2) - int(offset2)
			m.histogram[diff]++
		}
	}
}

func (m *Matcher) bestAlignment() (uint32, bool) {
	bestCount := uint32(1)
	bestIdx := -1
	for i, count := range m.histogram {
		if count <= 1 {
			continue
		}
		leftOK := i == 0 || m.histogram[i-1] <= count
		rightOK := i == len(m.histogram)-1 || m.histogram[i+1] <= count
		if !leftOK || !rightOK {
			continue
		}
		if count > bestCount {
			bestCount = count
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	return uint32(bestIdx), true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
