package fingerprint

import (
	"fmt"

	"github.com/linuxmatters/chromafp/internal/audio"
	"github.com/linuxmatters/chromafp/internal/chroma"
	"github.com/linuxmatters/chromafp/internal/classify"
	"github.com/linuxmatters/chromafp/internal/codec"
	"github.com/linuxmatters/chromafp/internal/dsp"
	"github.com/linuxmatters/chromafp/internal/match"
	"github.com/linuxmatters/chromafp/internal/pipeline"
)

// Session owns one fixed pipeline instance: Downmix -> Resample ->
// windowed FFT -> chroma projection -> temporal filter (then-inplace
// normalize) -> classifier bank. It accumulates the emitted subfingerprint
// sequence across calls to Feed, exposed once-final via Fingerprint.
//
// A Session is scratch state for one recording: construct it, Feed PCM
// blocks as they arrive, Finalize, then read Fingerprint. It is not safe
// for concurrent use and not reusable after Finalize.
type Session struct {
	cfg Config

	pipeline pipeline.Step[int16, uint32]
	out      []uint32
}

// NewSession builds the fixed pipeline described by cfg.
func NewSession(cfg Config) *Session {
	downmix := audio.NewDownmix(cfg.SrcChannels)
	resample := audio.NewResample(cfg.SrcSampleRate, cfg.SampleRate)
	fft := dsp.NewFFT(cfg.FrameSize, cfg.FrameOverlap)
	projector := chroma.NewProjector(cfg.MinFreq, cfg.MaxFreq, uint32(cfg.FrameSize), cfg.SampleRate, cfg.Interpolate)
	temporal := chroma.NewTemporalFilter(cfg.FilterCoeffs)
	normalize := chroma.NewNormalize(cfg.SilenceThreshold)
	bank := classify.NewBank(cfg.Classifiers, chroma.BandCount, cfg.MaxFilterWidth)

	smoothed := pipeline.ThenInplace[float64, float64](temporal, normalize)

	p := pipeline.Then[int16, int16, int16](downmix, resample)
	p2 := pipeline.Then[int16, int16, float64](p, fft)
	p3 := pipeline.Then[int16, float64, float64](p2, projector)
	p4 := pipeline.Then[int16, float64, float64](p3, smoothed)
	p5 := pipeline.Then[int16, float64, uint32](p4, bank)

	return &Session{cfg: cfg, pipeline: p5}
}

// Feed pushes one block of interleaved PCM at the configured source
// rate/channel count through the pipeline. Panics if len(samples) is not a
// multiple of cfg.SrcChannels, mirroring Downmix's own precondition.
func (s *Session) Feed(samples []int16) {
	s.pipeline.Process(samples, func(fp []uint32) {
		s.out = append(s.out, fp...)
	})
}

// Finalize drains finish through every stage in pipeline order, flushing
// any residual subfingerprints. Fingerprint is only meaningful afterward.
func (s *Session) Finalize() {
	s.pipeline.Finish(func(fp []uint32) {
		s.out = append(s.out, fp...)
	})
}

// Fingerprint returns the accumulated subfingerprint sequence.
func (s *Session) Fingerprint() []uint32 {
	return s.out
}

// EncodeFingerprint packs seq into the wire format under version.
func EncodeFingerprint(seq []uint32, version byte) []byte {
	return codec.Encode(seq, version)
}

// DecodeFingerprint is the inverse of EncodeFingerprint.
func DecodeFingerprint(data []byte) (version byte, seq []uint32, err error) {
	version, seq, err = codec.Decode(data)
	if err != nil {
		return 0, nil, fmt.Errorf("fingerprint: decode: %w", err)
	}
	return version, seq, nil
}

// Match aligns fp1 against fp2 using a matcher seeded for reproducible
// segment boundaries, reporting segments scoring under matchThreshold.
func Match(fp1, fp2 []uint32, matchThreshold float64, seed int64) []match.Segment {
	m := match.NewMatcher(matchThreshold, seed)
	return m.Match(fp1, fp2)
}
