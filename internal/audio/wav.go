package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// PCM is a decoded mono-or-multichannel interleaved 16-bit PCM stream,
// the collaborator boundary the CORE's Downmix stage expects as input.
// Decoding a real-world audio file (any codec beyond raw WAV, any bitrate)
// is out of scope for the CORE; this is a thin convenience adapter for the
// CLI demo only.
type PCM struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// ReadWAV decodes a PCM WAV file fully into memory.
func ReadWAV(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: %s is not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}

	samples := intBufferToInt16(buf)

	return &PCM{
		Samples:    samples,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}

func intBufferToInt16(buf *audio.IntBuffer) []int16 {
	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	shift := bitDepth - 16
	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if shift > 0 {
			v >>= shift
		} else if shift < 0 {
			v <<= -shift
		}
		out[i] = int16(v)
	}
	return out
}
