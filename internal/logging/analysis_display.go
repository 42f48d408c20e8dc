// Package logging handles generation of fingerprint and match reports.
// This file provides console display for single-file fingerprint results.

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/linuxmatters/chromafp/internal/match"
)

// DisplayFingerprintResult outputs a single file's fingerprint summary to
// w, for quick inspection without writing a report file. The CLI's
// fingerprint subcommand does not call it; it prints its own summary box.
func DisplayFingerprintResult(w io.Writer, inputPath string, sampleRate, channels int, durationSecs float64, subfingerprints int) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "FINGERPRINT: %s\n", filepath.Base(inputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "Duration:        %s\n", formatDuration0(durationSecs))
	fmt.Fprintf(w, "Sample Rate:     %d Hz\n", sampleRate)
	fmt.Fprintf(w, "Channels:        %s\n", channelName(channels))
	fmt.Fprintf(w, "Subfingerprints: %d\n", subfingerprints)
}

// DisplayMatchResult outputs a two-file match summary to the console.
func DisplayMatchResult(w io.Writer, pathA, pathB string, matchThreshold float64, segments []match.Segment) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "MATCH: %s vs %s\n", filepath.Base(pathA), filepath.Base(pathB))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	if len(segments) == 0 {
		fmt.Fprintln(w, "No matching segments found.")
		return
	}

	fmt.Fprintf(w, "Segments found: %d (threshold %s)\n\n", len(segments), formatMetric(matchThreshold, 2))
	for i, seg := range segments {
		fmt.Fprintf(w, "  #%d: pos1=%d pos2=%d duration=%d score=%d\n",
			i+1, seg.Pos1, seg.Pos2, seg.Duration, seg.PublicScore())
	}
}

// formatDuration0 formats a duration given in seconds as "Xh Ym Zs" or
// "Ym Zs" or "Z.Xs".
func formatDuration0(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}

	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}
