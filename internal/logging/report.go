// Package logging handles generation of fingerprint and match reports.
// This file contains the report writer, saved alongside a fingerprint's
// output file so a run can be inspected after the fact.

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/chromafp/internal/match"
)

// writeSection writes an underlined section header.
func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// ReportData contains all the information needed to generate a fingerprint
// (and, optionally, match) report.
type ReportData struct {
	InputPath       string
	OutputPath      string
	StartTime       time.Time
	EndTime         time.Time
	SampleRate      int
	Channels        int
	DurationSecs    float64
	Subfingerprints int

	// Set when this run also compared against a second fingerprint.
	MatchAgainst   string
	MatchThreshold float64
	Segments       []match.Segment
}

// GenerateReport creates a detailed fingerprint/match report and saves it
// alongside the output file. The report filename is the output path with
// its extension replaced by .log
func GenerateReport(data ReportData) error {
	logPath := strings.TrimSuffix(data.OutputPath, filepath.Ext(data.OutputPath)) + ".log"

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeProcessingSummary(f, data)
	writeFingerprintSummary(f, data)

	if data.MatchAgainst != "" {
		writeMatchTable(f, data)
	}

	return nil
}

func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, strings.Repeat("=", 70))
	fmt.Fprintf(f, "FINGERPRINT REPORT: %s\n", filepath.Base(data.InputPath))
	fmt.Fprintf(f, "Generated: %s\n", data.EndTime.Format(time.RFC3339))
	fmt.Fprintln(f, strings.Repeat("=", 70))
	fmt.Fprintln(f)
}

func writeProcessingSummary(f *os.File, data ReportData) {
	writeSection(f, "SUMMARY")
	fmt.Fprintf(f, "Input:      %s\n", data.InputPath)
	fmt.Fprintf(f, "Sample rate: %d Hz\n", data.SampleRate)
	fmt.Fprintf(f, "Channels:    %s\n", channelName(data.Channels))
	fmt.Fprintf(f, "Duration:    %s\n", formatDuration(time.Duration(data.DurationSecs * float64(time.Second))))
	fmt.Fprintf(f, "Elapsed:     %s\n", formatDuration(data.EndTime.Sub(data.StartTime)))
	fmt.Fprintln(f)
}

func writeFingerprintSummary(f *os.File, data ReportData) {
	writeSection(f, "FINGERPRINT")
	fmt.Fprintf(f, "Subfingerprints: %d\n", data.Subfingerprints)
	fmt.Fprintln(f)
}

func writeMatchTable(f *os.File, data ReportData) {
	writeSection(f, "MATCH")
	fmt.Fprintf(f, "Compared against: %s\n", data.MatchAgainst)
	fmt.Fprintf(f, "Match threshold:  %s\n", formatMetric(data.MatchThreshold, 2))
	fmt.Fprintln(f)

	if len(data.Segments) == 0 {
		fmt.Fprintln(f, "No matching segments found.")
		fmt.Fprintln(f)
		return
	}

	table := NewMetricTable("Pos1 (s)", "Pos2 (s)", "Duration (s)", "Score")
	for i, seg := range data.Segments {
		pos1 := subfingerprintsToSeconds(seg.Pos1)
		pos2 := subfingerprintsToSeconds(seg.Pos2)
		dur := subfingerprintsToSeconds(seg.Duration)
		table.AddRow(
			fmt.Sprintf("Segment %d", i+1),
			[]string{
				formatMetric(pos1, 1),
				formatMetric(pos2, 1),
				formatMetric(dur, 1),
				fmt.Sprintf("%d", seg.PublicScore()),
			},
			"",
			"",
		)
	}

	fmt.Fprint(f, table.String())
	fmt.Fprintln(f)
}

// subfingerprintsToSeconds converts a subfingerprint-row count to seconds
// using the Test2 algorithm's fixed frame step (see fingerprint.Config).
func subfingerprintsToSeconds(rows int) float64 {
	const frameStepSeconds = 1365.0 / 11025.0
	return float64(rows) * frameStepSeconds
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// channelName returns a human-readable channel name
func channelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
