package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#A40000") // chromafp red
	accentColor    = lipgloss.Color("#FFA500") // Orange/gold
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFFF00") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold red
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginTop(1).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	banner := TitleStyle.Render("chromafp")
	subtitle := SubtitleStyle.Render("Acoustic audio fingerprinting and matching")
	fmt.Println(banner)
	fmt.Println(subtitle)
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("chromafp"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintFingerprintSummary prints a fingerprinting run's outcome in a box.
func PrintFingerprintSummary(file string, duration time.Duration, subfingerprints int) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Fingerprint Complete!"))
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("File:            "))
	b.WriteString(ValueStyle.Render(file))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Audio duration:  "))
	b.WriteString(ValueStyle.Render(FormatDuration(duration)))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Subfingerprints: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", subfingerprints)))
	b.WriteString("\n")

	PrintBox(b.String())
}

// PrintMatchSummary prints a match run's outcome in a box.
func PrintMatchSummary(fileA, fileB string, segments int, bestScore uint32) {
	var b strings.Builder

	if segments == 0 {
		b.WriteString(ErrorStyle.Render("✗ No match found"))
	} else {
		b.WriteString(SuccessStyle.Render("✓ Match found"))
	}
	b.WriteString("\n\n")

	b.WriteString(KeyStyle.Render("A:        "))
	b.WriteString(ValueStyle.Render(fileA))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("B:        "))
	b.WriteString(ValueStyle.Render(fileB))
	b.WriteString("\n")

	b.WriteString(KeyStyle.Render("Segments: "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", segments)))
	b.WriteString("\n")

	if segments > 0 {
		b.WriteString(KeyStyle.Render("Best score: "))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%d", bestScore)))
		b.WriteString("\n")
	}

	PrintBox(b.String())
}
