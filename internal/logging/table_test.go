package logging

import (
	"math"
	"strings"
	"testing"
)

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"zero", 0.0, 2, "0.00"},
		{"positive", 3.14159, 2, "3.14"},
		{"negative", -16.5, 1, "-16.5"},
		{"large", 12345.6789, 2, "12345.68"},
		{"small_normal", 0.001, 3, "0.001"},
		{"very_small_scientific", 0.00001, 2, "1.00e-05"},
		{"very_small_negative", -0.00001, 2, "-1.00e-05"},
		{"nan", math.NaN(), 2, MissingValue},
		{"positive_inf", math.Inf(1), 2, MissingValue},
		{"negative_inf", math.Inf(-1), 2, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetric(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetric(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricSigned(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{"positive", 2.5, 1, "+2.5"},
		{"negative", -1.2, 1, "-1.2"},
		{"zero", 0.0, 1, "+0.0"},
		{"nan", math.NaN(), 1, MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetricSigned(tt.value, tt.decimals)
			if got != tt.want {
				t.Errorf("formatMetricSigned(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatMetricWithUnit(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		unit     string
		want     string
	}{
		{"with unit", 4.5, 1, "s", "4.5 s"},
		{"no unit", 4.5, 1, "", "4.5"},
		{"missing value keeps no unit", math.NaN(), 1, "s", MissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMetricWithUnit(tt.value, tt.decimals, tt.unit)
			if got != tt.want {
				t.Errorf("formatMetricWithUnit(%v, %d, %q) = %q, want %q", tt.value, tt.decimals, tt.unit, got, tt.want)
			}
		})
	}
}

func TestMetricTableEmpty(t *testing.T) {
	table := NewMetricTable("A", "B")
	if got := table.String(); got != "" {
		t.Errorf("empty table String() = %q, want \"\"", got)
	}
}

func TestMetricTableRendersRowsAndUnit(t *testing.T) {
	table := NewMetricTable("Segment 1", "Segment 2")
	table.AddRow("Duration", []string{"12.3", "12.3"}, "s", "")
	table.AddRow("Score", []string{"4", "9"}, "bits", "good match")

	out := table.String()
	if !strings.Contains(out, "Duration") || !strings.Contains(out, "12.3") {
		t.Errorf("table output missing expected duration row: %q", out)
	}
	if !strings.Contains(out, "good match") {
		t.Errorf("table output missing interpretation column: %q", out)
	}
	if !strings.Contains(out, "Segment 1") || !strings.Contains(out, "Segment 2") {
		t.Errorf("table output missing headers: %q", out)
	}
}

func TestMetricTableMissingValueFallsBackToDash(t *testing.T) {
	table := NewMetricTable("Only")
	table.AddRow("Partial", nil, "", "")

	out := table.String()
	if !strings.Contains(out, MissingValue) {
		t.Errorf("table output missing dash placeholder for absent value: %q", out)
	}
}
