// Package measure holds the blood-pressure entry form state: the draft being
// typed, its per-field validation errors, the saved measurement list and the
// chart series derived from it.
package measure

import (
	"math"
	"strconv"
	"strings"
)

// Measurement is a single saved reading.
type Measurement struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
	Pulse     float64 `json:"pulse"`
}

// Get returns the value stored for f.
func (m Measurement) Get(f Field) float64 {
	switch f {
	case FieldSystolic:
		return m.Systolic
	case FieldDiastolic:
		return m.Diastolic
	default:
		return m.Pulse
	}
}

// With returns a copy of m with f set to v.
func (m Measurement) With(f Field, v float64) Measurement {
	switch f {
	case FieldSystolic:
		m.Systolic = v
	case FieldDiastolic:
		m.Diastolic = v
	case FieldPulse:
		m.Pulse = v
	}
	return m
}

// String renders the measurement the way the saved list shows it.
func (m Measurement) String() string {
	var b strings.Builder
	b.Grow(48)
	b.WriteString("Systolic: ")
	b.WriteString(FormatValue(m.Systolic))
	b.WriteString(", Diastolic: ")
	b.WriteString(FormatValue(m.Diastolic))
	b.WriteString(", Pulse: ")
	b.WriteString(FormatValue(m.Pulse))
	return b.String()
}

// FormatValue prints a reading in its shortest form (120, 120.5, NaN).
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseValue coerces raw input text the way a browser numeric input does:
// blank text is 0 and anything unparseable becomes NaN rather than an error.
func ParseValue(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
