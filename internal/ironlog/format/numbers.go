package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ParseOptionalInt parses a form value. Empty or non-numeric input yields nil,
// an explicit "0" yields a pointer to 0.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ParseOptionalFloat behaves like ParseOptionalInt for decimal values.
// NaN and infinities are treated as invalid input.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// OptionalString returns nil for blank input, otherwise the trimmed value.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Number renders a float the way a JS template literal would:
// no trailing zeros, no exponent (60 -> "60", 62.5 -> "62.5").
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Thousands rounds and groups digits, e.g. 12345.4 -> "12,345".
func Thousands(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Fixed renders v with the given number of decimals.
func Fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Round rounds half away from zero to the nearest integer.
func Round(v float64) float64 {
	return math.Round(v)
}
