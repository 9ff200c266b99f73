package calc

import (
	"math"
	"strconv"
	"strings"
)

// ParseLocaleFloat parses a numeric string that may use a German/Dutch comma
// decimal separator. Examples: "12,5" -> 12.5, "0.95" -> 0.95.
// Thousands separators ("1.234,5") are tolerated as long as a comma is present.
func ParseLocaleFloat(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return 0, false
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return val, true
}

// nonNegative maps NaN, infinities and negative values to 0.
// Malformed surface data must never throw, only contribute nothing.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// positiveOr returns v when it is a finite positive number, fallback otherwise.
func positiveOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}

// clamp limits v to the closed interval [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimals, the precision used for preset U-values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
