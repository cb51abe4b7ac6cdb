// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a payment amount with comma separators and two
// decimals. e.g., 1234567.891 -> "1,234,567.89"
func FormatMoney(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}

	s := fmt.Sprintf("%s.%02d", FormatNumber(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatStat formats a descriptive-statistic value compactly.
// NaN (e.g., std of a single value) renders as "NaN", matching the
// describe-report convention.
func FormatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1000:
		return FormatMoney(v)
	case abs == math.Trunc(abs):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatCompact formats a value with human-readable suffixes for chart axis
// labels. e.g., 1234567 -> "1.2M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return trimSuffix(v/1e9) + "B"
	case abs >= 1e6:
		return trimSuffix(v/1e6) + "M"
	case abs >= 1e3:
		return trimSuffix(v/1e3) + "k"
	case abs >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimSuffix(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
