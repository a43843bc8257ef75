package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var currencyMarkerRegex = regexp.MustCompile(`(?i)^R\s*`)

// NormalizeCurrency strips grouping separators and a leading rand marker
// and returns the bare decimal string ("R 22,730.00" -> "22730.00").
// Unparseable input yields "", keeping "missing" distinguishable from
// zero downstream.
func NormalizeCurrency(amount string) string {
	cleaned := strings.TrimSpace(amount)
	cleaned = currencyMarkerRegex.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return ""
	}
	return cleaned
}

// ParseAmount parses a normalized or raw currency string to a float.
func ParseAmount(amount string) (float64, bool) {
	cleaned := NormalizeCurrency(amount)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders a derived value back into the table's two-decimal
// string form.
func FormatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
