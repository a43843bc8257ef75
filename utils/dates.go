package utils

import (
	"regexp"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

var (
	isoDateRegex   = regexp.MustCompile(`^(\d{4})[-/](\d{2})[-/](\d{2})$`)
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	longDateRegex  = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
)

var monthNames = map[string]string{
	"january": "01", "february": "02", "march": "03", "april": "04",
	"may": "05", "june": "06", "july": "07", "august": "08",
	"september": "09", "october": "10", "november": "11", "december": "12",
}

// NormalizeDate converts a date in DD/MM/YYYY, ISO, or long textual form
// ("01 MARCH 2026") to ISO YYYY-MM-DD. Anything it cannot read becomes "",
// never an error: a malformed date is the same as a missing one.
func NormalizeDate(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}

	if m := isoDateRegex.FindStringSubmatch(dateStr); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}

	if m := slashDateRegex.FindStringSubmatch(dateStr); m != nil {
		return m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1])
	}

	if m := longDateRegex.FindStringSubmatch(dateStr); m != nil {
		month, ok := monthNames[strings.ToLower(m[2])]
		if !ok {
			return ""
		}
		return m[3] + "-" + month + "-" + pad2(m[1])
	}

	return ""
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ISOToSlash converts YYYY-MM-DD back to the schedule's DD/MM/YYYY form.
func ISOToSlash(isoDate string) string {
	m := isoDateRegex.FindStringSubmatch(strings.TrimSpace(isoDate))
	if m == nil {
		return ""
	}
	return m[3] + "/" + m[2] + "/" + m[1]
}

// parseISO returns the zero time for anything that is not a valid ISO date.
func parseISO(isoDate string) time.Time {
	t, err := time.Parse(isoDateLayout, isoDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddYearsISO shifts an ISO date by whole years. Empty or invalid input
// yields "".
func AddYearsISO(isoDate string, years int) string {
	t := parseISO(isoDate)
	if t.IsZero() {
		return ""
	}
	return t.AddDate(years, 0, 0).Format(isoDateLayout)
}

// anniversaryEnd returns the day before the (n+1)th anniversary of start,
// i.e. the last day of lease year n for a 1-based n.
func anniversaryEnd(startISO string, n int) string {
	t := parseISO(startISO)
	if t.IsZero() {
		return ""
	}
	return t.AddDate(n, 0, -1).Format(isoDateLayout)
}
