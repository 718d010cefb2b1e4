package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Month abbreviations as they appear in statement exports.
var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateResolved reports whether a normalizer produced a usable ISO date.
// Extractors use this as their final filter; the normalizers themselves
// never fail loudly.
func dateResolved(s string) bool {
	return isoDatePattern.MatchString(s)
}

// ToISODateSlash converts DD/MM/YY or DD/MM/YYYY to YYYY-MM-DD. Two-digit
// years are treated as 20YY. Input that does not split into exactly three
// numeric parts is returned unchanged so the caller's filter can drop the
// row; this function never panics.
func ToISODateSlash(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return s
	}
	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return s
	}
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ToISODateLong converts "DD Mon YYYY" (e.g. "03 Mar 2025") to
// YYYY-MM-DD. Unparseable input yields the empty string.
func ToISODateLong(s string) string {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 3 {
		return ""
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	month, ok := monthNumbers[strings.ToLower(parts[1])]
	if !ok {
		return ""
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ToISODateDash converts "DD-MMM-YY" (e.g. "18-Feb-26") to YYYY-MM-DD.
// Unparseable input passes through unchanged rather than collapsing to
// "", unlike ToISODateLong; callers filter on dateResolved either way.
func ToISODateDash(s string) string {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return s
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return s
	}
	month, ok := monthNumbers[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return s
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return s
	}
	if year < 100 {
		year += 2000
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
