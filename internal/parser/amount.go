package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a bank amount cell to a non-negative decimal.
// Handles the "-" no-amount sentinel, an optional case-insensitive INR
// currency prefix, and thousands-separator commas. Empty or unparseable
// input yields zero; the sign is applied by the caller from whichever of
// the debit/credit columns was populated.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Zero
	}
	if len(s) >= 3 && strings.EqualFold(s[:3], "INR") {
		s = strings.TrimSpace(s[3:])
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Abs()
}

// ParseSignedAmount parses a single signed amount column, as used by the
// fallback extractor where there is no debit/credit split. Commas and a
// currency prefix are stripped; the sign is preserved. Sentinels and
// unparseable input yield zero.
func ParseSignedAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Zero
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(s)
	if len(s) >= 3 && strings.EqualFold(s[:3], "INR") {
		s = strings.TrimSpace(s[3:])
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		return d.Abs().Neg()
	}
	return d
}
