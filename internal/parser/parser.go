// Package parser turns raw bank statement exports into canonical
// transactions. Each supported bank format has its own extractor; the
// date/amount normalizers, reference extraction and classification are
// shared. Extractors are best-effort: malformed rows are dropped by a
// final date-resolved/amount-nonzero filter instead of aborting the whole
// statement.
package parser

import "github.com/ledgerkeep/ledgerkeep/internal/models"

// Options carries the user rule lists applied during classification.
// Empty lists select the hardcoded table path, which is what the
// standalone ingestion CLI uses.
type Options struct {
	CategoryRules []models.CategoryRule
	TagRules      []models.TagRule
}

// splitCSVLine splits one raw CSV line on commas while respecting double
// quotes: a quote toggles the in-quotes flag and commas inside quotes do
// not split. Surrounding quotes are stripped from each column.
func splitCSVLine(line string) []string {
	var cols []string
	var cur []byte
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			cols = append(cols, string(cur))
			cur = cur[:0]
		default:
			cur = append(cur, c)
		}
	}
	cols = append(cols, string(cur))
	return cols
}

// col returns the i-th column or "" when the row is too short. Short rows
// are common in these exports; missing must behave as absent, not panic.
func col(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}
