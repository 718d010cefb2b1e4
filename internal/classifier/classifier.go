// Package classifier assigns a category, a transaction type and a set of
// tags to a transaction from its narration text. Categories and tags can
// be driven either by user-editable rule lists or by the hardcoded tables
// in this package; the transaction type is always table-driven.
package classifier

import (
	"sort"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// ClassifyCategory returns exactly one category for the description.
//
// When rules is non-empty the rules are evaluated in descending priority
// order (stable, so the store's ordering breaks ties) and the first match
// wins. Otherwise the table's keyword entries are scanned in declared
// order. No match either way returns Uncategorized.
func (t Tables) ClassifyCategory(description string, rules []models.CategoryRule) string {
	if len(rules) > 0 {
		sorted := make([]models.CategoryRule, len(rules))
		copy(sorted, rules)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority > sorted[j].Priority
		})
		for _, r := range sorted {
			if Matches(description, r.Pattern, r.Match) {
				return r.Category
			}
		}
		return models.Uncategorized
	}

	lower := strings.ToLower(description)
	for _, entry := range t.Categories {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Category
			}
		}
	}
	return models.Uncategorized
}

// ClassifyTags returns every tag whose rule or table check matches the
// description, uppercased and deduplicated in first-seen order. Unlike
// categories there is no early exit: all matching rules contribute. The
// result may be empty but is never nil.
func (t Tables) ClassifyTags(description string, rules []models.TagRule) []string {
	tags := []string{}
	seen := map[string]bool{}

	appendTag := func(tag string) {
		tag = strings.ToUpper(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	if len(rules) > 0 {
		sorted := make([]models.TagRule, len(rules))
		copy(sorted, rules)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Priority > sorted[j].Priority
		})
		for _, r := range sorted {
			if Matches(description, r.Pattern, r.Match) {
				appendTag(r.TagName)
			}
		}
		return tags
	}

	upper := strings.ToUpper(description)
	for _, check := range t.Tags {
		for _, kw := range check.Keywords {
			if strings.Contains(upper, kw) {
				appendTag(check.Tag)
				break
			}
		}
	}
	return tags
}

// ClassifyType returns the transaction type for the description using the
// fixed keyword table, first matching type in table order, else Other.
func ClassifyType(description string) string {
	lower := strings.ToLower(description)
	for _, entry := range typeTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Type
			}
		}
	}
	return models.TypeOther
}
