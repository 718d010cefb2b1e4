package classifier

import "github.com/ledgerkeep/ledgerkeep/internal/models"

// SeedRules flattens the hardcoded tables into editable rules. Priorities
// descend in declared order so seeded rules classify exactly like the
// tables they came from.
func (t Tables) SeedRules() ([]models.CategoryRule, []models.TagRule) {
	var cats []models.CategoryRule
	prio := len(t.Categories) * 10
	for _, entry := range t.Categories {
		for _, kw := range entry.Keywords {
			cats = append(cats, models.CategoryRule{
				Category: entry.Category,
				Pattern:  kw,
				Match:    models.MatchContains,
				Priority: prio,
			})
		}
		prio -= 10
	}

	var tags []models.TagRule
	prio = len(t.Tags) * 10
	for _, check := range t.Tags {
		for _, kw := range check.Keywords {
			tags = append(tags, models.TagRule{
				TagName:  check.Tag,
				Pattern:  kw,
				Match:    models.MatchContains,
				Priority: prio,
			})
		}
		prio -= 10
	}

	return cats, tags
}
