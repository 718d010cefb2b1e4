package models

// MatchType is the comparison mode a rule pattern uses against a
// transaction description. Unrecognized values fall back to MatchContains.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startsWith"
	MatchEndsWith   MatchType = "endsWith"
	MatchExact      MatchType = "exact"
	MatchRegex      MatchType = "regex"
)

// CategoryRule assigns a category to transactions whose description
// matches Pattern. Rules evaluate in descending Priority order and the
// first match wins. Pattern is stored lowercase.
type CategoryRule struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"userId"`
	Category string    `json:"category"`
	Pattern  string    `json:"pattern"`
	Match    MatchType `json:"matchType"`
	Priority int       `json:"priority"`
	Color    string    `json:"color,omitempty"` // display hint, irrelevant to matching
}

// TagRule attaches a tag to transactions whose description matches
// Pattern. Unlike category rules every matching tag rule contributes;
// tags accumulate and are deduplicated. TagName is stored uppercase.
type TagRule struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"userId"`
	TagName  string    `json:"tagName"`
	Pattern  string    `json:"pattern"`
	Match    MatchType `json:"matchType"`
	Priority int       `json:"priority"`
}

// Budget caps spending for a category in a given month (YYYY-MM).
type Budget struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Category string `json:"category"`
	Month    string `json:"month"`
	Limit    string `json:"limit"` // decimal string
}
