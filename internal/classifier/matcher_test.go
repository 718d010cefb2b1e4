package classifier

import (
	"testing"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pattern string
		match   models.MatchType
		want    bool
	}{
		{"contains hit", "UPI/SWIGGY/1234", "swiggy", models.MatchContains, true},
		{"contains miss", "UPI/SWIGGY/1234", "zomato", models.MatchContains, false},
		{"startsWith hit", "NEFT/HDFC/REF123", "neft", models.MatchStartsWith, true},
		{"startsWith miss", "UPI/NEFT", "neft", models.MatchStartsWith, false},
		{"endsWith hit", "POS 1234 AMAZON", "amazon", models.MatchEndsWith, true},
		{"endsWith miss", "AMAZON POS 1234", "amazon", models.MatchEndsWith, false},
		{"exact hit", "Rent", "rent", models.MatchExact, true},
		{"exact miss on substring", "Rent paid", "rent", models.MatchExact, false},
		{"regex hit", "IMPS-P2A-999", `imps[-/]p2a`, models.MatchRegex, true},
		{"regex case-insensitive", "swiggy order", `SWIGGY`, models.MatchRegex, true},
		{"regex invalid is no-match", "anything", `([`, models.MatchRegex, false},
		{"unknown mode falls back to contains", "CASH WDL ATM", "atm", models.MatchType("fuzzy"), true},
		{"empty pattern contains everything", "text", "", models.MatchContains, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Matches(tt.text, tt.pattern, tt.match)
			if got != tt.want {
				t.Errorf("Matches(%q, %q, %q) = %v, want %v",
					tt.text, tt.pattern, tt.match, got, tt.want)
			}
		})
	}
}

func TestMatchesIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if !Matches("UPI/PAYTM/12345", "paytm", models.MatchContains) {
			t.Fatalf("run %d: expected stable match", i)
		}
	}
}
