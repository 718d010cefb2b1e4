package classifier

import (
	"regexp"
	"strings"

	"github.com/ledgerkeep/ledgerkeep/internal/models"
)

// Matches reports whether text matches pattern under the given match mode.
// Both sides are lowercased before comparison; stored patterns are already
// lowercase but user input is not trusted to be. An unrecognized mode
// behaves as contains. A regex pattern that fails to compile is a
// no-match, never an error: one bad user rule must not break
// classification for everything else.
func Matches(text, pattern string, match models.MatchType) bool {
	text = strings.ToLower(text)
	pattern = strings.ToLower(pattern)

	switch match {
	case models.MatchExact:
		return text == pattern
	case models.MatchStartsWith:
		return strings.HasPrefix(text, pattern)
	case models.MatchEndsWith:
		return strings.HasSuffix(text, pattern)
	case models.MatchRegex:
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return false
		}
		return re.MatchString(text)
	default:
		return strings.Contains(text, pattern)
	}
}
