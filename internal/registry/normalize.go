package registry

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// punctuation stripped outright during normalization
var strippedChars = strings.NewReplacer(
	".", "",
	",", "",
	"'", "",
	"’", "", // curly apostrophe
)

// Normalize canonicalizes a free-text school name into a comparison key:
// lowercase, trimmed, ampersands spelled out, periods/commas/apostrophes
// stripped, hyphens treated as spaces, internal whitespace collapsed.
//
// The same function must be applied when registering aliases and when
// looking up scoreboard names; any asymmetry causes silent match failures.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strippedChars.Replace(s)
	s = whitespaceRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
