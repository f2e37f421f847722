package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// searchRule rewrites one whole word of a lowercased address
type searchRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var searchRules = buildSearchRules()

// buildSearchRules compiles the abbreviation rewrites once, in a fixed order
// so that ForSearch is deterministic
func buildSearchRules() []searchRule {
	var rules []searchRule

	abbrevs := make([]string, 0, len(streetTypeExpansions))
	for abbr := range streetTypeExpansions {
		abbrevs = append(abbrevs, abbr)
	}
	sort.Strings(abbrevs)
	for _, abbr := range abbrevs {
		rules = append(rules, searchRule{
			pattern:     regexp.MustCompile(`\b` + regexp.QuoteMeta(abbr) + `\b`),
			replacement: streetTypeExpansions[abbr],
		})
	}

	words := make([]string, 0, len(directionals))
	for word := range directionals {
		if len(word) > 2 {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	for _, word := range words {
		rules = append(rules, searchRule{
			pattern:     regexp.MustCompile(`\b` + word + `\b`),
			replacement: directionals[word],
		})
	}

	return rules
}

// ForSearch builds a canonical search key: street-type abbreviations are
// expanded to full words and full directional words are abbreviated, so
// "1919 American Dr" and "1919 AMERICAN DRIVE" produce the same key.
func ForSearch(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(unidecode.Unidecode(text)))
	for _, rule := range searchRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}

	return strings.Join(strings.Fields(s), " ")
}
