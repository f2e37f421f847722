package address

import (
	"strings"
	"unicode/utf8"
)

var searchStopWords = map[string]bool{
	"the": true, "at": true, "of": true, "and": true, "a": true, "an": true,
}

// maxNameTerms is how many street-name words ExtractSearchTerms keeps
const maxNameTerms = 2

// ExtractSearchTerms returns the street number followed by up to two
// significant street-name words, for building contains() style filters
// against the property store.
func ExtractSearchTerms(text string) []string {
	return defaultParser.SearchTerms(text)
}

// SearchTerms is ExtractSearchTerms using this parser
func (p *Parser) SearchTerms(text string) []string {
	return p.Parse(text).SearchTerms()
}

// SearchTerms returns the street number and up to two significant
// street-name words of an already parsed address
func (a ParsedAddress) SearchTerms() []string {
	terms := []string{}

	if a.StreetNumber != "" {
		terms = append(terms, a.StreetNumber)
	}

	kept := 0
	for _, word := range strings.Fields(a.StreetName) {
		if kept == maxNameTerms {
			break
		}
		if searchStopWords[strings.ToLower(word)] || utf8.RuneCountInString(word) < 3 {
			continue
		}
		terms = append(terms, word)
		kept++
	}

	return terms
}
