package address

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/tx-address/internal/debug"
	"github.com/tx-address/internal/normalize"
)

var (
	// A zip only counts when it follows a comma or the state
	reZipAnchored = regexp.MustCompile(`(?i)(?:,\s*|\bTX\s*|\bTexas\s*)(\d{5})(?:-\d{4})?\b`)
	// Upstream joins sometimes leave the zip in the string twice. No leading
	// word break so a zip glued to the state ("TX78660") is stripped too.
	reZipTrailing = regexp.MustCompile(`(?:,\s*)?\d{5}(?:-\d{4})?\s*(?:,|$)`)
	reStateZip    = regexp.MustCompile(`(?i)\bTX\s+\d{5}(?:-\d{4})?\b`)

	reState      = regexp.MustCompile(`(?i)\b(?:TX|Texas)\b`)
	reStateStrip = regexp.MustCompile(`(?i),?\s*\b(?:TX|Texas)\b`)

	// Groups: 1 keyword, 2 value starting with a digit ("Apt5"),
	// 3 value after a word break ("Suite B"), 4 "#", 5 value after "#".
	reUnit = regexp.MustCompile(`(?i)\b(apartment|unit|apt|suite|ste|room|rm)(?:\.?\s*#?\s*(\d[a-z0-9]*)|\b\.?\s*#?\s*([a-z0-9]+))|(#)\s*([a-z0-9]+)`)

	reSpaces        = regexp.MustCompile(`\s+`)
	reEdgeComma     = regexp.MustCompile(`^,\s*|,\s*$`)
	reRepeatedComma = regexp.MustCompile(`,+`)

	reStreetNumber = regexp.MustCompile(`^(\d+)([A-Za-z])?`)
)

// cityMatcher matches one known city when it directly follows a comma
type cityMatcher struct {
	title   string
	pattern *regexp.Regexp
}

// Parser turns raw address strings into ParsedAddress values. A Parser is
// immutable once built and safe for concurrent use.
type Parser struct {
	cities []cityMatcher
}

// NewParser compiles the city matchers from the lexicon
func NewParser() *Parser {
	caser := cases.Title(language.English)

	var cities []cityMatcher
	for _, city := range normalize.KnownCities() {
		cities = append(cities, cityMatcher{
			title:   caser.String(city),
			pattern: regexp.MustCompile(`(?i),\s*` + regexp.QuoteMeta(city) + `\b`),
		})
	}

	return &Parser{cities: cities}
}

var defaultParser = NewParser()

// Parse parses raw with the package default parser
func Parse(raw string) ParsedAddress {
	return defaultParser.Parse(raw)
}

// Parse splits raw into its components. It never fails: input it cannot make
// sense of yields a record with only Original set.
func (p *Parser) Parse(raw string) ParsedAddress {
	return p.ParseDebug(false, raw)
}

// ParseDebug parses raw, tracing every extraction pass when localDebug is set
func (p *Parser) ParseDebug(localDebug bool, raw string) ParsedAddress {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	result := ParsedAddress{Original: raw}
	working := strings.TrimSpace(norm.NFC.String(raw))
	if working == "" {
		return result
	}
	debug.DebugOutput(localDebug, "Input: %q", working)

	result.ZipCode, working = extractZip(working)
	debug.DebugOutput(localDebug, "Zip: %q remaining: %q", result.ZipCode, working)

	result.State, working = extractState(working)
	debug.DebugOutput(localDebug, "State: %q remaining: %q", result.State, working)

	result.City, working = p.extractCity(working)
	debug.DebugOutput(localDebug, "City: %q remaining: %q", result.City, working)

	result.UnitType, result.UnitNumber, working = extractUnit(working)
	debug.DebugOutput(localDebug, "Unit: %q %q remaining: %q", result.UnitType, result.UnitNumber, working)

	working = cleanup(working)
	debug.DebugOutput(localDebug, "Street line: %q", working)

	street := scanStreet(strings.Fields(working))
	result.StreetNumber = street.number
	result.StreetNumberSuffix = street.suffix
	result.PreDirectional = street.preDirectional
	result.StreetName = strings.Join(street.name, " ")
	result.StreetType = street.streetType
	result.PostDirectional = street.postDirectional

	debug.DebugOutput(localDebug, "Street: number=%q suffix=%q pre=%q name=%q type=%q post=%q",
		result.StreetNumber, result.StreetNumberSuffix, result.PreDirectional,
		result.StreetName, result.StreetType, result.PostDirectional)

	return result
}

// extractZip finds a zip that follows a comma or the state and strips every
// zip-shaped token from the text
func extractZip(text string) (string, string) {
	m := reZipAnchored.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}

	text = reZipTrailing.ReplaceAllString(text, "")
	text = reStateZip.ReplaceAllString(text, "TX")
	return m[1], text
}

// extractState recognises TX or Texas as a whole word
func extractState(text string) (string, string) {
	if !reState.MatchString(text) {
		return "", text
	}
	return "TX", reStateStrip.ReplaceAllString(text, "")
}

// extractCity only accepts a city right after a comma, so a street such as
// "207 The Hills Dr" keeps its name even though The Hills is also a city
func (p *Parser) extractCity(text string) (string, string) {
	for _, city := range p.cities {
		if city.pattern.MatchString(text) {
			return city.title, city.pattern.ReplaceAllString(text, "")
		}
	}
	return "", text
}

// extractUnit removes the first unit designator and classifies it
func extractUnit(text string) (unitType, unitNumber, remaining string) {
	loc := reUnit.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", text
	}

	group := func(n int) string {
		if loc[2*n] < 0 {
			return ""
		}
		return text[loc[2*n]:loc[2*n+1]]
	}

	switch {
	case group(4) != "":
		unitType, unitNumber = "#", group(5)
	default:
		unitNumber = group(2) + group(3)
		switch strings.ToLower(group(1)) {
		case "apt", "apartment":
			unitType = "apt"
		case "suite", "ste":
			unitType = "suite"
		default:
			unitType = "unit"
		}
	}

	return unitType, unitNumber, text[:loc[0]] + text[loc[1]:]
}

// cleanup collapses the whitespace and comma debris left by earlier passes
func cleanup(text string) string {
	text = strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))
	text = reEdgeComma.ReplaceAllString(text, "")
	text = reRepeatedComma.ReplaceAllString(text, ",")
	return strings.Trim(text, " ,")
}

// streetParts accumulates the street line while scanning tokens
type streetParts struct {
	number          string
	suffix          string
	preDirectional  string
	name            []string
	streetType      string
	postDirectional string
}

// scanStreet walks the street-line tokens left to right. Primary street
// types end the name; secondary types and bare directionals only end it when
// they are the last token.
func scanStreet(tokens []string) streetParts {
	var s streetParts
	i := 0

	if i < len(tokens) {
		if m := reStreetNumber.FindStringSubmatch(tokens[i]); m != nil {
			s.number, s.suffix = m[1], m[2]
			i++
		}
	}

	if i < len(tokens) {
		if canonical, ok := normalize.Directional(tokens[i]); ok {
			s.preDirectional = strings.ToUpper(canonical)
			i++
		}
	}

	for ; i < len(tokens); i++ {
		word := tokens[i]
		last := i == len(tokens)-1

		switch {
		case normalize.IsPrimaryStreetType(word):
			s.streetType = strings.TrimRight(word, ".,")
			if !last {
				if canonical, ok := normalize.Directional(tokens[i+1]); ok {
					s.postDirectional = strings.ToUpper(canonical)
				}
			}
			return s

		case normalize.IsSecondaryStreetType(word) && last:
			s.streetType = strings.TrimRight(word, ".,")
			return s

		case last:
			if canonical, ok := normalize.Directional(word); ok {
				s.postDirectional = strings.ToUpper(canonical)
				return s
			}
			s.name = append(s.name, strings.TrimRight(word, ","))

		default:
			s.name = append(s.name, strings.TrimRight(word, ","))
		}
	}

	return s
}
