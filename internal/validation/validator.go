// Package validation decides whether a parsed address carries enough
// information to be matched against the property store automatically.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tx-address/internal/address"
)

// Validation holds the validation state of one address
type Validation struct {
	Address  string                `json:"address"`
	Parsed   address.ParsedAddress `json:"parsed"`
	Issues   []string              `json:"issues"`
	Suitable bool                  `json:"suitable_for_matching"`
	Score    float64               `json:"validation_score"`
}

// Phrases that describe a location relative to a property rather than the
// property itself
var reVague = regexp.MustCompile(`(?i)\b(land at|rear of|adjacent to|corner of|near|lot|tract)\b`)

// AddressValidator checks parsed addresses for matching suitability
type AddressValidator struct {
	parser   *address.Parser
	minScore float64
}

// DefaultMinScore is the validation score below which an address is not
// matched automatically
const DefaultMinScore = 0.6

// NewAddressValidator creates a validator. Addresses scoring below
// minScore are unsuitable even when number and street are present.
func NewAddressValidator(parser *address.Parser, minScore float64) *AddressValidator {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	return &AddressValidator{parser: parser, minScore: minScore}
}

// Validate parses raw and grades each component
func (v *AddressValidator) Validate(raw string) Validation {
	parsed := v.parser.Parse(raw)

	var issues []string
	var factors []float64

	if parsed.StreetNumber == "" {
		issues = append(issues, "Missing street number - required for precise matching")
		factors = append(factors, 0.0)
	} else {
		factors = append(factors, 1.0)
	}

	switch n := utf8.RuneCountInString(parsed.StreetName); {
	case n == 0:
		issues = append(issues, "Missing street name")
		factors = append(factors, 0.0)
	case n < 3:
		issues = append(issues, "Street name too short")
		factors = append(factors, 0.3)
	default:
		factors = append(factors, 1.0)
	}

	switch {
	case parsed.ZipCode == "":
		// rosters often omit it
		factors = append(factors, 0.5)
	case IsTexasZip(parsed.ZipCode):
		factors = append(factors, 1.0)
	default:
		issues = append(issues, fmt.Sprintf("ZIP code %s is outside Texas", parsed.ZipCode))
		factors = append(factors, 0.2)
	}

	if parsed.City == "" {
		factors = append(factors, 0.5)
	} else {
		factors = append(factors, 1.0)
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}

	val := Validation{
		Address: raw,
		Parsed:  parsed,
		Issues:  issues,
		Score:   sum / float64(len(factors)),
	}
	val.Suitable = val.Score >= v.minScore && parsed.StreetNumber != "" && parsed.StreetName != ""

	if m := reVague.FindString(raw); m != "" {
		val.Issues = append(val.Issues, fmt.Sprintf("Vague address contains '%s'", strings.ToUpper(m)))
		val.Suitable = false
		val.Score *= 0.5
	}

	if val.Issues == nil {
		val.Issues = []string{}
	}
	return val
}

// IsTexasZip reports whether a 5 or 9 digit ZIP falls in a Texas prefix
// range: 733, 750-799 and 885.
func IsTexasZip(zip string) bool {
	if len(zip) < 5 {
		return false
	}
	prefix := zip[:3]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return prefix == "733" || prefix == "885" || (prefix >= "750" && prefix <= "799")
}
