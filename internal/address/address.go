// Package address parses free-form Texas property addresses into their
// postal components.
package address

import (
	"strings"

	"github.com/tx-address/internal/normalize"
)

// ParsedAddress is one parsed occurrence of an address. Every field is the
// empty string when the component was not found.
type ParsedAddress struct {
	Original           string `json:"original"`
	StreetNumber       string `json:"street_number"`        // digits only: "18517"
	StreetNumberSuffix string `json:"street_number_suffix"` // "A" in "123A"
	PreDirectional     string `json:"pre_directional"`      // "N", "SW"
	StreetName         string `json:"street_name"`          // case preserved: "Falcon Pointe"
	StreetType         string `json:"street_type"`          // raw as written: "Blvd", "Drive"
	PostDirectional    string `json:"post_directional"`
	UnitType           string `json:"unit_type"` // "unit", "apt", "suite" or "#"
	UnitNumber         string `json:"unit_number"`
	City               string `json:"city"`
	State              string `json:"state"`
	ZipCode            string `json:"zip_code"`
}

// NormalizedStreet returns the lowercase, abbreviation-unified street line
// used for exact-match indexing, e.g. "1919 american dr".
func (a ParsedAddress) NormalizedStreet() string {
	var parts []string

	if a.StreetNumber != "" {
		parts = append(parts, a.StreetNumber+strings.ToUpper(a.StreetNumberSuffix))
	}
	if a.PreDirectional != "" {
		parts = append(parts, normalize.CanonicalDirectional(a.PreDirectional))
	}
	if a.StreetName != "" {
		parts = append(parts, strings.ToLower(a.StreetName))
	}
	if a.StreetType != "" {
		parts = append(parts, normalize.CanonicalStreetType(a.StreetType))
	}
	if a.PostDirectional != "" {
		parts = append(parts, normalize.CanonicalDirectional(a.PostDirectional))
	}

	return strings.Join(parts, " ")
}

// MatchKey is the coarse "number first-word" bucket used to pre-filter
// candidates before full scoring.
func (a ParsedAddress) MatchKey() string {
	firstWord := ""
	if fields := strings.Fields(a.StreetName); len(fields) > 0 {
		firstWord = fields[0]
	}
	return strings.ToLower(strings.TrimSpace(a.StreetNumber + " " + firstWord))
}

// StructuredForm exports the parsed components as a flat key/value map for
// logging and JSON responses. It includes the computed normalized street.
func StructuredForm(a ParsedAddress) map[string]string {
	unitClass := ""
	if a.UnitType != "" {
		unitClass, _ = normalize.UnitType(a.UnitType)
	}

	return map[string]string{
		"street_number":        a.StreetNumber,
		"street_number_suffix": a.StreetNumberSuffix,
		"pre_directional":      a.PreDirectional,
		"street_name":          a.StreetName,
		"street_type":          a.StreetType,
		"post_directional":     a.PostDirectional,
		"unit_type":            a.UnitType,
		"unit_class":           unitClass,
		"unit_number":          a.UnitNumber,
		"city":                 a.City,
		"state":                a.State,
		"zip_code":             a.ZipCode,
		"normalized":           a.NormalizedStreet(),
	}
}
