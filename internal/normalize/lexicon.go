package normalize

import (
	"sort"
	"strings"
)

// streetTypes maps every accepted street-type spelling to its canonical abbreviation
var streetTypes = map[string]string{
	"street":    "st",
	"st":        "st",
	"avenue":    "ave",
	"ave":       "ave",
	"av":        "ave",
	"boulevard": "blvd",
	"blvd":      "blvd",
	"drive":     "dr",
	"dr":        "dr",
	"lane":      "ln",
	"ln":        "ln",
	"road":      "rd",
	"rd":        "rd",
	"court":     "ct",
	"ct":        "ct",
	"circle":    "cir",
	"cir":       "cir",
	"way":       "way",
	"place":     "pl",
	"pl":        "pl",
	"trail":     "trl",
	"trl":       "trl",
	"parkway":   "pkwy",
	"pkwy":      "pkwy",
	"terrace":   "ter",
	"ter":       "ter",
	"highway":   "hwy",
	"hwy":       "hwy",
	"crossing":  "xing",
	"xing":      "xing",
	"pass":      "pass",
	"loop":      "loop",
	"run":       "run",
	"path":      "path",
	"bend":      "bend",
	"cove":      "cv",
	"cv":        "cv",
	"point":     "pt",
	"pointe":    "pt",
	"pt":        "pt",
	"ridge":     "rdg",
	"rdg":       "rdg",
	"creek":     "crk",
	"crk":       "crk",
	"estates":   "ests",
	"ests":      "ests",
	"heights":   "hts",
	"hts":       "hts",
	"hills":     "hls",
	"hls":       "hls",
	"meadow":    "mdw",
	"mdw":       "mdw",
	"meadows":   "mdws",
	"mdws":      "mdws",
	"oaks":      "oaks",
	"ranch":     "rnch",
	"rnch":      "rnch",
	"springs":   "spgs",
	"spgs":      "spgs",
	"valley":    "vly",
	"vly":       "vly",
	"view":      "vw",
	"vw":        "vw",
	"vista":     "vis",
	"vis":       "vis",
}

// streetTypeExpansions is only used when building search keys
var streetTypeExpansions = map[string]string{
	"st":   "street",
	"ave":  "avenue",
	"blvd": "boulevard",
	"dr":   "drive",
	"ln":   "lane",
	"rd":   "road",
	"ct":   "court",
	"cir":  "circle",
	"pl":   "place",
	"trl":  "trail",
	"pkwy": "parkway",
	"ter":  "terrace",
	"hwy":  "highway",
	"xing": "crossing",
	"cv":   "cove",
	"pt":   "point",
	"rdg":  "ridge",
	"crk":  "creek",
	"hts":  "heights",
}

var directionals = map[string]string{
	"north":     "n",
	"n":         "n",
	"south":     "s",
	"s":         "s",
	"east":      "e",
	"e":         "e",
	"west":      "w",
	"w":         "w",
	"northeast": "ne",
	"ne":        "ne",
	"northwest": "nw",
	"nw":        "nw",
	"southeast": "se",
	"se":        "se",
	"southwest": "sw",
	"sw":        "sw",
}

var unitTypes = map[string]string{
	"unit":      "unit",
	"apt":       "unit",
	"apartment": "unit",
	"#":         "unit",
	"suite":     "unit",
	"ste":       "unit",
	"room":      "unit",
	"rm":        "unit",
	"floor":     "floor",
	"fl":        "floor",
	"building":  "bldg",
	"bldg":      "bldg",
	"lot":       "lot",
}

// Spellings that always terminate a street name. Keyed on the raw token so
// rare variants such as "av" stay part of the name.
var primaryStreetTypes = map[string]bool{
	"st": true, "street": true, "ave": true, "avenue": true,
	"blvd": true, "boulevard": true, "dr": true, "drive": true,
	"ln": true, "lane": true, "rd": true, "road": true,
	"ct": true, "court": true, "cir": true, "circle": true,
	"way": true, "pl": true, "place": true, "trl": true, "trail": true,
	"pkwy": true, "parkway": true, "ter": true, "terrace": true,
	"hwy": true, "highway": true, "xing": true, "crossing": true,
	"loop": true, "run": true, "path": true, "bend": true, "pass": true,
}

// Spellings that are only a type when nothing follows them ("Falcon Pointe Blvd")
var secondaryStreetTypes = map[string]bool{
	"pointe": true, "point": true, "pt": true, "creek": true, "crk": true,
	"ridge": true, "rdg": true, "oaks": true, "hills": true, "hls": true,
	"heights": true, "hts": true, "vista": true, "vis": true,
	"valley": true, "vly": true, "view": true, "vw": true,
	"estates": true, "ests": true, "ranch": true, "rnch": true,
	"springs": true, "spgs": true, "meadow": true, "mdw": true,
	"meadows": true, "mdws": true, "cove": true, "cv": true,
}

// Texas cities seen in the homeowner data
var knownCities = []string{
	"austin", "round rock", "pflugerville", "cedar park", "leander",
	"georgetown", "hutto", "taylor", "lago vista", "the hills",
	"dripping springs", "driftwood", "bee cave", "lakeway", "manor",
	"bastrop", "kyle", "buda", "san marcos", "new braunfels",
	"san antonio", "seguin", "lockhart", "del valle", "elgin",
	"jarrell", "liberty hill", "marble falls", "spicewood", "wimberley",
}

var citiesLongestFirst = sortCities(knownCities)

func sortCities(cities []string) []string {
	sorted := make([]string, len(cities))
	copy(sorted, cities)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

func clean(word string) string {
	return strings.ToLower(strings.TrimRight(word, ".,"))
}

// StreetType returns the canonical abbreviation for a street-type word.
// The second result reports whether the word is a known street type.
func StreetType(word string) (string, bool) {
	canonical, ok := streetTypes[clean(word)]
	return canonical, ok
}

// CanonicalStreetType canonicalizes a street type, falling back to the
// lowercased input for words outside the table.
func CanonicalStreetType(word string) string {
	if canonical, ok := StreetType(word); ok {
		return canonical
	}
	return strings.ToLower(word)
}

// Directional returns the canonical lowercase abbreviation for a compass word
func Directional(word string) (string, bool) {
	canonical, ok := directionals[clean(word)]
	return canonical, ok
}

// CanonicalDirectional canonicalizes a directional, falling back to the
// lowercased input.
func CanonicalDirectional(word string) string {
	if canonical, ok := Directional(word); ok {
		return canonical
	}
	return strings.ToLower(word)
}

// UnitType classifies a unit keyword as unit, floor, bldg or lot
func UnitType(word string) (string, bool) {
	canonical, ok := unitTypes[clean(word)]
	return canonical, ok
}

// IsPrimaryStreetType reports whether word is an unambiguous street-name terminator
func IsPrimaryStreetType(word string) bool {
	return primaryStreetTypes[clean(word)]
}

// IsSecondaryStreetType reports whether word is a street type that is also
// commonly part of a street name
func IsSecondaryStreetType(word string) bool {
	return secondaryStreetTypes[clean(word)]
}

// KnownCities returns the known city names, longest first so that
// multi-word names win over their prefixes.
func KnownCities() []string {
	out := make([]string, len(citiesLongestFirst))
	copy(out, citiesLongestFirst)
	return out
}
