package match

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/debug"
	"github.com/tx-address/internal/normalize"
)

// Scorer compares parsed addresses field by field. Fields missing from the
// query are left out of the denominator, except street type and unit which
// always count so that agreeing absence is rewarded.
type Scorer struct {
	weights *FieldWeights
	tiers   *MatchTiers
}

// NewScorer creates a scorer with default weights and tiers
func NewScorer() *Scorer {
	return &Scorer{
		weights: DefaultWeights(),
		tiers:   DefaultTiers(),
	}
}

// NewScorerWithConfig creates a scorer with custom weights and tiers
func NewScorerWithConfig(weights *FieldWeights, tiers *MatchTiers) *Scorer {
	return &Scorer{
		weights: weights,
		tiers:   tiers,
	}
}

var defaultScorer = NewScorer()

// AddressSimilarityScore scores a candidate against a query in [0, 1]
func AddressSimilarityScore(query, candidate address.ParsedAddress) float64 {
	return defaultScorer.Score(query, candidate)
}

// CompareAddresses parses both strings and scores b against a
func CompareAddresses(a, b string) float64 {
	return defaultScorer.Score(address.Parse(a), address.Parse(b))
}

// Compare parses both strings with parser and scores b against a
func (s *Scorer) Compare(parser *address.Parser, a, b string) float64 {
	return s.Score(parser.Parse(a), parser.Parse(b))
}

// Score returns the similarity of candidate to query in [0, 1]. A differing
// street number scores 0 regardless of every other field.
func (s *Scorer) Score(query, candidate address.ParsedAddress) float64 {
	return s.Explain(false, query, candidate).Score
}

// Explain scores candidate against query and reports each field's points
func (s *Scorer) Explain(localDebug bool, query, candidate address.ParsedAddress) Breakdown {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	w := s.weights
	var b Breakdown

	if isBlank(query) {
		debug.DebugOutput(localDebug, "Query has no usable fields - no match")
		return b
	}

	if query.StreetNumber != "" {
		b.MaxPoints += w.StreetNumber
		if query.StreetNumber != candidate.StreetNumber {
			debug.DebugOutput(localDebug, "Street number %q != %q - no match", query.StreetNumber, candidate.StreetNumber)
			b.NumberGated = true
			return b
		}
		b.StreetNumber = w.StreetNumber
		if query.StreetNumberSuffix != "" && strings.EqualFold(query.StreetNumberSuffix, candidate.StreetNumberSuffix) {
			b.StreetNumber += w.NumberSuffixBonus
		}
		debug.DebugOutput(localDebug, "Street number: +%.2f", b.StreetNumber)
	}

	if query.StreetName != "" {
		b.MaxPoints += w.StreetName
		b.StreetName = s.streetNamePoints(strings.ToLower(query.StreetName), strings.ToLower(candidate.StreetName))
		debug.DebugOutput(localDebug, "Street name %q vs %q: +%.2f", query.StreetName, candidate.StreetName, b.StreetName)
	}

	b.MaxPoints += w.StreetType
	switch {
	case query.StreetType != "":
		if normalize.CanonicalStreetType(query.StreetType) == canonicalOrBlank(candidate.StreetType) {
			b.StreetType = w.StreetType
		} else if candidate.StreetType == "" {
			b.StreetType = w.TypeCandidateBlank
		}
	case candidate.StreetType != "":
		b.StreetType = w.TypeQueryBlank
	}
	debug.DebugOutput(localDebug, "Street type %q vs %q: +%.2f", query.StreetType, candidate.StreetType, b.StreetType)

	b.MaxPoints += w.Unit
	switch {
	case query.UnitNumber != "":
		if strings.EqualFold(query.UnitNumber, candidate.UnitNumber) {
			b.Unit = w.Unit
		}
	case candidate.UnitNumber == "":
		b.Unit = w.Unit
	default:
		b.Unit = w.UnitCandidateExtra
	}
	debug.DebugOutput(localDebug, "Unit %q vs %q: +%.2f", query.UnitNumber, candidate.UnitNumber, b.Unit)

	if queryDir := firstDirectional(query); queryDir != "" {
		b.MaxPoints += w.Directional
		candidateDir := firstDirectional(candidate)
		switch {
		case candidateDir == "":
			b.Directional = w.DirCandidateBlank
		case normalize.CanonicalDirectional(queryDir) == normalize.CanonicalDirectional(candidateDir):
			b.Directional = w.Directional
		}
		debug.DebugOutput(localDebug, "Directional %q vs %q: +%.2f", queryDir, candidateDir, b.Directional)
	}

	b.Points = b.StreetNumber + b.StreetName + b.StreetType + b.Unit + b.Directional
	if b.MaxPoints > 0 {
		b.Score = math.Min(b.Points/b.MaxPoints, 1.0)
	}

	debug.DebugOutput(localDebug, "Final: %.2f / %.2f = %.4f", b.Points, b.MaxPoints, b.Score)
	return b
}

// streetNamePoints grades two lowercased street names: exact, substring,
// then edit-distance similarity
func (s *Scorer) streetNamePoints(queryName, candidateName string) float64 {
	w := s.weights

	if queryName == candidateName {
		return w.StreetName
	}

	queryLen := utf8.RuneCountInString(queryName)
	candidateLen := utf8.RuneCountInString(candidateName)
	longer, shorter := queryLen, candidateLen
	if shorter > longer {
		longer, shorter = shorter, longer
	}

	// an empty candidate name is a substring too, and earns the base credit
	if strings.Contains(candidateName, queryName) || strings.Contains(queryName, candidateName) {
		return w.NamePartialBase + (w.StreetName-w.NamePartialBase)*float64(shorter)/float64(longer)
	}

	similarity := 1 - float64(LevenshteinDistance(queryName, candidateName))/float64(longer)
	if similarity > w.NameMinSimilarity {
		return w.StreetName * similarity
	}
	return 0
}

// Classify maps a score onto the configured tiers
func (s *Scorer) Classify(score float64) Tier {
	switch {
	case score >= s.tiers.Confident:
		return TierConfident
	case score >= s.tiers.Tentative:
		return TierTentative
	default:
		return TierNone
	}
}

// Rank scores every candidate against query and returns them best first.
// Equal scores keep their input order.
func (s *Scorer) Rank(query address.ParsedAddress, candidates []address.ParsedAddress) []Ranked {
	ranked := make([]Ranked, len(candidates))
	for i, candidate := range candidates {
		score := s.Score(query, candidate)
		ranked[i] = Ranked{
			Index:     i,
			Candidate: candidate,
			Score:     score,
			Tier:      s.Classify(score),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func canonicalOrBlank(streetType string) string {
	if streetType == "" {
		return ""
	}
	return normalize.CanonicalStreetType(streetType)
}

// isBlank reports whether a has none of the fields the scorer compares
func isBlank(a address.ParsedAddress) bool {
	return a.StreetNumber == "" && a.StreetName == "" && a.StreetType == "" &&
		a.UnitNumber == "" && a.PreDirectional == "" && a.PostDirectional == ""
}

func firstDirectional(a address.ParsedAddress) string {
	if a.PreDirectional != "" {
		return a.PreDirectional
	}
	return a.PostDirectional
}
