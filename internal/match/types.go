package match

import (
	"github.com/tx-address/internal/address"
)

// Thresholds used by callers to turn a score into a decision
const (
	MinAddressMatchScore   = 0.70 // confident match
	FuzzyAddressMatchScore = 0.55 // tentative match, needs a human to confirm
)

// Tier is the confidence band a score falls into
type Tier string

const (
	TierConfident Tier = "confident"
	TierTentative Tier = "tentative"
	TierNone      Tier = "none"
)

// MatchTiers defines the score bands
type MatchTiers struct {
	Confident float64 // >= 0.70
	Tentative float64 // >= 0.55
}

// DefaultTiers returns the standard thresholds
func DefaultTiers() *MatchTiers {
	return &MatchTiers{
		Confident: MinAddressMatchScore,
		Tentative: FuzzyAddressMatchScore,
	}
}

// FieldWeights defines the points each field contributes to a score
type FieldWeights struct {
	StreetNumber       float64 // 40, and a mismatch is fatal
	NumberSuffixBonus  float64 // 2
	StreetName         float64 // 35
	NamePartialBase    float64 // 25 for substring matches, scaled up to StreetName
	NameMinSimilarity  float64 // 0.5 edit-distance similarity floor
	StreetType         float64 // 10
	TypeCandidateBlank float64 // 5 when the candidate has no type
	TypeQueryBlank     float64 // 8 when only the candidate has a type
	Unit               float64 // 10
	UnitCandidateExtra float64 // 5 when only the candidate has a unit
	Directional        float64 // 5
	DirCandidateBlank  float64 // 2 when the candidate has no directional
}

// DefaultWeights returns the standard field weights
func DefaultWeights() *FieldWeights {
	return &FieldWeights{
		StreetNumber:       40,
		NumberSuffixBonus:  2,
		StreetName:         35,
		NamePartialBase:    25,
		NameMinSimilarity:  0.5,
		StreetType:         10,
		TypeCandidateBlank: 5,
		TypeQueryBlank:     8,
		Unit:               10,
		UnitCandidateExtra: 5,
		Directional:        5,
		DirCandidateBlank:  2,
	}
}

// Breakdown records how each field contributed to a score
type Breakdown struct {
	StreetNumber float64 `json:"street_number"`
	StreetName   float64 `json:"street_name"`
	StreetType   float64 `json:"street_type"`
	Unit         float64 `json:"unit"`
	Directional  float64 `json:"directional"`
	Points       float64 `json:"points"`
	MaxPoints    float64 `json:"max_points"`
	NumberGated  bool    `json:"number_gated"`
	Score        float64 `json:"score"`
}

// Ranked is one candidate scored against a query
type Ranked struct {
	Index     int                   `json:"index"` // position in the input slice
	Candidate address.ParsedAddress `json:"candidate"`
	Score     float64               `json:"score"`
	Tier      Tier                  `json:"tier"`
}
