package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/debug"
	"github.com/tx-address/internal/match"
	"github.com/tx-address/internal/property"
)

// CandidateSource supplies property records to score
type CandidateSource interface {
	ByMatchKey(ctx context.Context, key, community string, limit int) ([]property.Property, error)
	ByTerms(ctx context.Context, terms []string, community string, limit int) ([]property.Property, error)
}

// Options narrows a search
type Options struct {
	Community string  // only properties in this community
	Limit     int     // maximum results, default 20
	MinScore  float64 // lowest score returned, default FuzzyAddressMatchScore
	Debug     bool
}

// Result is a scored property candidate
type Result struct {
	Property property.Property `json:"property"`
	Score    float64           `json:"score"`
	Tier     match.Tier        `json:"tier"`
	Method   string            `json:"method"` // "match_key" or "terms"
}

// AddressSearcher finds the properties an address most likely refers to
type AddressSearcher struct {
	source         CandidateSource
	parser         *address.Parser
	scorer         *match.Scorer
	candidateLimit int
	logger         *zap.Logger
}

// NewAddressSearcher creates a searcher. candidateLimit caps how many rows
// are fetched from the source before scoring. A nil logger discards output.
func NewAddressSearcher(source CandidateSource, parser *address.Parser, scorer *match.Scorer, candidateLimit int, logger *zap.Logger) *AddressSearcher {
	if candidateLimit <= 0 {
		candidateLimit = 50
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressSearcher{
		source:         source,
		parser:         parser,
		scorer:         scorer,
		candidateLimit: candidateLimit,
		logger:         logger,
	}
}

// Search parses query, pulls candidates sharing its match key (falling back
// to a contains() search on its salient terms), and returns the candidates
// scoring at least opts.MinScore, best first.
func (s *AddressSearcher) Search(ctx context.Context, query string, opts Options) ([]Result, error) {
	debug.DebugHeader(opts.Debug)
	defer debug.DebugFooter(opts.Debug)
	defer debug.DebugTiming(opts.Debug, "address search")()
	start := time.Now()

	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.MinScore <= 0 {
		opts.MinScore = match.FuzzyAddressMatchScore
	}

	parsed := s.parser.ParseDebug(opts.Debug, query)
	if parsed.StreetNumber == "" && parsed.StreetName == "" {
		debug.DebugOutput(opts.Debug, "Nothing searchable in %q", query)
		return nil, nil
	}

	method := "match_key"
	props, err := s.source.ByMatchKey(ctx, parsed.MatchKey(), opts.Community, s.candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("match key lookup failed: %w", err)
	}
	debug.DebugOutput(opts.Debug, "Match key %q: %d candidates", parsed.MatchKey(), len(props))

	if len(props) == 0 {
		method = "terms"
		terms := parsed.SearchTerms()
		props, err = s.source.ByTerms(ctx, terms, opts.Community, s.candidateLimit)
		if err != nil {
			return nil, fmt.Errorf("term lookup failed: %w", err)
		}
		debug.DebugOutput(opts.Debug, "Terms %v: %d candidates", terms, len(props))
	}

	candidates := make([]address.ParsedAddress, len(props))
	for i, p := range props {
		candidates[i] = s.parser.Parse(p.Address)
	}

	var results []Result
	for _, ranked := range s.scorer.Rank(parsed, candidates) {
		if ranked.Score < opts.MinScore || len(results) == opts.Limit {
			break
		}
		results = append(results, Result{
			Property: props[ranked.Index],
			Score:    ranked.Score,
			Tier:     ranked.Tier,
			Method:   method,
		})
	}

	s.logger.Debug("Address search done",
		zap.String("query", query),
		zap.String("match_key", parsed.MatchKey()),
		zap.String("method", method),
		zap.Int("candidates", len(props)),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(start)))
	return results, nil
}
