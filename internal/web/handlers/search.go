package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/tx-address/internal/engine"
)

// SearchHandler handles property search endpoints
type SearchHandler struct {
	Searcher *engine.AddressSearcher
	MinScore float64
	Debug    bool
	Logger   *zap.Logger
}

// SearchResponse wraps ranked search results
type SearchResponse struct {
	Query     string          `json:"query"`
	Community string          `json:"community,omitempty"`
	Count     int             `json:"count"`
	Results   []engine.Result `json:"results"`
}

// SearchAddress ranks stored properties against ?q=
func (h *SearchHandler) SearchAddress(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}
	query := r.URL.Query()

	limit := parseIntParam(query.Get("limit"), 20)
	if limit > 100 {
		limit = 100
	}

	opts := engine.Options{
		Community: query.Get("community"),
		Limit:     limit,
		MinScore:  h.MinScore,
		Debug:     h.Debug,
	}

	results, err := h.Searcher.Search(r.Context(), q, opts)
	if err != nil {
		h.Logger.Error("Address search failed", zap.String("query", q), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if results == nil {
		results = []engine.Result{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Query:     q,
		Community: opts.Community,
		Count:     len(results),
		Results:   results,
	})
}
