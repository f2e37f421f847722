package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/match"
	"github.com/tx-address/internal/normalize"
	"github.com/tx-address/internal/postal"
	"github.com/tx-address/internal/validation"
)

// AddressHandler exposes the parser, scorer and normalizer
type AddressHandler struct {
	Parser    *address.Parser
	Scorer    *match.Scorer
	Validator *validation.AddressValidator
	Debug     bool
}

// CompareResponse is the result of scoring b against a
type CompareResponse struct {
	A         map[string]string `json:"a"`
	B         map[string]string `json:"b"`
	Score     float64           `json:"score"`
	Tier      match.Tier        `json:"tier"`
	Breakdown match.Breakdown   `json:"breakdown"`
}

// requireQuery returns the named parameter or writes a 400
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if strings.TrimSpace(v) == "" {
		writeError(w, http.StatusBadRequest, "query parameter '"+name+"' required")
		return "", false
	}
	return v, true
}

// Parse returns the structured form of ?q=
func (h *AddressHandler) Parse(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, address.StructuredForm(h.Parser.ParseDebug(h.Debug, q)))
}

// Compare scores ?b= against ?a=
func (h *AddressHandler) Compare(w http.ResponseWriter, r *http.Request) {
	a, ok := requireQuery(w, r, "a")
	if !ok {
		return
	}
	b, ok := requireQuery(w, r, "b")
	if !ok {
		return
	}

	pa, pb := h.Parser.Parse(a), h.Parser.Parse(b)
	breakdown := h.Scorer.Explain(h.Debug, pa, pb)

	writeJSON(w, http.StatusOK, CompareResponse{
		A:         address.StructuredForm(pa),
		B:         address.StructuredForm(pb),
		Score:     breakdown.Score,
		Tier:      h.Scorer.Classify(breakdown.Score),
		Breakdown: breakdown,
	})
}

// Normalize returns the search form of ?q=
func (h *AddressHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"input":      q,
		"normalized": normalize.ForSearch(q),
	})
}

// Terms returns the search terms of ?q=
func (h *AddressHandler) Terms(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"input": q,
		"terms": h.Parser.SearchTerms(q),
	})
}

// Validate reports whether ?q= is complete enough to match automatically
func (h *AddressHandler) Validate(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Validator.Validate(q))
}

// Components returns libpostal's labelled components of ?q=
func (h *AddressHandler) Components(w http.ResponseWriter, r *http.Request) {
	q, ok := requireQuery(w, r, "q")
	if !ok {
		return
	}

	components, err := postal.Components(q)
	if errors.Is(err, postal.ErrUnavailable) {
		writeError(w, http.StatusNotImplemented, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"input":      q,
		"components": components,
	})
}
