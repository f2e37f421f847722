package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// APIHandler handles general API endpoints
type APIHandler struct {
	StoreEnabled bool
	Libpostal    bool
	Started      time.Time
}

// StatusResponse reports service health
type StatusResponse struct {
	Status       string    `json:"status"`
	StoreEnabled bool      `json:"store_enabled"`
	Libpostal    bool      `json:"libpostal"`
	Started      time.Time `json:"started"`
	Uptime       string    `json:"uptime"`
}

// GetStatus returns service health
func (h *APIHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:       "ok",
		StoreEnabled: h.StoreEnabled,
		Libpostal:    h.Libpostal,
		Started:      h.Started,
		Uptime:       time.Since(h.Started).Round(time.Second).String(),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// parseIntParam parses a string parameter as int with default value
func parseIntParam(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}
