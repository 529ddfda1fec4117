package server

import (
	"encoding/json"
	"net/http"

	"github.com/woozymasta/overviewer-util/internal/vars"
)

// HealthResponse carries the liveness status.
type HealthResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// HandleLiveness reports liveness status.
func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, HealthResponse{Status: "UP", Name: vars.Name})
}

// HandleReadiness reports readiness status.
func (h *Handler) HandleReadiness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, HealthResponse{Status: "UP", Name: vars.Name})
}

// HandleVersion resolves and returns build info. Nothing is cached, so a
// checkout updated under a running server is reflected immediately.
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.source.Info(r.Context()))
}
