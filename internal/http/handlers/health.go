package handlers

import (
	"net/http"
	"time"
)

// HealthHandler serves the status endpoint the hosting platform polls.
type HealthHandler struct {
	env string
}

// NewHealthHandler creates a health handler reporting the given environment.
func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"env":    h.env,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
