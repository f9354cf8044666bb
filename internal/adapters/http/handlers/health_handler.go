package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-api-stub/internal/platform/health"
	"github.com/jsamuelsen11/todo-api-stub/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. It always answers 200: a degraded
// todo API only recovers through a later successful call, which needs
// traffic. The body lists each check and reports "degraded" when any failed.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			continue
		}
		checks[name] = statusOK
	}

	status := statusReady
	if !health.Healthy(results) {
		status = statusDegraded
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"checks": checks,
	})
}
