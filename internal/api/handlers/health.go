package handlers

import (
	"encoding/json"
	"net/http"

	"odyssey-lab/internal/infrastructure/cache"
	"odyssey-lab/internal/infrastructure/database/repository"
	"odyssey-lab/pkg/logger"
)

// HealthHandler handles health and readiness checks
type HealthHandler struct {
	cache  *cache.RedisCache
	repo   *repository.FootprintRepository
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(c *cache.RedisCache, repo *repository.FootprintRepository, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		cache:  c,
		repo:   repo,
		logger: log.WithComponent("health-handler"),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Ready handles GET /ready. The engine has no hard dependencies, so
// readiness reports optional backends without failing on them.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status": "ready",
		"cache":  h.cache != nil,
		"store":  h.repo != nil,
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			h.logger.Warn().Err(err).Msg("cache ping failed")
			status["cache"] = false
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}
