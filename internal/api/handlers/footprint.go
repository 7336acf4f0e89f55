package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"odyssey-lab/internal/config"
	"odyssey-lab/internal/domain/models"
	"odyssey-lab/internal/domain/services/footprint"
	"odyssey-lab/internal/infrastructure/cache"
	"odyssey-lab/internal/infrastructure/database/repository"
	"odyssey-lab/pkg/logger"
)

// FootprintHandler handles digital footprint analysis API requests
type FootprintHandler struct {
	analyzer *footprint.Analyzer
	repo     *repository.FootprintRepository
	cache    *cache.RedisCache
	cfg      config.FootprintConfig
	logger   *logger.Logger
}

// NewFootprintHandler creates a new footprint handler
func NewFootprintHandler(
	analyzer *footprint.Analyzer,
	repo *repository.FootprintRepository,
	c *cache.RedisCache,
	cfg config.FootprintConfig,
	log *logger.Logger,
) *FootprintHandler {
	return &FootprintHandler{
		analyzer: analyzer,
		repo:     repo,
		cache:    c,
		cfg:      cfg,
		logger:   log.WithComponent("footprint-handler"),
	}
}

// Analyze handles POST /api/v1/footprint/analyze
func (h *FootprintHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	cacheKey := cache.KeyFootprintPrefix + strings.ToLower(req.Email)
	if h.cache != nil {
		var cached models.DigitalFootprintResult
		if err := h.cache.GetJSON(r.Context(), cacheKey, &cached); err == nil {
			h.respondJSON(w, http.StatusOK, &cached)
			return
		}
	}

	result, err := h.analyzer.AnalyzeDigitalFootprint(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, footprint.ErrInvalidEmail) {
			h.respondError(w, http.StatusBadRequest, "invalid email address")
			return
		}
		h.logger.Error().Err(err).Msg("analysis failed")
		h.respondError(w, http.StatusInternalServerError, "analysis failed, please try again")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(r.Context(), cacheKey, result, h.cfg.CacheTTL); err != nil {
			h.logger.Warn().Err(err).Msg("failed to cache analysis")
		}
	}

	if h.repo != nil {
		if err := h.repo.Save(r.Context(), result); err != nil {
			h.logger.Warn().Err(err).Msg("failed to store analysis")
		}
	}

	h.respondJSON(w, http.StatusOK, result)
}

// History handles GET /api/v1/footprint/history
func (h *FootprintHandler) History(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		h.respondError(w, http.StatusServiceUnavailable, "history store unavailable")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	summaries, err := h.repo.ListByEmail(r.Context(), email, h.cfg.HistoryLimit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list history")
		h.respondError(w, http.StatusInternalServerError, "failed to list history")
		return
	}

	h.respondJSON(w, http.StatusOK, summaries)
}

// Get handles GET /api/v1/footprint/{id}
func (h *FootprintHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		h.respondError(w, http.StatusServiceUnavailable, "history store unavailable")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid analysis id")
		return
	}

	result, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "analysis not found")
			return
		}
		h.logger.Error().Err(err).Msg("failed to load analysis")
		h.respondError(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *FootprintHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *FootprintHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
