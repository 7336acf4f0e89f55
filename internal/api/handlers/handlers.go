package handlers

import (
	"odyssey-lab/internal/config"
	"odyssey-lab/internal/domain/services/footprint"
	"odyssey-lab/internal/infrastructure/cache"
	"odyssey-lab/internal/infrastructure/database/repository"
	"odyssey-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health    *HealthHandler
	Footprint *FootprintHandler
}

// Dependencies holds dependencies for handlers. Repo and Cache may be
// nil; the engine itself needs neither.
type Dependencies struct {
	Analyzer *footprint.Analyzer
	Repo     *repository.FootprintRepository
	Cache    *cache.RedisCache
	Config   config.FootprintConfig
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Cache, deps.Repo, deps.Logger),
		Footprint: NewFootprintHandler(deps.Analyzer, deps.Repo, deps.Cache, deps.Config, deps.Logger),
	}
}
