package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"odyssey-lab/internal/api"
	"odyssey-lab/internal/api/handlers"
	"odyssey-lab/internal/config"
	"odyssey-lab/internal/domain/services/footprint"
	"odyssey-lab/internal/infrastructure/cache"
	"odyssey-lab/internal/infrastructure/database"
	"odyssey-lab/internal/infrastructure/database/repository"
	"odyssey-lab/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting Odyssey Lab")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize optional infrastructure. The analysis engine is
	// self-contained, so the service runs without either backend.
	var db *database.PostgresDB
	if cfg.Database.Enabled {
		db, err = database.NewPostgres(ctx, cfg.Database, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to PostgreSQL, continuing without history store")
		} else {
			defer db.Close()
			if err := db.Migrate(ctx); err != nil {
				log.Fatal().Err(err).Msg("failed to migrate database")
			}
		}
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without result cache")
		} else {
			defer redisCache.Close()
		}
	}

	var repo *repository.FootprintRepository
	if db != nil {
		repo = repository.NewFootprintRepository(db, log)
		log.Info().Msg("footprint history store initialized")
	}

	// Initialize the analysis engine
	analyzer := footprint.NewAnalyzer(footprint.Config{
		AnalysisDelay: cfg.Footprint.AnalysisDelay,
		SocialDelay:   cfg.Footprint.SocialDelay,
		ReferenceYear: cfg.Footprint.ReferenceYear,
	}, log)
	log.Info().
		Dur("analysis_delay", cfg.Footprint.AnalysisDelay).
		Dur("social_delay", cfg.Footprint.SocialDelay).
		Msg("footprint analyzer initialized")

	// Initialize handlers and router
	h := handlers.NewHandlers(handlers.Dependencies{
		Analyzer: analyzer,
		Repo:     repo,
		Cache:    redisCache,
		Config:   cfg.Footprint,
		Logger:   log,
	})

	router := api.NewRouter(*cfg, h, redisCache, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
