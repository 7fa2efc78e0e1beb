package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wvaughn-dev/setforge/internal/adapters/rest"
	"github.com/wvaughn-dev/setforge/internal/adapters/soundcloud"
	"github.com/wvaughn-dev/setforge/internal/adapters/sqlite"
	"github.com/wvaughn-dev/setforge/internal/config"
	"github.com/wvaughn-dev/setforge/internal/core/services"
	"github.com/wvaughn-dev/setforge/internal/worker"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("configuration error")
	}

	logger := newLogger(cfg.LogLevel)

	// Driven adapters: the track cache and the catalog.
	cache, err := sqlite.NewAdapter(cfg.CachePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize track cache")
	}
	defer cache.Close()

	authCtx, cancelAuth := context.WithCancel(context.Background())
	defer cancelAuth()
	httpClient := soundcloud.NewAuthenticatedClient(authCtx, cfg.SoundCloudClientID, cfg.SoundCloudClientSecret)
	catalog := soundcloud.NewClient(httpClient, logger)

	// Core service, with the cache fronting the catalog.
	cachedCatalog := services.NewCachedCatalog(catalog, cache, logger)
	generator := services.NewGenerator(cachedCatalog, logger)

	// Background preview analysis.
	pool := worker.NewPool(cache, logger, cfg.AnalysisWorkers, cfg.AnalysisQueueSize)
	pool.Start()
	defer pool.Stop()

	handler := rest.NewHandler(generator, pool, logger)

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("setforge API listening")

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
