package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"pet-store-inventory/internal/adapters/taxonomy/ninjas"
	"pet-store-inventory/internal/config"
	"pet-store-inventory/internal/platform/httpclient"
	"pet-store-inventory/internal/platform/ids"
	"pet-store-inventory/internal/platform/logger"
	"pet-store-inventory/internal/platform/metrics"
	"pet-store-inventory/internal/router"
)

// @title Pet Store Inventory API
// @version 1.0
// @description Inventario de especies y mascotas con cache de imágenes.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	gen, err := ids.New(cfg.IDStrategy)
	if err != nil {
		log.Fatal("invalid id strategy", zap.Error(err))
	}

	taxonomy := ninjas.NewClient(ninjas.Config{
		BaseURL:  cfg.NinjaBaseURL,
		APIKey:   cfg.NinjaAPIKey,
		Timeout:  cfg.TaxonomyTimeout,
		CacheTTL: cfg.TaxonomyCacheTTL,
	}, httpclient.New(cfg.TaxonomyTimeout), log, m)
	if !taxonomy.IsConfigured() {
		log.Warn("NINJA_API_KEY not set; pet type creation will fail upstream")
	}

	handler := router.NewRouter(router.Options{
		Logger:         log,
		Registry:       reg,
		Metrics:        m,
		Taxonomy:       taxonomy,
		PictureFetcher: httpclient.New(cfg.PictureFetchTimeout),
		PictureTimeout: cfg.PictureFetchTimeout,
		IDs:            gen,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.PictureFetchTimeout + cfg.TaxonomyTimeout + 5*time.Second,
	}

	go func() {
		log.Info("HTTP server starting",
			zap.String("addr", srv.Addr),
			zap.String("id_strategy", cfg.IDStrategy),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
