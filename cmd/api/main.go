// @title       pet-finder API
// @version     1.0
// @description Reportes de mascotas perdidas y avistamientos, ranking de coincidencias, zona de búsqueda, riesgo y alertas.
// @BasePath    /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-finder/internal/adapters/events"
	s3store "pet-finder/internal/adapters/media/s3"
	"pet-finder/internal/adapters/notify/webhook"
	"pet-finder/internal/adapters/storage/localkv"
	"pet-finder/internal/adapters/storage/memory"
	pg "pet-finder/internal/adapters/storage/postgres"
	"pet-finder/internal/config"
	"pet-finder/internal/domain/alerts"
	"pet-finder/internal/domain/reports"
	"pet-finder/internal/metrics"
	"pet-finder/internal/platform/logger"
	"pet-finder/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}
	log = log.With(map[string]any{"env": cfg.Env})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:        log,
		Metrics:       metrics.Default(),
		Scoring:       cfg.ScoringConfig(),
		AlertRadiusKm: &cfg.DefaultAlertRadiusKm,
		Seed:          cfg.SeedData,
	}

	// Storage: Postgres > snapshot local > memoria
	var db *sql.DB
	switch {
	case cfg.DatabaseDSN != "":
		db, err = pg.Open(cfg.DatabaseDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()
		if err := pg.EnsureSchema(ctx, db); err != nil {
			log.Error("postgres schema failed", map[string]any{"err": err})
			os.Exit(1)
		}
		opts.DB = db
		log.Info("storage: postgres", nil)
	case cfg.DataDir != "":
		kv, err := localkv.Open(cfg.DataDir)
		if err != nil {
			log.Error("snapshot dir failed", map[string]any{"err": err, "dir": cfg.DataDir})
			os.Exit(1)
		}
		opts.Snapshots = memory.Snapshotter(kv)
		log.Info("storage: memory + snapshots", map[string]any{"dir": cfg.DataDir})
	default:
		log.Info("storage: memory", nil)
	}

	if cfg.S3Enabled() {
		store, err := s3store.New(ctx, s3store.Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			log.Error("s3 init failed", map[string]any{"err": err})
			os.Exit(1)
		}
		opts.PhotoStore = reports.PhotoStore(store)
	}

	// Sinks de notificaciones
	var sinks []alerts.Sink
	if cfg.NATSURL != "" {
		natsSink := events.NewSink(events.Connect(cfg.NATSURL, log))
		defer natsSink.Close()
		sinks = append(sinks, natsSink)
	}
	if cfg.WebhookURL != "" {
		hook, err := webhook.New(cfg.WebhookURL, cfg.WebhookSecret, cfg.WebhookTimeout)
		if err != nil {
			log.Error("webhook config failed", map[string]any{"err": err})
			os.Exit(1)
		}
		sinks = append(sinks, hook)
	}
	opts.Sinks = sinks

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"err": err})
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", map[string]any{"err": err})
	}
	log.Info("server stopped", nil)
}
