package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farm-records/internal/adapters/storage"
	"farm-records/internal/config"
	"farm-records/internal/platform/logger"
	"farm-records/internal/platform/metrics"
	"farm-records/internal/router"
)

// @title        farm-records API
// @version      1.0
// @description  Registro de clientes, alimentaciones y porcinos.
// @BasePath     /
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config", map[string]any{"err": err})
		return 1
	}
	log := logger.New(cfg.LoggerOptions())
	defer func() { _ = log.Sync() }()

	timeout, err := cfg.Timeout()
	if err != nil {
		log.Error("config", map[string]any{"err": err})
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("open store", map[string]any{"err": err, "driver": cfg.Store.Driver})
		return 1
	}
	defer closeStore()

	h, err := router.NewRouter(router.Options{
		Store:          store,
		Logger:         log,
		Metrics:        metrics.New(),
		FrontendURL:    cfg.FrontendURL,
		RequestTimeout: timeout,
	})
	if err != nil {
		log.Error("build router", map[string]any{"err": err})
		return 1
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": cfg.Store.Driver})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", map[string]any{"err": err})
			return 1
		}
	}
	return 0
}
