package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"zookeepr-api/internal/config"
	"zookeepr-api/internal/domain/animals"
	"zookeepr-api/internal/platform/logger"
	"zookeepr-api/internal/platform/metrics"
	"zookeepr-api/internal/router"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// cmdServe no declara flags: los de config se heredan del comando raíz.
func cmdServe() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server (default when no command is given)",
		Action:  serveAction,
	}
}

func serveAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.FromCommand(c)
	if err != nil {
		return goerr.Wrap(err, "failed to load configuration")
	}

	log := cfg.Logger()
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}
	log.Info("starting zookeepr-api", cfg.LogFields())

	repo, closeRepo, err := cfg.Store.OpenRepository(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("failed to close store", map[string]any{"error": err.Error()})
		}
	}()

	bus, err := animals.NewBus()
	if err != nil {
		return err
	}

	svc := animals.NewService(repo, animals.WithBus(bus))
	if err := svc.Load(ctx); err != nil {
		return goerr.Wrap(err, "failed to seed animals")
	}
	log.Info("animals loaded", map[string]any{"count": svc.Count()})

	var m *metrics.Metrics
	if cfg.HTTP.Metrics {
		m = metrics.New()
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Service: svc,
			Bus:     bus,
			Logger:  log,
			Metrics: m,
			Swagger: cfg.HTTP.Swagger,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("API server now on "+cfg.Port, map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return goerr.Wrap(err, "server error", goerr.V("addr", srv.Addr))
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "graceful shutdown")
	}
	return nil
}
