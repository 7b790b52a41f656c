package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dexsamir/portfolio/config"
	"github.com/dexsamir/portfolio/internal/auth"
	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/bootstrap"
	"github.com/dexsamir/portfolio/internal/cache"
	"github.com/dexsamir/portfolio/internal/ratelimit"
	"github.com/dexsamir/portfolio/internal/session"
	"github.com/dexsamir/portfolio/internal/site"
)

const serviceName = "portfolio-web"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := bootstrap.NewLogger(serviceName, cfg.App.LogLevel)
	slog.SetDefault(logger)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	content, err := site.Load(cfg.App.ContentPath)
	if err != nil {
		logger.Error("site content", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api, err := backend.New(cfg.Backend.URL,
		backend.WithAPIPrefix(cfg.Backend.APIPrefix),
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(logger),
		backend.WithMetrics(backend.NewMetrics(reg)),
	)
	if err != nil {
		logger.Error("backend client", "error", err)
		os.Exit(1)
	}

	snapshots := cache.NewSnapshots(rdb, api, cfg.Snapshot.Refresh, logger)
	refresher := cache.NewRefresher(snapshots, cfg.Snapshot.Refresh, logger)
	if err := refresher.Start(); err != nil {
		logger.Error("snapshot refresher", "error", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	limiter, err := ratelimit.New(cfg.RateLimit.Store, rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)
	if err != nil {
		logger.Error("rate limiter", "error", err)
		os.Exit(1)
	}

	sessions := auth.NewSessions(session.NewStore(rdb, cfg.Session.TTL), cfg.Session.CookieSecure, logger)

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		Backend:     api,
		Redis:       rdb,
		Snapshots:   snapshots,
		Sessions:    sessions,
		Limiter:     limiter,
		Site:        content,
		Registry:    reg,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr, "backend", api.BaseURL(), "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
