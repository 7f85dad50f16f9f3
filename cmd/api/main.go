package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yuvrajghadi/thakkar-backend/internal/auth"
	"github.com/yuvrajghadi/thakkar-backend/internal/cache"
	"github.com/yuvrajghadi/thakkar-backend/internal/config"
	httpx "github.com/yuvrajghadi/thakkar-backend/internal/http"
	"github.com/yuvrajghadi/thakkar-backend/internal/observability"
	"github.com/yuvrajghadi/thakkar-backend/internal/repo/mongodb"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Env)

	// make the trace-aware logger the default so middleware and
	// handlers pick it up
	slog.SetDefault(log)

	// optional tracing
	var traceShutdown func(context.Context) error

	if cfg.OtelEnabled {
		shutdown, err := observability.InitTracer(context.Background(), "thakkar-backend", cfg.OtelEndpoint)

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}

		traceShutdown = shutdown
	}

	// document store: connect once, injected everywhere
	store, err := mongodb.Connect(context.Background(), cfg.MongoURL, cfg.MongoDB)

	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}

	seedCtx, seedCancel := config.WithTimeout(5 * time.Second)
	err = mongodb.EnsureAdminUser(seedCtx, store, cfg)
	seedCancel()

	if err != nil {
		log.Error("admin seed failed", "err", err)
		os.Exit(1)
	}

	// optional list cache
	var cacheClient *cache.Client

	if cfg.RedisAddr != "" {
		cacheClient = cache.New(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, pingCancel := config.WithTimeout(2 * time.Second)
		err = cacheClient.Ping(pingCtx)
		pingCancel()

		if err != nil {
			// degrade to uncached rather than refusing to start
			log.Warn("redis unreachable, caching disabled", "err", err)
			_ = cacheClient.Close()
			cacheClient = nil
		}
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewProm(registry)

	jwtManager := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	router := httpx.NewRouter(httpx.Deps{
		Cfg:      cfg,
		Store:    store,
		Cache:    cacheClient,
		Metrics:  metrics,
		Registry: registry,
		JWT:      jwtManager,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	ctx, cancel := config.WithTimeout(10 * time.Second)
	defer cancel()

	err = srv.Shutdown(ctx)

	if err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}

	if cacheClient != nil {
		_ = cacheClient.Close()
	}

	err = store.Close(ctx)

	if err != nil {
		log.Error("mongo disconnect failed", "err", err)
	}

	if traceShutdown != nil {
		_ = traceShutdown(ctx)
	}

	log.Info("shutdown complete")
}
