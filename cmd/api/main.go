package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vaughan-dsouza/expert/internal/audit"
	"github.com/vaughan-dsouza/expert/internal/auth"
	"github.com/vaughan-dsouza/expert/internal/config"
	"github.com/vaughan-dsouza/expert/internal/db"
	"github.com/vaughan-dsouza/expert/internal/handlers"
	"github.com/vaughan-dsouza/expert/internal/logger"
	"github.com/vaughan-dsouza/expert/internal/middleware"
	"github.com/vaughan-dsouza/expert/internal/server"
	"github.com/vaughan-dsouza/expert/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New("api", cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if cfg.AccessSecret == "" {
		log.Error("ACCESS_SECRET is required")
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, db.PoolOptions{
		MaxOpen:     cfg.DBMaxOpen,
		MaxIdle:     cfg.DBMaxIdle,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		log.Error("db connect", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if cfg.AutoMigrate {
		m, err := db.NewMigrator(dbConn.DB, log)
		if err != nil {
			log.Error("configure migrations", "error", err)
			os.Exit(1)
		}
		if err := m.Up(context.Background()); err != nil {
			log.Error("apply migrations", "error", err)
			os.Exit(1)
		}
	}

	var limiter middleware.RateLimiter
	if cfg.RedisAddr != "" {
		limiter, err = middleware.NewRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable, using in-memory limiter", "addr", cfg.RedisAddr, "error", err)
		}
	}
	if limiter == nil {
		limiter = middleware.NewMemoryRateLimiter()
	}
	defer limiter.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		log.Error("register metrics", "error", err)
		os.Exit(1)
	}

	users := store.NewUsers(dbConn)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	authSvc := auth.New(users, hasher, auth.NewJWTIssuer(cfg.AccessSecret, cfg.AccessTTL), log)

	h := handlers.NewHandler(handlers.Deps{
		Auth:     authSvc,
		Hasher:   hasher,
		Users:    users,
		Todos:    store.NewTodos(dbConn),
		Comments: store.NewComments(dbConn),
		Logger:   log,
	})

	r := server.NewRouter(server.Options{
		Handlers:     h,
		AccessSecret: cfg.AccessSecret,
		AuditHook:    audit.LogHook(log.With("component", "audit")),
		Logger:       log,
		Limiter:      limiter,
		AuthLimit:    cfg.AuthRateLimit,
		Metrics:      metrics,
		Gatherer:     reg,
		Health:       dbConn.PingContext,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server exited")
}
