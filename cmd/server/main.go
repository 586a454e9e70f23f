package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wayfarer/tracker/internal/api"
	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/db"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/routes"
	"wayfarer/tracker/internal/workers"
)

// @title Wayfarer Tracker API
// @version 1.0
// @description Airport boards, flight emissions and traveller passports.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Tracker starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	dsn := cfg.PostgresDSN()

	// Connect to DB with sqlx
	if err := db.InitPostgres(dsn); err != nil {
		logging.Fatal("Failed to connect to Postgres (sqlx)", "error", err.Error())
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	gormDB, err := db.InitPostgresORM(dsn)
	if err != nil {
		logging.Fatal("Failed to connect to Postgres (GORM)", "error", err.Error())
	}
	if err := db.Migrate(gormDB); err != nil {
		logging.Fatal("Failed to migrate schema", "error", err.Error())
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	var baseCache common.CacheInterface
	var redisPinger api.Pinger
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := common.NewRedisCacheService(common.NewRedisClient(cfg))
		if err != nil {
			logging.Fatal("Failed to initialize Redis cache", "error", err.Error())
		}
		baseCache = redisCache
		redisPinger = api.PingFunc(redisCache.Ping)
	default:
		baseCache = common.NewCacheService(time.Hour, 10*time.Minute)
	}
	cache := common.NewInstrumentedCache(baseCache, metricsReg)
	defer cache.Close()
	logging.Info("Cache initialized", "backend", cfg.CacheBackend)

	deps, err := api.InitDependencies(cfg, db.DB, gormDB, cache, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}
	deps.RedisPinger = redisPinger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workersContainer := workers.InitWorkers(ctx, cfg, deps.Repo.Airports, cache, metricsReg)
	deps.CodeRefresher = workersContainer.AirportCodes

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, metricsReg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("Server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logging.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error("Graceful shutdown failed", "error", err.Error())
	}
}
