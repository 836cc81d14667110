package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/disease-risk-server/internal/api"
	"github.com/disease-risk-server/internal/cache"
	"github.com/disease-risk-server/internal/config"
	"github.com/disease-risk-server/internal/database"
	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/engine"
	"github.com/disease-risk-server/internal/history"
	"github.com/disease-risk-server/internal/knowledge"
	"github.com/disease-risk-server/internal/repository"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"host":    cfg.Server.Host,
		"port":    cfg.Server.Port,
		"backend": cfg.History.Backend,
	}).Info("Starting disease risk server")

	base, err := knowledge.NewBase()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load knowledge base")
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open history store")
	}
	defer store.Close()

	// The pgx pool serves read-side dashboard aggregation; the sqlite
	// backend has no shared history to aggregate beyond its own store.
	var dashboard *repository.DashboardRepository
	if cfg.History.Backend == "postgres" {
		db, err := database.NewConnection(context.Background(), cfg.Database, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()
		dashboard = repository.NewDashboardRepository(db.Pool, logger)
	}

	predCache, err := cache.NewPredictionCache(cfg.Cache.LRUSize)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create prediction cache")
	}

	var dashCache *cache.DashboardCache
	if cfg.Cache.Enabled {
		dashCache, err = cache.NewDashboardCache(cfg.Cache, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer dashCache.Close()
	}

	server := api.NewServer(cfg, api.Deps{
		Base:      base,
		Scorer:    engine.NewScorer(base, logger),
		Analyzer:  engine.NewMissingAnalyzer(base),
		Store:     store,
		PredCache: predCache,
		DashCache: dashCache,
		Dashboard: dashboard,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

// newStore opens the configured history backend, running migrations first
// for postgres.
func newStore(cfg *domain.Config, logger *logrus.Logger) (history.Store, error) {
	switch cfg.History.Backend {
	case "postgres":
		runner, err := database.NewMigrationRunner(
			database.URL(cfg.Database), cfg.Database.MigrationsPath, logger)
		if err != nil {
			return nil, err
		}
		defer runner.Close()
		if err := runner.Up(); err != nil {
			return nil, err
		}
		return history.NewPostgresStore(database.DSN(cfg.Database))
	default:
		return history.NewSQLiteStore(cfg.History.SQLitePath)
	}
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
