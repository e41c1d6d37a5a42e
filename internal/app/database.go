// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                       *repository.MongoDB
	ContainersRepo           repository.ContainersRepositoryInterface
	ManifestsRepo            repository.ManifestsRepositoryInterface
	LoggingService           service.LoggingService
	ContainersCircuitBreaker *circuitbreaker.CircuitBreaker
	ManifestsCircuitBreaker  *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker       *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.LogsTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
		cancel()
	}

	containersCB := newCircuitBreaker(cfg, "mongodb-containers")
	manifestsCB := newCircuitBreaker(cfg, "mongodb-manifests")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	return &DatabaseComponents{
		DB:                       db,
		ContainersRepo:           repository.NewContainersRepositoryWithCircuitBreaker(repository.NewContainersRepository(db), containersCB),
		ManifestsRepo:            repository.NewManifestsRepositoryWithCircuitBreaker(repository.NewManifestsRepository(db), manifestsCB),
		LoggingService:           service.NewLoggingService(logsRepo),
		ContainersCircuitBreaker: containersCB,
		ManifestsCircuitBreaker:  manifestsCB,
		LogsCircuitBreaker:       logsCB,
	}
}

// newCircuitBreaker builds a breaker from the database config, falling back to defaults for unset values.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = name
	cbCfg.IsFailure = repository.IsStoreFailure
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	return circuitbreaker.New(cbCfg)
}

// mongoChecker reports MongoDB reachability to the readiness probe.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check(ctx context.Context) error {
	return m.db.HealthCheck(ctx)
}

// Close stops background writers and disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
