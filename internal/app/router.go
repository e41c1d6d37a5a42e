// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/http"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/guttosm/cargo-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// Close stops the background sweepers owned by the router.
func (r *RouterComponents) Close() {
	if r != nil && r.Config.IdempotencyStore != nil {
		r.Config.IdempotencyStore.Stop()
	}
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var containersRepo repository.ContainersRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		containersRepo = dbComponents.ContainersRepo
		loggingService = dbComponents.LoggingService
	}

	// Custom containers fall back to process memory without MongoDB.
	containers := service.NewContainerService(containersRepo,
		service.WithDefaultContainer(cfg.Packing.DefaultContainer),
		service.WithContainerChangeHook(services.Packer.InvalidateCache),
	)

	var opts []http.HandlerOption
	if dbComponents != nil && dbComponents.ManifestsRepo != nil {
		opts = append(opts, http.WithManifests(service.NewManifestService(dbComponents.ManifestsRepo, containers)))
	}
	if services.Tokens != nil {
		opts = append(opts, http.WithTokens(services.Tokens))
	}
	if loggingService != nil {
		opts = append(opts, http.WithAuditLog(loggingService))
	}

	handler := http.NewHandler(services.Packer, containers, opts...)
	healthHandler := http.NewHealthHandler()

	// Register dependencies for readiness monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: db})
			healthHandler.RegisterStats("mongodb_documents", func() any {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				counts, err := db.Counts(ctx)
				if err != nil {
					return err.Error()
				}
				return counts
			})
		}
		breakers := map[string]*circuitbreaker.CircuitBreaker{
			"mongodb_containers": dbComponents.ContainersCircuitBreaker,
			"mongodb_manifests":  dbComponents.ManifestsCircuitBreaker,
			"mongodb_logs":       dbComponents.LogsCircuitBreaker,
		}
		for name, cb := range breakers {
			if cb != nil {
				healthHandler.RegisterCircuitBreaker(name, cb)
			}
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RateBurst:         cfg.Server.RateBurst,
		RouteCosts:        middleware.DefaultRouteCosts(),
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           middleware.NewAPIKeyValidator(cfg.Auth.APIKeys, cfg.Auth.APIKeyHashes),
		TokenService:      services.Tokens,
		EnableIdempotency: true,
		IdempotencyStore:  middleware.NewIdempotencyStore(cfg.Server.IdempotencyCapacity, cfg.Server.IdempotencyTTL),
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}

	store := routerCfg.IdempotencyStore
	healthHandler.RegisterStats("idempotency_keys", func() any { return store.Len() })
	if loggingService != nil {
		healthHandler.RegisterStats("audit_log", func() any {
			if al := middleware.GetAsyncLogger(); al != nil {
				return al.Stats()
			}
			return nil
		})
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
