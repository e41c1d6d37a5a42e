package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/metrics"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	RateBurst  int
	// RouteCosts charges the listed route templates more than one token.
	RouteCosts     map[string]int
	RequestTimeout time.Duration
	EnableAuth     bool
	APIKeys        *middleware.APIKeyValidator
	TokenService   service.TokenService
	// IdempotencyStore is used when EnableIdempotency is set. Nil creates a default store.
	EnableIdempotency bool
	IdempotencyStore  *middleware.IdempotencyStore
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: false,
	}
}

// NewRouter creates and configures the Gin router for the cargo service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	if handler == nil {
		return router
	}

	// Token minting sits outside the authenticated group: it accepts API keys only.
	if tokenRoutesEnabled(handler, &cfg) {
		NewAuthRoutes(handler).RegisterRoutes(router.Group("/api"), &cfg)
	}

	// Configure API routes
	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	groups := []RouteGroup{
		NewCargoRoutes(handler),
		NewContainerRoutes(handler),
		NewManifestRoutes(handler),
	}
	if handler.logs != nil {
		groups = append(groups, NewAuditRoutes(handler))
	}
	for _, group := range groups {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// tokenRoutesEnabled reports whether the token endpoint can be served safely.
// With auth enabled it requires API keys; otherwise any bearer holder could mint tokens.
func tokenRoutesEnabled(handler *Handler, cfg *RouterConfig) bool {
	if handler.tokens == nil {
		return false
	}
	return !cfg.EnableAuth || cfg.APIKeys.Enabled()
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	// CORS configuration
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Context setup middleware
	router.Use(func(c *gin.Context) {
		if cfg.LoggingService != nil {
			c.Set("logging_service", cfg.LoggingService)
		}
		c.Next()
	})

	// Global rate limiting
	if cfg.RateLimit > 0 {
		router.Use(newRateLimiter(cfg).RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(middleware.ReportTimeout(cfg.RequestTimeout)))
	}

	// Callers authenticate with an API key or a bearer token; limits then apply per subject.
	if cfg.EnableAuth {
		var tokens middleware.TokenValidator
		if cfg.TokenService != nil {
			tokens = cfg.TokenService
		}
		api.Use(middleware.Authenticate(cfg.APIKeys, tokens))

		if cfg.RateLimit > 0 {
			api.Use(newRateLimiter(cfg).SubjectRateLimit())
		}
	}

	// Idempotency runs after authentication so keys are scoped to the caller.
	if cfg.EnableIdempotency {
		store := cfg.IdempotencyStore
		if store == nil {
			store = middleware.NewIdempotencyStore(middleware.DefaultIdempotencyCapacity, middleware.IdempotencyKeyTTL)
		}
		api.Use(middleware.Idempotency(middleware.IdempotencyConfig{Store: store, Enabled: true}))
	}
}

func newRateLimiter(cfg *RouterConfig) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow,
		middleware.WithBurst(cfg.RateBurst),
		middleware.WithRouteCosts(cfg.RouteCosts),
	)
}
