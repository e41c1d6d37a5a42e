// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/http"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// App holds the wired HTTP router and the resources that must be released on shutdown.
type App struct {
	Router   *gin.Engine
	services *ServiceComponents
	database *DatabaseComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg)

	// Initialize business services
	serviceComponents := InitializeServices(cfg)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.AsyncLoggerConfig{
			QueueSize:     cfg.Database.AuditQueueSize,
			BatchSize:     cfg.Database.AuditBatchSize,
			FlushInterval: cfg.Database.AuditFlushInterval,
		})
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		router:   routerComponents,
	}
}

// Close drains the audit log queue, stops the background sweepers and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	a.router.Close()
	if a.services != nil && a.services.Packer != nil {
		a.services.Packer.Close()
	}
	if err := a.database.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		return err
	}
	return nil
}
