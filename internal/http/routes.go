package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// scoped prefixes handler with a scope check when authentication is enabled.
func scoped(cfg *RouterConfig, scope string, handler gin.HandlerFunc) []gin.HandlerFunc {
	if !cfg.EnableAuth {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{middleware.RequireScope(scope), handler}
}
