package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/middleware"
)

// AuthRoutes registers the token endpoint. Tokens are minted for API key holders only.
type AuthRoutes struct {
	handler *Handler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(handler *Handler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	handlers := []gin.HandlerFunc{r.handler.IssueToken}
	if cfg.EnableAuth {
		handlers = append([]gin.HandlerFunc{middleware.APIKeyAuth(cfg.APIKeys)}, handlers...)
	}
	rg.POST("/auth/token", handlers...)
}
