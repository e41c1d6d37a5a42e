package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
)

// AuditRoutes registers the log query route. It needs the audit:read scope.
type AuditRoutes struct {
	handler *Handler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(handler *Handler) *AuditRoutes {
	return &AuditRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/audit", scoped(cfg, dto.ScopeAuditRead, r.handler.ListAuditLog)...)
}
