package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
)

// ManifestRoutes registers the saved manifest routes.
type ManifestRoutes struct {
	handler *Handler
}

// NewManifestRoutes creates a new ManifestRoutes instance.
func NewManifestRoutes(handler *Handler) *ManifestRoutes {
	return &ManifestRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *ManifestRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	manifests := rg.Group("/manifests")
	{
		manifests.GET("", r.handler.ListManifests)
		manifests.GET("/:id", r.handler.GetManifest)
		manifests.POST("", scoped(cfg, dto.ScopeManifestsWrite, r.handler.SaveManifest)...)
		manifests.DELETE("/:id", scoped(cfg, dto.ScopeManifestsWrite, r.handler.DeleteManifest)...)
		manifests.POST("/import", scoped(cfg, dto.ScopeCargoPack, r.handler.ImportManifest)...)
		manifests.POST("/:id/pack", scoped(cfg, dto.ScopeCargoPack, r.handler.PackManifest)...)
		manifests.POST("/:id/report", scoped(cfg, dto.ScopeCargoPack, r.handler.ManifestReport)...)
	}
}
