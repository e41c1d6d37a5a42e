package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
)

// CargoRoutes registers the packing and manual editing routes.
type CargoRoutes struct {
	handler *Handler
}

// NewCargoRoutes creates a new CargoRoutes instance.
func NewCargoRoutes(handler *Handler) *CargoRoutes {
	return &CargoRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *CargoRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	cargo := rg.Group("/cargo")
	{
		cargo.POST("/pack", scoped(cfg, dto.ScopeCargoPack, r.handler.Pack)...)
		cargo.POST("/pack/report", scoped(cfg, dto.ScopeCargoPack, r.handler.PackReport)...)
		cargo.POST("/snap", scoped(cfg, dto.ScopeCargoPack, r.handler.Snap)...)
		cargo.POST("/reposition", scoped(cfg, dto.ScopeCargoPack, r.handler.Reposition)...)
		cargo.POST("/placed", scoped(cfg, dto.ScopeCargoPack, r.handler.AddPlaced)...)
		cargo.POST("/placed/remove", scoped(cfg, dto.ScopeCargoPack, r.handler.RemovePlaced)...)
	}
}
