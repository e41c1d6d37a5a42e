package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
)

// ContainerRoutes registers the container catalog and constraint routes.
// Reads need only an authenticated caller; writes need the containers:write scope.
type ContainerRoutes struct {
	handler *Handler
}

// NewContainerRoutes creates a new ContainerRoutes instance.
func NewContainerRoutes(handler *Handler) *ContainerRoutes {
	return &ContainerRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *ContainerRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/constraints", r.handler.ListConstraints)

	containers := rg.Group("/containers")
	{
		containers.GET("", r.handler.ListContainers)
		containers.GET("/:id", r.handler.GetContainer)
		containers.POST("", scoped(cfg, dto.ScopeContainersWrite, r.handler.CreateContainer)...)
		containers.PUT("/:id", scoped(cfg, dto.ScopeContainersWrite, r.handler.PutContainer)...)
		containers.DELETE("/:id", scoped(cfg, dto.ScopeContainersWrite, r.handler.DeleteContainer)...)
	}
}
