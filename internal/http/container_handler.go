package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/middleware"
)

// ListContainers handles GET /api/containers requests.
//
// @Summary      List containers
// @Description  Returns the built-in presets followed by custom containers, and the container used when a request names none.
// @Tags         Containers
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ContainerListResponse} "Available containers"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/containers [get]
func (h *Handler) ListContainers(c *gin.Context) {
	specs, err := h.containers.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.ContainerListResponse{
		Containers: specs,
		DefaultID:  h.containers.DefaultID(),
	})
}

// GetContainer handles GET /api/containers/:id requests.
//
// @Summary      Get a container
// @Tags         Containers
// @Produce      json
// @Param        id path string true "Container ID" example(20ft)
// @Success      200 {object} dto.SuccessResponse{data=model.ContainerSpec} "Container"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/containers/{id} [get]
func (h *Handler) GetContainer(c *gin.Context) {
	spec, err := h.containers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(spec)
}

// CreateContainer handles POST /api/containers requests.
//
// @Summary      Create a custom container
// @Description  Stores a custom container under a generated ID.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        request body dto.ContainerRequest true "Container definition"
// @Success      201 {object} dto.SuccessResponse{data=model.ContainerSpec} "Created container"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid container"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing containers:write scope"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/containers [post]
func (h *Handler) CreateContainer(c *gin.Context) {
	req, ok := bind[dto.ContainerRequest](c)
	if !ok {
		return
	}

	spec, err := h.containers.Create(c.Request.Context(), req.Spec(""), middleware.GetSubject(c))
	if err != nil {
		fail(c, err)
		return
	}

	audit(c, "container_create", "Custom container created", map[string]any{"container_id": spec.ID})
	NewResponseBuilder(c).SuccessCreated(spec)
}

// PutContainer handles PUT /api/containers/:id requests.
//
// @Summary      Create or replace a custom container
// @Description  Stores a custom container under the given ID. Preset IDs are read-only.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        id path string true "Container ID" example(reefer-20)
// @Param        request body dto.ContainerRequest true "Container definition"
// @Success      200 {object} dto.SuccessResponse{data=model.ContainerSpec} "Stored container"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid container"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing containers:write scope"
// @Failure      409 {object} dto.ErrorResponse "Preset containers are read-only"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/containers/{id} [put]
func (h *Handler) PutContainer(c *gin.Context) {
	req, ok := bind[dto.ContainerRequest](c)
	if !ok {
		return
	}

	spec, err := h.containers.Upsert(c.Request.Context(), req.Spec(c.Param("id")), middleware.GetSubject(c))
	if err != nil {
		auditError(c, "container_upsert", "Custom container rejected", err, map[string]any{"container_id": c.Param("id")})
		fail(c, err)
		return
	}

	audit(c, "container_upsert", "Custom container stored", map[string]any{"container_id": spec.ID})
	NewResponseBuilder(c).SuccessOK(spec)
}

// DeleteContainer handles DELETE /api/containers/:id requests.
//
// @Summary      Delete a custom container
// @Tags         Containers
// @Param        id path string true "Container ID" example(reefer-20)
// @Success      204 "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing containers:write scope"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      409 {object} dto.ErrorResponse "Preset containers are read-only"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/containers/{id} [delete]
func (h *Handler) DeleteContainer(c *gin.Context) {
	id := c.Param("id")
	if err := h.containers.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	audit(c, "container_delete", "Custom container deleted", map[string]any{"container_id": id})
	c.Status(204)
}

// ListConstraints handles GET /api/constraints requests.
//
// @Summary      List constraints
// @Description  Returns every constraint tag with its label, description and badge color in the caller's language.
// @Tags         Containers
// @Produce      json
// @Param        Accept-Language header string false "Language (en, tr)"
// @Success      200 {object} dto.SuccessResponse{data=dto.ConstraintListResponse} "Constraint catalog"
// @Router       /api/constraints [get]
func (h *Handler) ListConstraints(c *gin.Context) {
	locale := i18n.GetLocale(c)
	tr := i18n.GetTranslator()

	infos := make([]model.ConstraintInfo, 0, len(model.AllConstraints))
	for _, tag := range model.AllConstraints {
		infos = append(infos, model.ConstraintInfo{
			Type:        tag,
			Label:       tr.Translate(i18n.ConstraintLabelPrefix+string(tag), locale),
			Description: tr.Translate(i18n.ConstraintDescriptionPrefix+string(tag), locale),
			Color:       tag.Color(),
		})
	}
	NewResponseBuilder(c).SuccessOK(dto.ConstraintListResponse{Constraints: infos, Locale: locale})
}
