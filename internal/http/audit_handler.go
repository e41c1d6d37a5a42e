package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/service"
)

// ListAuditLog handles GET /api/audit requests.
//
// @Summary      Query the access and audit log
// @Description  Returns persisted request and audit entries, newest first. Filters combine with AND.
// @Tags         Audit
// @Produce      json
// @Param        kind query string false "Entry kind" Enums(request, audit)
// @Param        level query string false "Level" Enums(info, warn, error)
// @Param        subject query string false "Caller subject"
// @Param        action query string false "Audit action, e.g. pack or container_upsert"
// @Param        container_id query string false "Container ID"
// @Param        manifest_id query string false "Manifest ID"
// @Param        request_id query string false "Request ID"
// @Param        path_prefix query string false "Request path prefix"
// @Param        since query string false "Earliest timestamp (RFC 3339)"
// @Param        until query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size" default(50) maximum(500)
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=model.LogPage} "Log page"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - audit:read scope required"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/audit [get]
func (h *Handler) ListAuditLog(c *gin.Context) {
	if h.logs == nil {
		fail(c, service.ErrRepositoryNotConfigured)
		return
	}

	var q dto.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidLogFilter, err)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		fail(c, err)
		return
	}

	page, err := h.logs.QueryLogs(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(page)
}
