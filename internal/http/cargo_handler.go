package http

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/report"
)

// Pack handles POST /api/cargo/pack requests.
//
// @Summary      Pack cargo into a container
// @Description  Expands every item spec into units and places them in the container, heaviest and largest first, honoring rotation, fragile, top, bottom and weight constraints. Units that cannot be placed are listed as unpacked. Supports idempotency via Idempotency-Key header.
// @Tags         Cargo
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackRequest true "Container selection and item specs"
// @Success      200 {object} dto.SuccessResponse{data=model.PackingResult} "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid items or container"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing cargo:pack scope"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/pack [post]
func (h *Handler) Pack(c *gin.Context) {
	req, ok := bind[dto.PackRequest](c)
	if !ok {
		return
	}

	_, result, ok := h.pack(c, req)
	if !ok {
		return
	}

	audit(c, "pack", "Cargo packed", map[string]any{"items": len(req.Items)})
	NewResponseBuilder(c).SuccessOK(result)
}

// PackReport handles POST /api/cargo/pack/report requests.
//
// @Summary      Pack cargo and download a report
// @Description  Packs the request exactly like /api/cargo/pack and renders the result as a PDF load plan, a PDF sheet of QR-coded labels or an Excel workbook.
// @Tags         Cargo
// @Accept       json
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "Report format" Enums(pdf, labels, xlsx) default(pdf)
// @Param        title query string false "Document title"
// @Param        Accept-Language header string false "Report language (en, tr)"
// @Param        request body dto.PackRequest true "Container selection and item specs"
// @Success      200 {file} file "Rendered report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid items or nothing to label"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      415 {object} dto.ErrorResponse "Unsupported report format"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/pack/report [post]
func (h *Handler) PackReport(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}

	req, ok := bind[dto.PackRequest](c)
	if !ok {
		return
	}

	container, result, ok := h.pack(c, req)
	if !ok {
		return
	}

	h.writeReport(c, format, report.Plan{Title: c.Query("title"), Container: container, Result: result})
}

// pack resolves the container and runs the packer. It writes the error response and returns false on failure.
func (h *Handler) pack(c *gin.Context, req *dto.PackRequest) (model.ContainerSpec, model.PackingResult, bool) {
	req.ApplyDefaults()

	container, err := h.containers.Resolve(c.Request.Context(), req.ContainerID, req.Container)
	if err != nil {
		fail(c, err)
		return model.ContainerSpec{}, model.PackingResult{}, false
	}

	result, err := h.packer.Pack(req.Items, container)
	if err != nil {
		auditError(c, "pack", "Cargo packing rejected", err, map[string]any{"container_id": container.ID})
		fail(c, err)
		return model.ContainerSpec{}, model.PackingResult{}, false
	}
	middleware.SetPackStats(c, container.ID, len(result.Placed), len(result.Unpacked))
	return container, result, true
}

// writeReport renders plan into memory first so that a rendering failure still yields a JSON error.
func (h *Handler) writeReport(c *gin.Context, format report.Format, plan report.Plan) {
	var buf bytes.Buffer
	opts := report.Options{Locale: i18n.GetLocale(c), GeneratedAt: h.clock()}
	if err := report.Render(&buf, format, plan, opts); err != nil {
		fail(c, err)
		return
	}

	audit(c, "report", "Load plan report rendered", map[string]any{
		"format":       string(format),
		"container_id": plan.Container.ID,
		"placed":       len(plan.Result.Placed),
	})
	NewResponseBuilder(c).Attachment(format.ContentType(), format.FileName(slug(plan.Title)), buf.Bytes())
}

// Snap handles POST /api/cargo/snap requests.
//
// @Summary      Snap a dragged item
// @Description  Aligns a dragged box to the container walls and to the faces of nearby placements within the snap threshold, clamps it inside the container and reports whether it overlaps another placement. Overlaps are reported, not resolved.
// @Tags         Cargo
// @Accept       json
// @Produce      json
// @Param        request body dto.SnapRequest true "Drag state"
// @Success      200 {object} dto.SuccessResponse{data=model.SnapResult} "Snapped position"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid drag state or box larger than the container"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/snap [post]
func (h *Handler) Snap(c *gin.Context) {
	req, ok := bind[dto.SnapRequest](c)
	if !ok {
		return
	}

	container, err := h.containers.Resolve(c.Request.Context(), req.ContainerID, req.Container)
	if err != nil {
		fail(c, err)
		return
	}
	if err := req.CheckFits(container); err != nil {
		fail(c, err)
		return
	}

	result := h.packer.Snap(req.Position, req.DraggedDimensions(), container, req.Placed, req.SelfIndex)
	NewResponseBuilder(c).SuccessOK(result)
}

// Reposition handles POST /api/cargo/reposition requests.
//
// @Summary      Move a placement
// @Description  Moves one placement to a new position, optionally snapping it first, and recomputes utilization. The caller owns the plan state; the server keeps none between calls.
// @Tags         Cargo
// @Accept       json
// @Produce      json
// @Param        request body dto.RepositionRequest true "Plan state and move"
// @Success      200 {object} dto.SuccessResponse{data=model.PackingResult} "Updated plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid plan state or index out of range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/reposition [post]
func (h *Handler) Reposition(c *gin.Context) {
	req, ok := bind[dto.RepositionRequest](c)
	if !ok {
		return
	}

	container, err := h.containers.Resolve(c.Request.Context(), req.ContainerID, req.Container)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.packer.Reposition(req.Result(), container, req.Index, req.Position, req.Snap)
	if err != nil {
		fail(c, err)
		return
	}

	audit(c, "reposition", "Placement moved", map[string]any{"container_id": container.ID, "index": req.Index, "snap": req.Snap})
	NewResponseBuilder(c).SuccessOK(result)
}

// AddPlaced handles POST /api/cargo/placed requests.
//
// @Summary      Add a placement
// @Description  Binds a unit to a caller-chosen position and orientation and recomputes utilization. No collision or constraint check is made; use /api/cargo/snap to test a position first.
// @Tags         Cargo
// @Accept       json
// @Produce      json
// @Param        request body dto.AddPlacedRequest true "Plan state and new placement"
// @Success      200 {object} dto.SuccessResponse{data=model.PackingResult} "Updated plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid plan state"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/placed [post]
func (h *Handler) AddPlaced(c *gin.Context) {
	req, ok := bind[dto.AddPlacedRequest](c)
	if !ok {
		return
	}

	container, err := h.containers.Resolve(c.Request.Context(), req.ContainerID, req.Container)
	if err != nil {
		fail(c, err)
		return
	}

	result := h.packer.AddPlaced(req.Result(), container, req.Item)

	audit(c, "add_placed", "Placement added", map[string]any{"container_id": container.ID, "unit_id": req.Item.Item.ID})
	NewResponseBuilder(c).SuccessOK(result)
}

// RemovePlaced handles POST /api/cargo/placed/remove requests.
//
// @Summary      Remove a placement
// @Description  Takes one placement out of the plan and appends its unit to the unpacked list.
// @Tags         Cargo
// @Accept       json
// @Produce      json
// @Param        request body dto.RemovePlacedRequest true "Plan state and index"
// @Success      200 {object} dto.SuccessResponse{data=dto.RemovePlacedResponse} "Updated plan and removed unit"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid plan state or index out of range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/cargo/placed/remove [post]
func (h *Handler) RemovePlaced(c *gin.Context) {
	req, ok := bind[dto.RemovePlacedRequest](c)
	if !ok {
		return
	}

	container, err := h.containers.Resolve(c.Request.Context(), req.ContainerID, req.Container)
	if err != nil {
		fail(c, err)
		return
	}

	result, removed, err := h.packer.RemovePlaced(req.Result(), container, req.Index)
	if err != nil {
		fail(c, err)
		return
	}

	audit(c, "remove_placed", "Placement removed", map[string]any{"container_id": container.ID, "unit_id": removed.ID})
	NewResponseBuilder(c).SuccessOK(dto.RemovePlacedResponse{Result: result, Removed: removed})
}
