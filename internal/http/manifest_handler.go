package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/manifest"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/report"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/guttosm/cargo-service/internal/service"
)

// manifestService returns the manifest service, writing a 503 when none is configured.
func (h *Handler) manifestService(c *gin.Context) (service.ManifestService, bool) {
	if h.manifests == nil {
		fail(c, service.ErrRepositoryNotConfigured)
		return nil, false
	}
	return h.manifests, true
}

// SaveManifest handles POST /api/manifests requests.
//
// @Summary      Save a manifest
// @Description  Stores a named item list, optionally bound to a container, so that the load can be planned again later.
// @Tags         Manifests
// @Accept       json
// @Produce      json
// @Param        request body dto.ManifestRequest true "Manifest"
// @Success      201 {object} dto.SuccessResponse{data=repository.ManifestDocument} "Saved manifest"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid manifest"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing manifests:write scope"
// @Failure      404 {object} dto.ErrorResponse "Container not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests [post]
func (h *Handler) SaveManifest(c *gin.Context) {
	manifests, ok := h.manifestService(c)
	if !ok {
		return
	}
	req, ok := bind[dto.ManifestRequest](c)
	if !ok {
		return
	}
	dto.ApplyItemDefaults(req.Items)

	doc, err := manifests.Save(c.Request.Context(), req.Name, req.ContainerID, req.Items, middleware.GetSubject(c))
	if err != nil {
		fail(c, err)
		return
	}

	audit(c, "manifest_save", "Manifest saved", map[string]any{"manifest_id": doc.ID.Hex(), "items": len(doc.Items)})
	NewResponseBuilder(c).SuccessCreated(doc)
}

// ListManifests handles GET /api/manifests requests.
//
// @Summary      List manifests
// @Description  Returns saved manifests, newest first.
// @Tags         Manifests
// @Produce      json
// @Param        limit query int false "Maximum number of manifests" default(50)
// @Success      200 {object} dto.SuccessResponse{data=[]repository.ManifestDocument} "Manifests"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests [get]
func (h *Handler) ListManifests(c *gin.Context) {
	manifests, ok := h.manifestService(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	docs, err := manifests.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	if docs == nil {
		docs = []repository.ManifestDocument{}
	}
	NewResponseBuilder(c).SuccessOK(docs)
}

// GetManifest handles GET /api/manifests/:id requests.
//
// @Summary      Get a manifest
// @Tags         Manifests
// @Produce      json
// @Param        id path string true "Manifest ID"
// @Success      200 {object} dto.SuccessResponse{data=repository.ManifestDocument} "Manifest"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Manifest not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests/{id} [get]
func (h *Handler) GetManifest(c *gin.Context) {
	manifests, ok := h.manifestService(c)
	if !ok {
		return
	}

	doc, err := manifests.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(doc)
}

// DeleteManifest handles DELETE /api/manifests/:id requests.
//
// @Summary      Delete a manifest
// @Tags         Manifests
// @Param        id path string true "Manifest ID"
// @Success      204 "Deleted"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - missing manifests:write scope"
// @Failure      404 {object} dto.ErrorResponse "Manifest not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests/{id} [delete]
func (h *Handler) DeleteManifest(c *gin.Context) {
	manifests, ok := h.manifestService(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := manifests.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	audit(c, "manifest_delete", "Manifest deleted", map[string]any{"manifest_id": id})
	c.Status(http.StatusNoContent)
}

// ImportManifest handles POST /api/manifests/import requests.
//
// @Summary      Parse a manifest file
// @Description  Reads an uploaded YAML, JSON (comments allowed), CSV or Excel item list and returns the parsed items. Nothing is stored. The format is taken from the form field or the file extension.
// @Tags         Manifests
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Manifest file"
// @Param        format formData string false "File format" Enums(yaml, json, csv, xlsx)
// @Success      200 {object} dto.SuccessResponse{data=dto.ManifestImportResponse} "Parsed manifest"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unreadable manifest"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      415 {object} dto.ErrorResponse "Unsupported file format"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests/import [post]
func (h *Handler) ImportManifest(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if header.Size > manifest.MaxSize {
		fail(c, fmt.Errorf("%w: file exceeds %d bytes", manifest.ErrInvalidManifest, manifest.MaxSize))
		return
	}

	var format manifest.Format
	if name := c.PostForm("format"); name != "" {
		format, err = manifest.ParseFormat(name)
	} else {
		format, err = manifest.FormatFromName(header.Filename)
	}
	if err != nil {
		fail(c, err)
		return
	}

	f, err := header.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer f.Close()

	m, err := manifest.Parse(f, format)
	if err != nil {
		auditError(c, "manifest_import", "Manifest import rejected", err, map[string]any{"file": header.Filename})
		fail(c, err)
		return
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	}

	NewResponseBuilder(c).SuccessOK(dto.ManifestImportResponse{
		Name:        m.Name,
		ContainerID: m.ContainerID,
		Items:       m.Items,
		Format:      string(format),
	})
}

// PackManifest handles POST /api/manifests/:id/pack requests.
//
// @Summary      Pack a saved manifest
// @Description  Packs the manifest's items into its container, or into the container named by the container_id query parameter.
// @Tags         Manifests
// @Produce      json
// @Param        id path string true "Manifest ID"
// @Param        container_id query string false "Container override"
// @Success      200 {object} dto.SuccessResponse{data=model.PackingResult} "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - too many units"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Manifest or container not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests/{id}/pack [post]
func (h *Handler) PackManifest(c *gin.Context) {
	doc, _, result, ok := h.packManifest(c)
	if !ok {
		return
	}

	audit(c, "manifest_pack", "Manifest packed", map[string]any{"manifest_id": doc.ID.Hex()})
	NewResponseBuilder(c).SuccessOK(result)
}

// ManifestReport handles POST /api/manifests/:id/report requests.
//
// @Summary      Pack a saved manifest and download a report
// @Tags         Manifests
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id path string true "Manifest ID"
// @Param        container_id query string false "Container override"
// @Param        format query string false "Report format" Enums(pdf, labels, xlsx) default(pdf)
// @Param        Accept-Language header string false "Report language (en, tr)"
// @Success      200 {file} file "Rendered report"
// @Failure      400 {object} dto.ErrorResponse "Bad request - nothing to label"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      404 {object} dto.ErrorResponse "Manifest or container not found"
// @Failure      415 {object} dto.ErrorResponse "Unsupported report format"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/manifests/{id}/report [post]
func (h *Handler) ManifestReport(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}

	doc, container, result, ok := h.packManifest(c)
	if !ok {
		return
	}

	h.writeReport(c, format, report.Plan{Title: doc.Name, Container: container, Result: result})
}

func (h *Handler) packManifest(c *gin.Context) (*repository.ManifestDocument, model.ContainerSpec, model.PackingResult, bool) {
	manifests, ok := h.manifestService(c)
	if !ok {
		return nil, model.ContainerSpec{}, model.PackingResult{}, false
	}

	ctx := c.Request.Context()
	doc, err := manifests.Get(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return nil, model.ContainerSpec{}, model.PackingResult{}, false
	}

	containerID := c.Query("container_id")
	if containerID == "" {
		containerID = doc.ContainerID
	}
	container, err := h.containers.Resolve(ctx, containerID, nil)
	if err != nil {
		fail(c, err)
		return nil, model.ContainerSpec{}, model.PackingResult{}, false
	}

	result, err := h.packer.Pack(doc.Items, container)
	if err != nil {
		fail(c, err)
		return nil, model.ContainerSpec{}, model.PackingResult{}, false
	}
	middleware.SetPackStats(c, container.ID, len(result.Placed), len(result.Unpacked))
	return doc, container, result, true
}
