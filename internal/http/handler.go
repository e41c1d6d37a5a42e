package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/manifest"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/packing"
	"github.com/guttosm/cargo-service/internal/report"
	"github.com/guttosm/cargo-service/internal/service"
)

// Handler provides HTTP handlers for the cargo, container and manifest routes.
type Handler struct {
	packer     service.CargoPacker
	containers service.ContainerService
	manifests  service.ManifestService
	tokens     service.TokenService
	logs       service.LoggingService
	clock      func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithManifests enables the manifest routes.
func WithManifests(manifests service.ManifestService) HandlerOption {
	return func(h *Handler) {
		h.manifests = manifests
	}
}

// WithTokens enables the token endpoint.
func WithTokens(tokens service.TokenService) HandlerOption {
	return func(h *Handler) {
		h.tokens = tokens
	}
}

// WithAuditLog enables the audit log query route.
func WithAuditLog(logs service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.logs = logs
	}
}

// WithClock overrides the time printed on generated reports.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = now
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(packer service.CargoPacker, containers service.ContainerService, opts ...HandlerOption) *Handler {
	h := &Handler{
		packer:     packer,
		containers: containers,
		clock:      time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// fail maps an error from the service layer onto a status code and a localized message.
func fail(c *gin.Context, err error) {
	b := NewResponseBuilder(c)

	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		b.ValidationFailed(verr)
	case errors.Is(err, packing.ErrIndexOutOfRange):
		b.Error(http.StatusBadRequest, i18n.ErrKeyIndexOutOfRange, err)
	case errors.Is(err, service.ErrTooManyUnits):
		b.Error(http.StatusBadRequest, i18n.ErrKeyTooManyUnits, err)
	case errors.Is(err, report.ErrNothingPlaced):
		b.Error(http.StatusBadRequest, i18n.ErrKeyNothingPlaced, err)
	case errors.Is(err, service.ErrInvalidContainer):
		b.ErrorWithDetails(http.StatusBadRequest, translate(c, i18n.ErrKeyInvalidRequest), cause(err), err)
	case errors.Is(err, service.ErrInvalidManifest), errors.Is(err, manifest.ErrInvalidManifest):
		b.ErrorWithDetails(http.StatusBadRequest, translate(c, i18n.ErrKeyInvalidManifest), cause(err), err)
	case errors.Is(err, service.ErrContainerNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyContainerNotFound, err)
	case errors.Is(err, service.ErrInvalidLogFilter):
		b.ErrorWithDetails(http.StatusBadRequest, translate(c, i18n.ErrKeyInvalidLogFilter), cause(err), err)
	case errors.Is(err, service.ErrManifestNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyManifestNotFound, err)
	case errors.Is(err, service.ErrPresetReadOnly):
		b.Error(http.StatusConflict, i18n.ErrKeyPresetReadOnly, err)
	case errors.Is(err, manifest.ErrUnsupportedFormat), errors.Is(err, report.ErrUnsupportedFormat):
		b.ErrorWithDetails(http.StatusUnsupportedMediaType, translate(c, i18n.ErrKeyUnsupportedFormat), cause(err), err)
	case errors.Is(err, service.ErrRepositoryNotConfigured),
		errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, service.ErrSigningKeyNotConfigured):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// slug turns a free-form title into a file name stem.
func slug(title string) string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	return strings.Join(words, "-")
}

func cause(err error) map[string]string {
	return map[string]string{"cause": err.Error()}
}

// audit records a caller action when a logging service is attached to the context.
func audit(c *gin.Context, action, message string, fields map[string]any) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLog(ls, c, action, message, fields)
	}
}

// auditError records a failed caller action when a logging service is attached to the context.
func auditError(c *gin.Context, action, message string, err error, fields map[string]any) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLogError(ls, c, action, message, err, fields)
	}
}

func loggingService(c *gin.Context) service.LoggingService {
	v, exists := c.Get("logging_service")
	if !exists {
		return nil
	}
	ls, _ := v.(service.LoggingService)
	return ls
}
