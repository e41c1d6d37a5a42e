package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/guttosm/cargo-service/internal/middleware"
)

// ResponseBuilder writes the JSON envelopes every API route answers with.
type ResponseBuilder struct {
	c   *gin.Context
	now func() time.Time
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c, now: time.Now}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: b.now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Attachment sends body as a download named filename.
func (b *ResponseBuilder) Attachment(contentType, filename string, body []byte) {
	b.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	b.c.Data(http.StatusOK, contentType, body)
}

// Error aborts with the message for messageKey in the caller's locale.
// err is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, translate(b.c, messageKey), nil, err)
}

// ErrorWithDetails aborts with a ready-made message and per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, message string, details map[string]string, err error) {
	b.abort(statusCode, message, details, err)
}

// ValidationFailed sends a 400 naming the offending field, with per-field details when present.
func (b *ResponseBuilder) ValidationFailed(verr *dto.ValidationError) {
	b.abort(http.StatusBadRequest, verr.Error(), verr.Details, verr)
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: b.now(),
	})
}

func translate(c *gin.Context, key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
}
