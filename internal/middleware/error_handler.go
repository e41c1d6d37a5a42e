package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// ErrorHandler logs the errors handlers attach with c.Error and answers for handlers
// that recorded an error without writing a response. Bind errors become 400s, anything
// else a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
			code, key := dto.ErrCodeInternal, i18n.ErrKeyInternalError
			if c.Errors.Last().IsType(gin.ErrorTypeBind) {
				status = http.StatusBadRequest
				code, key = dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidRequestBody
			}
			abortWithKey(c, status, code, key)
		}

		event := RequestLog(c).Warn()
		if status >= http.StatusInternalServerError {
			event = RequestLog(c).Error()
		}
		event.
			Strs("errors", c.Errors.Errors()).
			Str("route", c.FullPath()).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request failed")
	}
}
