// Package middleware provides scope-based authorization middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// RequireScope returns a middleware that rejects callers whose claims lack scope.
// It must run after APIKeyAuth, JWTAuth or Authenticate.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}
		if !claims.HasScope(scope) {
			abortWithKey(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}
		c.Next()
	}
}
