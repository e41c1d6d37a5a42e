// Package middleware provides JWT authentication middleware.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
)

// TokenValidator verifies bearer tokens.
type TokenValidator interface {
	Validate(tokenString string) (*dto.Claims, error)
}

// JWTAuth returns a middleware that validates JWT bearer tokens.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticateBearer(c, tokens)
	}
}

func authenticateBearer(c *gin.Context, tokens TokenValidator) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		return
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return
	}
	if tokenString = strings.TrimSpace(tokenString); tokenString == "" {
		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		return
	}

	claims, err := tokens.Validate(tokenString)
	if err != nil {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return
	}

	setClaims(c, claims)
	c.Next()
}
