package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"

	// ContextKeySubject holds the authenticated caller's subject.
	ContextKeySubject = "auth_subject"
	// ContextKeyClaims holds the authenticated caller's *dto.Claims.
	ContextKeyClaims = "auth_claims"
)

// APIKeyValidator accepts plain keys and bcrypt hashes of keys.
type APIKeyValidator struct {
	plain  [][]byte
	hashes [][]byte
}

// NewAPIKeyValidator builds a validator from configured keys and hashes.
func NewAPIKeyValidator(plain map[string]bool, hashes []string) *APIKeyValidator {
	v := &APIKeyValidator{}
	for k, ok := range plain {
		if ok && k != "" {
			v.plain = append(v.plain, []byte(k))
		}
	}
	for _, h := range hashes {
		if h = strings.TrimSpace(h); h != "" {
			v.hashes = append(v.hashes, []byte(h))
		}
	}
	return v
}

// Enabled reports whether any key is configured.
func (v *APIKeyValidator) Enabled() bool {
	return v != nil && len(v.plain)+len(v.hashes) > 0
}

// Valid reports whether key matches a configured key or hash.
func (v *APIKeyValidator) Valid(key string) bool {
	if v == nil || key == "" {
		return false
	}
	k := []byte(key)
	for _, p := range v.plain {
		if subtle.ConstantTimeCompare(p, k) == 1 {
			return true
		}
	}
	for _, h := range v.hashes {
		if bcrypt.CompareHashAndPassword(h, k) == nil {
			return true
		}
	}
	return false
}

// APIKeySubject derives a stable, non-reversible subject for an API key caller.
func APIKeySubject(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "apikey:" + hex.EncodeToString(sum[:6])
}

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If the validator has no keys, authentication is disabled.
// API key callers are granted every scope.
func APIKeyAuth(keys *APIKeyValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !keys.Enabled() {
			c.Next()
			return
		}

		key := apiKeyFrom(c)
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !keys.Valid(key) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		setClaims(c, &dto.Claims{Subject: APIKeySubject(key), Scopes: dto.AllScopes})
		c.Next()
	}
}

// Authenticate accepts either an API key or a bearer token.
// An API key takes precedence when both are sent.
func Authenticate(keys *APIKeyValidator, tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := apiKeyFrom(c); key != "" && keys.Enabled() {
			if !keys.Valid(key) {
				abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
				return
			}
			setClaims(c, &dto.Claims{Subject: APIKeySubject(key), Scopes: dto.AllScopes})
			c.Next()
			return
		}

		if tokens == nil {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		authenticateBearer(c, tokens)
	}
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	return c.GetString(ContextKeySubject)
}

// GetClaims returns the authenticated claims, or nil for anonymous requests.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, ok := c.Get(ContextKeyClaims); ok {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

func apiKeyFrom(c *gin.Context) string {
	if key := c.GetHeader(APIKeyHeader); key != "" {
		return key
	}
	return c.Query(APIKeyQuery)
}

func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(ContextKeySubject, claims.Subject)
	c.Set(ContextKeyClaims, claims)
}

func abortUnauthorized(c *gin.Context, key string) {
	abortWithKey(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, key)
}

func abortWithKey(c *gin.Context, status int, code, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}
