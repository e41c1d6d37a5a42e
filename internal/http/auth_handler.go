package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/service"
)

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Issue an access token
// @Description  Signs a short-lived bearer token for a subject, for clients that should not hold an API key. The caller authenticates with an API key. Empty scopes grant every scope.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "API key"
// @Param        request body dto.TokenRequest true "Subject, scopes and lifetime"
// @Success      201 {object} dto.SuccessResponse{data=dto.TokenResponse} "Issued token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid subject or scope"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Token signing is not configured"
// @Security     ApiKeyAuth
// @Router       /api/auth/token [post]
func (h *Handler) IssueToken(c *gin.Context) {
	if h.tokens == nil {
		fail(c, service.ErrSigningKeyNotConfigured)
		return
	}
	req, ok := bind[dto.TokenRequest](c)
	if !ok {
		return
	}

	token, err := h.tokens.Issue(req.Subject, req.Scopes, time.Duration(req.ExpiresIn)*time.Second)
	if err != nil {
		fail(c, err)
		return
	}

	audit(c, "token_issue", "Access token issued", map[string]any{
		"token_subject": req.Subject,
		"scopes":        token.Scopes,
		"issued_by":     middleware.GetSubject(c),
	})
	NewResponseBuilder(c).SuccessCreated(token)
}
