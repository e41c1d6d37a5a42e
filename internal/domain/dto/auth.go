package dto

import (
	"slices"
	"strings"
)

// Scopes granted by access tokens.
const (
	// ScopeCargoPack allows packing, snapping and manual plan edits.
	ScopeCargoPack = "cargo:pack"
	// ScopeContainersWrite allows creating, replacing and deleting custom containers.
	ScopeContainersWrite = "containers:write"
	// ScopeManifestsWrite allows saving and deleting manifests.
	ScopeManifestsWrite = "manifests:write"
	// ScopeAuditRead allows reading the access and audit log.
	ScopeAuditRead = "audit:read"
)

// AllScopes lists every scope a token can carry.
var AllScopes = []string{ScopeCargoPack, ScopeContainersWrite, ScopeManifestsWrite, ScopeAuditRead}

// Claims is the verified identity carried by an access token.
type Claims struct {
	Subject string   `json:"sub"`
	Scopes  []string `json:"scopes"`
}

// HasScope reports whether the claims grant scope.
func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// TokenRequest represents the JSON request body for minting an access token.
//
// @Description Request to issue an access token for a subject
// @Example {"subject": "dock-7", "scopes": ["cargo:pack"], "expires_in": 900}
type TokenRequest struct {
	// Subject identifies the caller the token is issued to.
	Subject string `json:"subject" binding:"required" example:"dock-7"`
	// Scopes requested for the token. Empty grants every scope.
	Scopes []string `json:"scopes,omitempty" example:"cargo:pack"`
	// ExpiresIn is the token lifetime in seconds. Zero uses the server default.
	ExpiresIn int `json:"expires_in,omitempty" example:"900"`
} // @name TokenRequest

// Validate checks the subject, scopes and lifetime.
func (r *TokenRequest) Validate() error {
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Subject == "" {
		return &ValidationError{Field: "subject", Message: "is required"}
	}
	for _, s := range r.Scopes {
		if !slices.Contains(AllScopes, s) {
			return &ValidationError{Field: "scopes", Message: "unknown scope " + s}
		}
	}
	if r.ExpiresIn < 0 {
		return &ValidationError{Field: "expires_in", Message: "must not be negative"}
	}
	return nil
}

// TokenResponse is returned by the token endpoint.
//
// @Description Issued access token
type TokenResponse struct {
	AccessToken string   `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string   `json:"token_type" example:"Bearer"`
	ExpiresIn   int64    `json:"expires_in" example:"900"`
	Scopes      []string `json:"scopes" example:"cargo:pack"`
} // @name TokenResponse
