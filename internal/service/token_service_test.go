package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/service"
)

func testTokenService() *service.TokenServiceImpl {
	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(config.AuthConfig{
		JWTSecretKey:   "test-secret",
		JWTIssuer:      "cargo-service",
		AccessTokenTTL: 15 * time.Minute,
	}))
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		scopes     []string
		ttl        time.Duration
		wantScopes []string
		wantTTL    int64
	}{
		{
			name:       "explicit scope and ttl",
			scopes:     []string{dto.ScopeCargoPack},
			ttl:        time.Minute,
			wantScopes: []string{dto.ScopeCargoPack},
			wantTTL:    60,
		},
		{
			name:       "defaults grant every scope",
			wantScopes: dto.AllScopes,
			wantTTL:    900,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testTokenService()

			resp, err := svc.Issue("dock-7", tt.scopes, tt.ttl)
			require.NoError(t, err)
			assert.Equal(t, "Bearer", resp.TokenType)
			assert.Equal(t, tt.wantTTL, resp.ExpiresIn)
			assert.Equal(t, tt.wantScopes, resp.Scopes)

			claims, err := svc.Validate(resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "dock-7", claims.Subject)
			assert.Equal(t, tt.wantScopes, claims.Scopes)
		})
	}
}

func TestTokenService_IssueErrors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		svc := service.NewTokenService(service.TokenConfig{})
		_, err := svc.Issue("dock-7", nil, 0)
		assert.ErrorIs(t, err, service.ErrSigningKeyNotConfigured)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := testTokenService().Issue("", nil, 0)
		assert.Error(t, err)
	})
}

func TestTokenService_ValidateRejects(t *testing.T) {
	svc := testTokenService()

	sign := func(key string, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
		var k any = []byte(key)
		if method == jwt.SigningMethodNone {
			k = jwt.UnsafeAllowNoneSignatureType
		}
		s, err := jwt.NewWithClaims(method, claims).SignedString(k)
		require.NoError(t, err)
		return s
	}
	valid := jwt.RegisteredClaims{
		Subject:   "dock-7",
		Issuer:    "cargo-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	foreign := valid
	foreign.Issuer = "someone-else"
	noExpiry := valid
	noExpiry.ExpiresAt = nil
	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong key", sign("other-secret", jwt.SigningMethodHS256, valid)},
		{"expired", sign("test-secret", jwt.SigningMethodHS256, expired)},
		{"foreign issuer", sign("test-secret", jwt.SigningMethodHS256, foreign)},
		{"no expiry", sign("test-secret", jwt.SigningMethodHS256, noExpiry)},
		{"no subject", sign("test-secret", jwt.SigningMethodHS256, noSubject)},
		{"unsigned", sign("", jwt.SigningMethodNone, valid)},
		{"other hmac", sign("test-secret", jwt.SigningMethodHS512, valid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
