package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   TokenRequest
		wantField string
	}{
		{
			name:    "valid request",
			request: TokenRequest{Subject: "dock-7", Scopes: []string{ScopeCargoPack}, ExpiresIn: 60},
		},
		{
			name:    "empty scopes allowed",
			request: TokenRequest{Subject: "dock-7"},
		},
		{
			name:      "blank subject",
			request:   TokenRequest{Subject: "   "},
			wantField: "subject",
		},
		{
			name:      "unknown scope",
			request:   TokenRequest{Subject: "dock-7", Scopes: []string{"users:admin"}},
			wantField: "scopes",
		},
		{
			name:      "negative lifetime",
			request:   TokenRequest{Subject: "dock-7", ExpiresIn: -1},
			wantField: "expires_in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestTokenRequest_ValidateTrimsSubject(t *testing.T) {
	req := TokenRequest{Subject: "  dock-7 "}

	require.NoError(t, req.Validate())
	assert.Equal(t, "dock-7", req.Subject)
}

func TestClaims_HasScope(t *testing.T) {
	c := Claims{Subject: "dock-7", Scopes: []string{ScopeCargoPack}}

	assert.True(t, c.HasScope(ScopeCargoPack))
	assert.False(t, c.HasScope(ScopeContainersWrite))
	assert.False(t, Claims{}.HasScope(ScopeCargoPack))
}
