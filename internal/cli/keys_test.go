package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/cargo-service/internal/middleware"
)

func TestGenerateKeys(t *testing.T) {
	keys, err := generateKeys(bytes.NewReader(bytes.Repeat([]byte{7}, 56)), bcrypt.MinCost)
	require.NoError(t, err)

	assert.Len(t, keys.APIKey, 32)
	assert.Len(t, keys.JWTSecretKey, 44)

	validator := middleware.NewAPIKeyValidator(nil, []string{keys.APIKeyHash})
	assert.True(t, validator.Valid(keys.APIKey))
	assert.False(t, validator.Valid(keys.APIKey+"x"))
}

func TestGenerateKeys_ShortRead(t *testing.T) {
	_, err := generateKeys(bytes.NewReader([]byte{1, 2, 3}), bcrypt.MinCost)

	assert.ErrorContains(t, err, "JWT secret")
}

func TestKeys(t *testing.T) {
	t.Run("env lines", func(t *testing.T) {
		out, _, code := run(t, "keys", "--cost", "4")
		require.Equal(t, ExitOK, code)

		assert.Contains(t, out, "JWT_SECRET_KEY=")
		assert.Contains(t, out, "API_KEY_HASHES=$2a$04$")
	})

	t.Run("json", func(t *testing.T) {
		out, _, code := run(t, "keys", "--cost", "4", "--json")
		require.Equal(t, ExitOK, code)

		var keys generatedKeys
		require.NoError(t, json.Unmarshal([]byte(out), &keys))
		assert.True(t, strings.HasPrefix(keys.APIKeyHash, "$2a$04$"))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(keys.APIKeyHash), []byte(keys.APIKey)))
	})
}
