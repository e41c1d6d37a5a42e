//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{"english error", ErrKeyContainerNotFound, "en", "Container not found"},
		{"turkish error", ErrKeyInvalidRequest, "tr", "Geçersiz istek"},
		{"turkish idempotency conflict", ErrKeyIdempotencyMismatch, "tr", "Bu idempotency anahtarı farklı bir istekle kullanıldı"},
		{"turkish constraint label", ConstraintLabelPrefix + "fragile", "tr", "Kırılgan"},
		{"english constraint description", ConstraintDescriptionPrefix + "fragile", "en", "Maximum 20kg load can be placed on top"},
		{"english report caption", ReportKeyVolumeUsage, "en", "Volume Usage"},
		{"empty locale uses english", ErrKeyTimeout, "", "Request timed out"},
		{"unsupported locale falls back", ErrKeyTimeout, "fr", "Request timed out"},
		{"unknown key returns key", "unknown.key", "en", "unknown.key"},
		{"unknown key in unsupported locale", "unknown.key", "fr", "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_ConstraintCaptions(t *testing.T) {
	translator := NewTranslator()
	for locale := range translator.messages {
		for _, c := range model.AllConstraints {
			for _, prefix := range []string{ConstraintLabelPrefix, ConstraintDescriptionPrefix} {
				_, ok := translator.messages[locale][prefix+string(c)]
				assert.True(t, ok, "locale %q has no %s%s", locale, prefix, c)
			}
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{
			name:           "no header returns default",
			acceptLanguage: "",
			expected:       DefaultLocale,
		},
		{
			name:           "english header",
			acceptLanguage: "en",
			expected:       "en",
		},
		{
			name:           "turkish header",
			acceptLanguage: "tr",
			expected:       "tr",
		},
		{
			name:           "turkish with region",
			acceptLanguage: "tr-TR,tr;q=0.9,en;q=0.8",
			expected:       "tr",
		},
		{
			name:           "full locale with region",
			acceptLanguage: "en-US",
			expected:       "en",
		},
		{
			name:           "multiple languages",
			acceptLanguage: "en-US,en;q=0.9,tr;q=0.8",
			expected:       "en",
		},
		{
			name:           "unsupported language defaults",
			acceptLanguage: "fr",
			expected:       DefaultLocale,
		},
		{
			name:           "case insensitive",
			acceptLanguage: "EN",
			expected:       "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			result := GetLocale(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTranslator_CompleteTables(t *testing.T) {
	translator := NewTranslator()
	for key := range translator.messages[DefaultLocale] {
		for locale := range translator.messages {
			_, ok := translator.messages[locale][key]
			assert.True(t, ok, "locale %q is missing %q", locale, key)
		}
	}
}

func TestTranslator_Normalize(t *testing.T) {
	translator := NewTranslator()
	assert.Equal(t, "tr", translator.Normalize("tr_TR"))
	assert.Equal(t, "en", translator.Normalize(" EN-gb "))
	assert.Equal(t, DefaultLocale, translator.Normalize("de"))
	assert.Equal(t, DefaultLocale, translator.Normalize(""))
}
