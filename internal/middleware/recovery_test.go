package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		locale      string
		wantStatus  int
		wantMessage string
		wantBody    string
	}{
		{
			name:        "panic becomes a localized 500",
			handler:     func(*gin.Context) { panic("index out of range") },
			wantStatus:  http.StatusInternalServerError,
			wantMessage: i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, "en"),
		},
		{
			name:        "turkish caller",
			handler:     func(*gin.Context) { panic("nil container") },
			locale:      "tr",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, "tr"),
		},
		{
			name: "partial response is kept",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("after write")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
		},
		{
			name:       "no panic",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.POST("/api/cargo/pack", tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/cargo/pack", nil)
			if tt.locale != "" {
				req.Header.Set(i18n.AcceptLanguageHeader, tt.locale)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

func TestRecovery_AbortHandlerIsReRaised(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/api/containers", func(*gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/containers", nil))
	})
}
