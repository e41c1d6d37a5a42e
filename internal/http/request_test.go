package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	middleware.RequestID()(c)
	return c, w
}

// stackLimit is a request whose Validate rule spans two fields.
type stackLimit struct {
	Layers int `json:"layers" binding:"required"`
	Max    int `json:"max"`
}

func (s stackLimit) Validate() error {
	if s.Max > 0 && s.Layers > s.Max {
		return &dto.ValidationError{Field: "layers", Message: "exceeds max"}
	}
	return nil
}

func TestBuildRequest(t *testing.T) {
	c, _ := jsonContext(`{"subject": "dock-7", "scopes": ["cargo:pack"]}`)

	req, err := BuildRequest[dto.TokenRequest](c)

	require.NoError(t, err)
	assert.Equal(t, "dock-7", req.Subject)
	assert.Equal(t, []string{"cargo:pack"}, req.Scopes)
}

func TestBindingError(t *testing.T) {
	tests := []struct {
		name        string
		build       func(c *gin.Context) error
		body        string
		wantNil     bool
		wantField   string
		wantDetails map[string]string
	}{
		{
			name: "names the json field",
			build: func(c *gin.Context) error {
				_, err := BuildRequest[dto.TokenRequest](c)
				return err
			},
			body:        `{"scopes": ["cargo:pack"]}`,
			wantField:   "subject",
			wantDetails: map[string]string{"subject": "required"},
		},
		{
			name: "reports every missing dimension",
			build: func(c *gin.Context) error {
				_, err := BuildRequest[dto.ContainerRequest](c)
				return err
			},
			body:      `{"name": "Reefer 20", "length": 545, "width": 229}`,
			wantField: "height",
			wantDetails: map[string]string{
				"height":     "required",
				"max_weight": "required",
			},
		},
		{
			name: "malformed json is not a binding error",
			build: func(c *gin.Context) error {
				_, err := BuildRequest[dto.TokenRequest](c)
				return err
			},
			body:    `{"subject":`,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(tt.body)
			err := tt.build(c)
			require.Error(t, err)

			verr := bindingError(err)
			if tt.wantNil {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, "failed required check", verr.Message)
			assert.Equal(t, tt.wantDetails, verr.Details)
		})
	}

	assert.Nil(t, bindingError(errors.New("plain")))
}

func TestBind(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantOK      bool
		wantStatus  int
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:   "valid",
			body:   `{"layers": 3, "max": 4}`,
			wantOK: true,
		},
		{
			name:        "malformed json",
			body:        `{"layers": `,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "binding tag",
			body:        `{"max": 4}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "layers: failed required check",
			wantDetails: map[string]string{"layers": "required"},
		},
		{
			name:        "validate rule",
			body:        `{"layers": 5, "max": 4}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "layers: exceeds max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := jsonContext(tt.body)

			req, ok := bind[stackLimit](c)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, req)
				assert.False(t, c.IsAborted())
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}
