//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/cargo-service/config"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/domain/model"
	httpapi "github.com/guttosm/cargo-service/internal/http"
	"github.com/guttosm/cargo-service/internal/mocks"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T, tokens bool) *ServiceComponents {
	t.Helper()
	cfg := config.Config{}
	if tokens {
		cfg.Auth.JWTSecretKey = "router-test-secret"
	}
	components := InitializeServices(cfg)
	t.Cleanup(components.Packer.Close)
	return components
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		tokens       bool
		dbComponents func(*testing.T) *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router with packer only",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:      100,
					RateWindow:     time.Minute,
					RequestTimeout: 30 * time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Handler)
				assert.NotNil(t, components.HealthHandler)
				assert.False(t, components.Config.EnableAuth)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
				assert.Equal(t, 30*time.Second, components.Config.RequestTimeout)
				assert.Nil(t, components.Config.TokenService)
				assert.Nil(t, components.Config.LoggingService)
				assert.NotNil(t, components.Config.IdempotencyStore)
				assert.Equal(t, 5, components.Config.RouteCosts["/api/cargo/pack/report"])
			},
		},
		{
			name:   "creates router with auth enabled",
			tokens: true,
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					Enabled: true,
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.True(t, components.Config.EnableAuth)
				require.NotNil(t, components.Config.APIKeys)
				assert.True(t, components.Config.APIKeys.Valid("test-key"))
				assert.False(t, components.Config.APIKeys.Valid("other"))
				assert.NotNil(t, components.Config.TokenService)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: func(t *testing.T) *DatabaseComponents {
				logs := mocks.NewMockLoggingService(t)
				logs.On("QueryLogs", mock.Anything, mock.Anything).Return(&model.LogPage{}, nil).Once()
				logs.On("CreateLog", mock.Anything, mock.Anything).Return(nil).Maybe()
				return &DatabaseComponents{
					ContainersRepo: new(mocks.MockContainersRepositoryInterface),
					ManifestsRepo:  new(mocks.MockManifestsRepositoryInterface),
					LoggingService: logs,
				}
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components.Config.LoggingService)

				router := httpapi.NewRouter(components.Handler, components.HealthHandler, components.Config)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit?kind=audit", nil))
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
		{
			name: "creates router with circuit breakers registered",
			dbComponents: func(t *testing.T) *DatabaseComponents {
				return &DatabaseComponents{
					ContainersRepo:           new(mocks.MockContainersRepositoryInterface),
					ContainersCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
					LogsCircuitBreaker:       circuitbreaker.New(circuitbreaker.DefaultConfig()),
				}
			},
			validate: func(t *testing.T, components *RouterComponents) {
				router := httpapi.NewRouter(components.Handler, components.HealthHandler, components.Config)
				req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), "mongodb_containers")
				assert.Contains(t, w.Body.String(), "mongodb_logs")
				assert.NotContains(t, w.Body.String(), "mongodb_manifests")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var db *DatabaseComponents
			if tt.dbComponents != nil {
				db = tt.dbComponents(t)
			}

			components := InitializeRouter(newTestServices(t, tt.tokens), db, tt.cfg)
			t.Cleanup(components.Close)

			require.NotNil(t, components)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeRouter_ManifestsUseRepository(t *testing.T) {
	manifests := new(mocks.MockManifestsRepositoryInterface)
	manifests.On("List", mock.Anything, mock.Anything).Return([]repository.ManifestDocument{}, nil).Once()

	components := InitializeRouter(newTestServices(t, false), &DatabaseComponents{ManifestsRepo: manifests}, config.Config{})
	t.Cleanup(components.Close)
	router := httpapi.NewRouter(components.Handler, components.HealthHandler, components.Config)

	req := httptest.NewRequest(http.MethodGet, "/api/manifests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	manifests.AssertExpectations(t)
}

func TestInitializeRouter_DefaultContainer(t *testing.T) {
	components := InitializeRouter(newTestServices(t, false), nil, config.Config{
		Packing: config.PackingConfig{DefaultContainer: "20ft"},
	})
	t.Cleanup(components.Close)
	router := httpapi.NewRouter(components.Handler, components.HealthHandler, components.Config)

	req := httptest.NewRequest(http.MethodGet, "/api/containers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"default_id":"20ft"`)
}
