//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/domain/dto"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/middleware"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/guttosm/cargo-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(router *gin.Engine, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntegration_RateLimiting(t *testing.T) {
	packer := service.NewCargoPackerService()
	defer packer.Close()
	handler := NewHandler(packer, service.NewContainerService(nil))

	router := NewRouter(handler, NewHealthHandler(), RouterConfig{
		RateLimit:  5,
		RateWindow: time.Second,
	})

	body := `{"items": [{"id": "a", "length": 10, "width": 10, "height": 10, "weight": 1}]}`

	for i := 0; i < 5; i++ {
		w := postJSON(router, "/api/cargo/pack", body)
		assert.Equal(t, http.StatusOK, w.Code, "Request %d", i+1)
	}

	w := postJSON(router, "/api/cargo/pack", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestIntegration_APIKeyAuth(t *testing.T) {
	packer := service.NewCargoPackerService()
	defer packer.Close()
	handler := NewHandler(packer, service.NewContainerService(nil))

	router := NewRouter(handler, NewHealthHandler(), RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: true,
		APIKeys:    middleware.NewAPIKeyValidator(map[string]bool{"valid-key": true}, nil),
	})

	body := `{"items": [{"id": "a", "length": 10, "width": 10, "height": 10, "weight": 1}]}`

	t.Run("missing API key", func(t *testing.T) {
		w := postJSON(router, "/api/cargo/pack", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid API key", func(t *testing.T) {
		w := postJSON(router, "/api/cargo/pack", body, "X-API-Key", "invalid-key")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid API key in header", func(t *testing.T) {
		w := postJSON(router, "/api/cargo/pack", body, "X-API-Key", "valid-key")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid API key in query param", func(t *testing.T) {
		w := postJSON(router, "/api/cargo/pack?api_key=valid-key", body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health endpoints bypass auth", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestIntegration_CacheEffectiveness(t *testing.T) {
	packer := service.NewCargoPackerService(service.WithCache(100, 5*time.Minute))
	defer packer.Close()
	router := NewRouter(NewHandler(packer, service.NewContainerService(nil)), nil, RouterConfig{})

	body := `{"container_id": "40ft", "items": [` +
		`{"id": "crate", "length": 120, "width": 80, "height": 100, "weight": 250, "quantity": 20, "constraints": ["heavy-bottom"]},` +
		`{"id": "tv", "length": 100, "width": 20, "height": 60, "weight": 15, "quantity": 30, "constraints": ["fragile"]}]}`

	start := time.Now()
	w1 := postJSON(router, "/api/cargo/pack", body)
	firstDuration := time.Since(start)
	require.Equal(t, http.StatusOK, w1.Code)

	start = time.Now()
	w2 := postJSON(router, "/api/cargo/pack", body)
	secondDuration := time.Since(start)
	require.Equal(t, http.StatusOK, w2.Code)

	var resp1, resp2 struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &resp1))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	assert.JSONEq(t, string(resp1.Data), string(resp2.Data))

	t.Logf("First request (cache miss): %v", firstDuration)
	t.Logf("Second request (cache hit): %v", secondDuration)
}

func mongoRouter(t *testing.T) (*gin.Engine, *repository.MongoDB) {
	t.Helper()

	db := openTestDB(t)

	packer := service.NewCargoPackerService(service.WithCache(100, time.Minute))
	t.Cleanup(packer.Close)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))
	loggingService := service.NewLoggingService(logsRepo)

	containersRepo := repository.NewContainersRepositoryWithCircuitBreaker(
		repository.NewContainersRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))
	containers := service.NewContainerService(containersRepo, service.WithContainerChangeHook(packer.InvalidateCache))

	manifestsRepo := repository.NewManifestsRepositoryWithCircuitBreaker(
		repository.NewManifestsRepository(db), circuitbreaker.New(circuitbreaker.DefaultConfig()))
	manifests := service.NewManifestService(manifestsRepo, containers)

	handler := NewHandler(packer, containers, WithManifests(manifests), WithAuditLog(loggingService))
	cfg := RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		LoggingService: loggingService,
	}
	return NewRouter(handler, NewHealthHandler(), cfg), db
}

func TestHandler_Containers_WithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	router, db := mongoRouter(t)

	body := `{"name": "Reefer 20", "length": 545, "width": 229, "height": 225, "max_weight": 27400}`
	req := httptest.NewRequest(http.MethodPut, "/api/containers/reefer-20", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("custom container is persisted", func(t *testing.T) {
		doc, err := repository.NewContainersRepository(db).Get(ctx, "reefer-20")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, 545.0, doc.Length)
	})

	t.Run("pack into stored container", func(t *testing.T) {
		w := postJSON(router, "/api/cargo/pack", `{"container_id": "reefer-20", "items": [{"id": "a", "length": 100, "width": 100, "height": 100, "weight": 10}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.PackingResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 545*229*225/1e6, resp.Data.TotalVolume, 0.001)
	})

	t.Run("replacing the container invalidates cached plans", func(t *testing.T) {
		body := `{"name": "Reefer 20", "length": 545, "width": 229, "height": 100, "max_weight": 27400}`
		req := httptest.NewRequest(http.MethodPut, "/api/containers/reefer-20", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = postJSON(router, "/api/cargo/pack", `{"container_id": "reefer-20", "items": [{"id": "a", "length": 100, "width": 100, "height": 100, "weight": 10}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.PackingResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 545*229*100/1e6, resp.Data.TotalVolume, 0.001)
	})
}

func TestHandler_Manifests_WithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	router, db := mongoRouter(t)

	w := postJSON(router, "/api/manifests", `{"name": "Week 42", "container_id": "20ft", "items": [{"id": "crate", "length": 120, "width": 80, "height": 100, "weight": 250, "quantity": 3}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var saved struct {
		Data repository.ManifestDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	id := saved.Data.ID.Hex()

	t.Run("listed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/manifests", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []repository.ManifestDocument `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Week 42", resp.Data[0].Name)
	})

	t.Run("packed", func(t *testing.T) {
		w := postJSON(router, "/api/manifests/"+id+"/pack", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data model.PackingResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.Placed, 3)
	})

	t.Run("saving emits an audit entry", func(t *testing.T) {
		require.Eventually(t, func() bool {
			logs, err := repository.NewLogsRepository(db).Query(ctx, model.LogFilter{PathPrefix: "/api/manifests", Limit: 10})
			return err == nil && len(logs) >= 1
		}, 2*time.Second, 50*time.Millisecond)
	})

	t.Run("audit trail is queryable", func(t *testing.T) {
		var page struct {
			Data model.LogPage `json:"data"`
		}
		require.Eventually(t, func() bool {
			req := httptest.NewRequest(http.MethodGet, "/api/audit?kind=audit&manifest_id="+id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK || json.Unmarshal(w.Body.Bytes(), &page) != nil {
				return false
			}
			return page.Data.Total >= 2
		}, 2*time.Second, 50*time.Millisecond)

		actions := make([]string, 0, len(page.Data.Entries))
		for _, e := range page.Data.Entries {
			actions = append(actions, e.Action)
		}
		assert.Contains(t, actions, "manifest_save")
		assert.Contains(t, actions, "manifest_pack")
	})

	t.Run("deleted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/manifests/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/manifests/"+id, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	})
}
