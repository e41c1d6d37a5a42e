//go:build integration

package app

import (
	"context"
	"testing"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(testDatabaseConfig(t))

		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()
		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.ContainersRepo)
		assert.NotNil(t, components.ManifestsRepo)
		assert.NotNil(t, components.LoggingService)
	})

	t.Run("circuit breakers start closed", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(testDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		for _, cb := range []struct {
			name  string
			stats func() string
		}{
			{"containers", func() string { return components.ContainersCircuitBreaker.GetStats().State }},
			{"manifests", func() string { return components.ManifestsCircuitBreaker.GetStats().State }},
			{"logs", func() string { return components.LogsCircuitBreaker.GetStats().State }},
		} {
			assert.Equal(t, "closed", cb.stats(), cb.name)
		}
	})

	t.Run("containers round trip through the breaker", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(testDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		spec := model.ContainerSpec{ID: "reefer-20", Name: "Reefer 20", Length: 545, Width: 229, Height: 225, MaxWeight: 27400}
		_, err := components.ContainersRepo.Upsert(ctx, spec, "test")
		require.NoError(t, err)

		doc, err := components.ContainersRepo.Get(ctx, "reefer-20")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, 545.0, doc.Length)
	})

	t.Run("mongo checker reports healthy", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(testDatabaseConfig(t))
		require.NotNil(t, components)
		defer func() { _ = components.Close(ctx) }()

		assert.NoError(t, mongoChecker{db: components.DB}.Check(ctx))
	})
}
