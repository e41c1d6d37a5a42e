//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/repository"
	"github.com/guttosm/cargo-service/internal/testutil"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}()

	t.Run("circuit breaker protects containers repository", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_cargo_service")
		require.NoError(t, err)
		defer func() {
			_ = db.Close(ctx)
		}()

		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
			Name:             "test-containers",
		})
		wrappedRepo := repository.NewContainersRepositoryWithCircuitBreaker(repository.NewContainersRepository(db), cb)

		_, err = wrappedRepo.Upsert(ctx, model.ContainerSpec{
			ID: "open-top", Name: "Open top", Length: 589, Width: 235, Height: 235, MaxWeight: 28000,
		}, "test")
		require.NoError(t, err)

		doc, err := wrappedRepo.Get(ctx, "open-top")
		require.NoError(t, err)
		assert.NotNil(t, doc)

		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
		assert.True(t, cb.GetStats().IsHealthy)
	})

	t.Run("circuit breaker opens when the connection is gone", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_cargo_service_closed")
		require.NoError(t, err)
		require.NoError(t, db.Close(ctx))

		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
			Name:             "test-disconnected",
		})
		wrappedRepo := repository.NewContainersRepositoryWithCircuitBreaker(repository.NewContainersRepository(db), cb)

		for range 2 {
			_, err := wrappedRepo.List(ctx)
			assert.Error(t, err)
		}
		assert.True(t, cb.IsOpen())

		_, err = wrappedRepo.List(ctx)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})

	t.Run("log writes are dropped while open", func(t *testing.T) {
		db, err := repository.NewMongoDB(mongoContainer.URI, "test_cargo_service_logs")
		require.NoError(t, err)
		require.NoError(t, db.Close(ctx))

		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 1,
			SuccessThreshold: 1,
			Timeout:          time.Minute,
			Name:             "test-logs",
		})
		wrappedRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb)

		assert.Error(t, wrappedRepo.Create(ctx, &model.LogEntry{Level: model.LevelInfo, Message: "first"}))
		assert.NoError(t, wrappedRepo.Create(ctx, &model.LogEntry{Level: model.LevelInfo, Message: "dropped"}))
	})
}
