package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/cargo-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-service/internal/domain/model"
)

// guard holds the breaker shared by the wrappers below.
type guard struct {
	cb *circuitbreaker.CircuitBreaker
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (g guard) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return g.cb
}

// ContainersRepositoryWithCircuitBreaker guards the custom container store.
type ContainersRepositoryWithCircuitBreaker struct {
	guard
	repo ContainersRepositoryInterface
}

// NewContainersRepositoryWithCircuitBreaker wraps repo with cb.
func NewContainersRepositoryWithCircuitBreaker(repo ContainersRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ContainersRepositoryWithCircuitBreaker {
	return &ContainersRepositoryWithCircuitBreaker{guard: guard{cb: cb}, repo: repo}
}

// Get returns a stored container, nil when absent.
func (r *ContainersRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (*ContainerDocument, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (*ContainerDocument, error) {
		return r.repo.Get(ctx, id)
	})
}

// List returns every stored container.
func (r *ContainersRepositoryWithCircuitBreaker) List(ctx context.Context) ([]ContainerDocument, error) {
	return circuitbreaker.Call(ctx, r.cb, func() ([]ContainerDocument, error) {
		return r.repo.List(ctx)
	})
}

// Upsert stores spec under its id.
func (r *ContainersRepositoryWithCircuitBreaker) Upsert(ctx context.Context, spec model.ContainerSpec, updatedBy string) (*ContainerDocument, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (*ContainerDocument, error) {
		return r.repo.Upsert(ctx, spec, updatedBy)
	})
}

// Delete removes a container and reports whether it existed.
func (r *ContainersRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) (bool, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (bool, error) {
		return r.repo.Delete(ctx, id)
	})
}

// ManifestsRepositoryWithCircuitBreaker guards the manifest store.
type ManifestsRepositoryWithCircuitBreaker struct {
	guard
	repo ManifestsRepositoryInterface
}

// NewManifestsRepositoryWithCircuitBreaker wraps repo with cb.
func NewManifestsRepositoryWithCircuitBreaker(repo ManifestsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ManifestsRepositoryWithCircuitBreaker {
	return &ManifestsRepositoryWithCircuitBreaker{guard: guard{cb: cb}, repo: repo}
}

// Create stores m and fills in its id.
func (r *ManifestsRepositoryWithCircuitBreaker) Create(ctx context.Context, m *ManifestDocument) error {
	return r.cb.Execute(ctx, func() error {
		return r.repo.Create(ctx, m)
	})
}

// Get returns a manifest, nil when absent.
func (r *ManifestsRepositoryWithCircuitBreaker) Get(ctx context.Context, id primitive.ObjectID) (*ManifestDocument, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (*ManifestDocument, error) {
		return r.repo.Get(ctx, id)
	})
}

// List returns the newest manifests first.
func (r *ManifestsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]ManifestDocument, error) {
	return circuitbreaker.Call(ctx, r.cb, func() ([]ManifestDocument, error) {
		return r.repo.List(ctx, limit)
	})
}

// Delete removes a manifest and reports whether it existed.
func (r *ManifestsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (bool, error) {
		return r.repo.Delete(ctx, id)
	})
}

// LogsRepositoryWithCircuitBreaker guards the log collection.
// Writes are dropped while the circuit is open so request handling never fails on audit.
type LogsRepositoryWithCircuitBreaker struct {
	guard
	repo LogsRepositoryInterface
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{guard: guard{cb: cb}, repo: repo}
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Create stores one entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

// CreateMany stores a batch of entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// Query returns one page of entries. An open circuit is reported, not hidden.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, f model.LogFilter) ([]model.LogEntry, error) {
	return circuitbreaker.Call(ctx, r.cb, func() ([]model.LogEntry, error) {
		return r.repo.Query(ctx, f)
	})
}

// Count returns the number of matching entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, f model.LogFilter) (int64, error) {
	return circuitbreaker.Call(ctx, r.cb, func() (int64, error) {
		return r.repo.Count(ctx, f)
	})
}
