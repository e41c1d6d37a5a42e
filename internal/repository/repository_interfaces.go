package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// ContainersRepositoryInterface defines the interface for container repository operations.
type ContainersRepositoryInterface interface {
	Get(ctx context.Context, id string) (*ContainerDocument, error)
	List(ctx context.Context) ([]ContainerDocument, error)
	Upsert(ctx context.Context, spec model.ContainerSpec, updatedBy string) (*ContainerDocument, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ManifestsRepositoryInterface defines the interface for manifest repository operations.
type ManifestsRepositoryInterface interface {
	Create(ctx context.Context, m *ManifestDocument) error
	Get(ctx context.Context, id primitive.ObjectID) (*ManifestDocument, error)
	List(ctx context.Context, limit int) ([]ManifestDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, f model.LogFilter) ([]model.LogEntry, error)
	Count(ctx context.Context, f model.LogFilter) (int64, error)
}

var (
	_ ContainersRepositoryInterface = (*ContainersRepository)(nil)
	_ ContainersRepositoryInterface = (*ContainersRepositoryWithCircuitBreaker)(nil)
	_ ManifestsRepositoryInterface  = (*ManifestsRepository)(nil)
	_ ManifestsRepositoryInterface  = (*ManifestsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface       = (*LogsRepository)(nil)
	_ LogsRepositoryInterface       = (*LogsRepositoryWithCircuitBreaker)(nil)
)
