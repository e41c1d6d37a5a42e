package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when an operation needs MongoDB and it is disabled.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrManifestNotFound is returned for an unknown manifest id.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrInvalidManifest wraps manifest validation failures.
	ErrInvalidManifest = errors.New("invalid manifest")
)

// DefaultManifestListLimit bounds List when the caller gives no limit.
const DefaultManifestListLimit = 50

// ManifestService stores named cargo lists so a load can be re-planned later.
type ManifestService interface {
	Save(ctx context.Context, name, containerID string, items []model.ItemSpec, by string) (*repository.ManifestDocument, error)
	Get(ctx context.Context, id string) (*repository.ManifestDocument, error)
	List(ctx context.Context, limit int) ([]repository.ManifestDocument, error)
	Delete(ctx context.Context, id string) error
}

// ManifestServiceImpl implements ManifestService.
type ManifestServiceImpl struct {
	repo       repository.ManifestsRepositoryInterface
	containers ContainerService
}

// NewManifestService creates a manifest service. A nil repo disables every operation.
func NewManifestService(repo repository.ManifestsRepositoryInterface, containers ContainerService) *ManifestServiceImpl {
	return &ManifestServiceImpl{repo: repo, containers: containers}
}

// Save validates and stores a manifest. An empty containerID is stored as is.
func (s *ManifestServiceImpl) Save(ctx context.Context, name, containerID string, items []model.ItemSpec, by string) (*repository.ManifestDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidManifest)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrInvalidManifest)
	}
	for i, it := range items {
		if p := it.Problems(); p != nil {
			return nil, fmt.Errorf("%w: items[%d] %s", ErrInvalidManifest, i, firstProblem(p))
		}
	}
	if containerID != "" && s.containers != nil {
		if _, err := s.containers.Get(ctx, containerID); err != nil {
			return nil, err
		}
	}

	doc := &repository.ManifestDocument{
		Name:        name,
		ContainerID: containerID,
		Items:       items,
		CreatedBy:   by,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get returns a manifest with its items.
func (s *ManifestServiceImpl) Get(ctx context.Context, id string) (*repository.ManifestDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, id)
	}
	doc, err := s.repo.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, id)
	}
	return doc, nil
}

// List returns manifest headers, newest first.
func (s *ManifestServiceImpl) List(ctx context.Context, limit int) ([]repository.ManifestDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 || limit > 500 {
		limit = DefaultManifestListLimit
	}
	return s.repo.List(ctx, limit)
}

// Delete removes a manifest.
func (s *ManifestServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrManifestNotFound, id)
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrManifestNotFound, id)
	}
	return nil
}

// firstProblem renders one field problem deterministically.
func firstProblem(p map[string]string) string {
	for _, field := range []string{"id", "length", "width", "height", "weight", "quantity", "constraints"} {
		if msg, ok := p[field]; ok {
			return field + " " + msg
		}
	}
	return ""
}
