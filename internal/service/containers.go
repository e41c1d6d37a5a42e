package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/logger"
	"github.com/guttosm/cargo-service/internal/repository"
)

var (
	// ErrContainerNotFound is returned for an id that is neither a preset nor stored.
	ErrContainerNotFound = errors.New("container not found")
	// ErrPresetReadOnly is returned when a caller tries to change a built-in container.
	ErrPresetReadOnly = errors.New("preset containers are read-only")
	// ErrInvalidContainer wraps container validation failures.
	ErrInvalidContainer = errors.New("invalid container")
)

var containerIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`)

// ContainerService resolves container definitions: the built-in presets plus custom containers.
type ContainerService interface {
	List(ctx context.Context) ([]model.ContainerSpec, error)
	Get(ctx context.Context, id string) (model.ContainerSpec, error)
	// Resolve picks the container for a request: an inline definition wins,
	// then id, then the configured default.
	Resolve(ctx context.Context, id string, inline *model.ContainerSpec) (model.ContainerSpec, error)
	Create(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error)
	Upsert(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error)
	Delete(ctx context.Context, id string) error
	// DefaultID names the container used when a request selects none.
	DefaultID() string
}

// ContainerOption configures a ContainerServiceImpl.
type ContainerOption func(*ContainerServiceImpl)

// WithDefaultContainer sets the container used when a request names none.
func WithDefaultContainer(id string) ContainerOption {
	return func(s *ContainerServiceImpl) {
		if id != "" {
			s.defaultID = id
		}
	}
}

// WithContainerChangeHook registers fn to run after a custom container changes.
func WithContainerChangeHook(fn func()) ContainerOption {
	return func(s *ContainerServiceImpl) {
		s.onChange = fn
	}
}

// ContainerServiceImpl implements ContainerService.
type ContainerServiceImpl struct {
	repo      repository.ContainersRepositoryInterface
	defaultID string
	onChange  func()
}

// NewContainerService creates a container service. A nil repo keeps custom containers in memory.
func NewContainerService(repo repository.ContainersRepositoryInterface, opts ...ContainerOption) *ContainerServiceImpl {
	if repo == nil {
		repo = newMemoryContainers()
	}
	s := &ContainerServiceImpl{repo: repo, defaultID: model.DefaultContainerID}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the presets followed by custom containers.
// Presets are still returned when the store fails.
func (s *ContainerServiceImpl) List(ctx context.Context) ([]model.ContainerSpec, error) {
	specs := model.Presets()
	docs, err := s.repo.List(ctx)
	if err != nil {
		log := logger.Component("containers")
		log.Warn().Err(err).Msg("Listing custom containers failed, serving presets only")
		return specs, nil
	}
	for _, d := range docs {
		specs = append(specs, d.Spec())
	}
	return specs, nil
}

// Get returns a preset or custom container by id.
func (s *ContainerServiceImpl) Get(ctx context.Context, id string) (model.ContainerSpec, error) {
	if spec, ok := model.Preset(id); ok {
		return spec, nil
	}
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.ContainerSpec{}, err
	}
	if doc == nil {
		return model.ContainerSpec{}, fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	return doc.Spec(), nil
}

// Resolve implements ContainerService.
func (s *ContainerServiceImpl) Resolve(ctx context.Context, id string, inline *model.ContainerSpec) (model.ContainerSpec, error) {
	if inline != nil {
		spec := *inline
		if spec.ID == "" {
			spec.ID = "inline"
		}
		if err := ValidateContainer(spec); err != nil {
			return model.ContainerSpec{}, err
		}
		return spec, nil
	}
	if id == "" {
		id = s.defaultID
	}
	return s.Get(ctx, id)
}

// DefaultID implements ContainerService.
func (s *ContainerServiceImpl) DefaultID() string {
	return s.defaultID
}

// Create stores a new custom container under a generated id.
func (s *ContainerServiceImpl) Create(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error) {
	spec.ID = uuid.NewString()
	return s.Upsert(ctx, spec, by)
}

// Upsert creates or replaces a custom container.
func (s *ContainerServiceImpl) Upsert(ctx context.Context, spec model.ContainerSpec, by string) (model.ContainerSpec, error) {
	spec.ID = strings.ToLower(strings.TrimSpace(spec.ID))
	if _, ok := model.Preset(spec.ID); ok {
		return model.ContainerSpec{}, ErrPresetReadOnly
	}
	if !containerIDPattern.MatchString(spec.ID) {
		return model.ContainerSpec{}, fmt.Errorf("%w: id %q", ErrInvalidContainer, spec.ID)
	}
	if strings.TrimSpace(spec.Name) == "" {
		spec.Name = spec.ID
	}
	spec.Preset = false
	if err := ValidateContainer(spec); err != nil {
		return model.ContainerSpec{}, err
	}

	doc, err := s.repo.Upsert(ctx, spec, by)
	if err != nil {
		return model.ContainerSpec{}, err
	}
	s.changed()
	return doc.Spec(), nil
}

// Delete removes a custom container.
func (s *ContainerServiceImpl) Delete(ctx context.Context, id string) error {
	if _, ok := model.Preset(id); ok {
		return ErrPresetReadOnly
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrContainerNotFound, id)
	}
	s.changed()
	return nil
}

func (s *ContainerServiceImpl) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// ValidateContainer checks that every dimension and the payload limit are positive.
func ValidateContainer(c model.ContainerSpec) error {
	var bad []string
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"length", c.Length},
		{"width", c.Width},
		{"height", c.Height},
		{"max_weight", c.MaxWeight},
	} {
		if !(f.value > 0) {
			bad = append(bad, f.name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidContainer, strings.Join(bad, ", "))
	}
	return nil
}

// memoryContainers keeps custom containers in process when MongoDB is disabled.
type memoryContainers struct {
	mu   sync.RWMutex
	docs map[string]repository.ContainerDocument
}

func newMemoryContainers() *memoryContainers {
	return &memoryContainers{docs: make(map[string]repository.ContainerDocument)}
}

func (m *memoryContainers) Get(_ context.Context, id string) (*repository.ContainerDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memoryContainers) List(context.Context) ([]repository.ContainerDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]repository.ContainerDocument, 0, len(m.docs))
	for _, d := range m.docs {
		docs = append(docs, d)
	}
	slices.SortFunc(docs, func(a, b repository.ContainerDocument) int {
		return strings.Compare(a.Name, b.Name)
	})
	return docs, nil
}

func (m *memoryContainers) Upsert(_ context.Context, spec model.ContainerSpec, by string) (*repository.ContainerDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	prev, exists := m.docs[spec.ID]
	d := repository.ContainerDocument{
		ID:        spec.ID,
		Name:      spec.Name,
		Length:    spec.Length,
		Width:     spec.Width,
		Height:    spec.Height,
		MaxWeight: spec.MaxWeight,
		Color:     spec.Color,
		Version:   prev.Version + 1,
		CreatedAt: now,
		UpdatedAt: now,
		UpdatedBy: by,
	}
	if exists {
		d.CreatedAt = prev.CreatedAt
	}
	m.docs[spec.ID] = d
	return &d, nil
}

func (m *memoryContainers) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[id]
	delete(m.docs, id)
	return ok, nil
}
