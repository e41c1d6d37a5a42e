package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/cargo-service/internal/domain/model"
	"github.com/guttosm/cargo-service/internal/logger"
	"github.com/guttosm/cargo-service/internal/metrics"
	"github.com/guttosm/cargo-service/internal/packing"
	"github.com/guttosm/cargo-service/internal/service/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultMaxUnits caps the expanded unit count of one packing run.
const DefaultMaxUnits = 5000

// ErrTooManyUnits is returned when a request expands to more units than allowed.
var ErrTooManyUnits = errors.New("too many units in packing request")

// CargoPacker defines the packing and manual-editing operations exposed to transports.
type CargoPacker interface {
	Pack(items []model.ItemSpec, container model.ContainerSpec) (model.PackingResult, error)
	Snap(pos model.Position, dims model.Dimensions, container model.ContainerSpec, placed []model.PlacedItem, selfIndex int) model.SnapResult
	// Reposition moves one placement; with snap set, the position is snapped first.
	Reposition(current model.PackingResult, container model.ContainerSpec, index int, pos model.Position, snap bool) (model.PackingResult, error)
	AddPlaced(current model.PackingResult, container model.ContainerSpec, item model.PlacedItem) model.PackingResult
	RemovePlaced(current model.PackingResult, container model.ContainerSpec, index int) (model.PackingResult, model.UnitItem, error)
	// InvalidateCache clears cached packing results (useful when a container definition changes)
	InvalidateCache()
}

// Option configures a CargoPackerService.
type Option func(*CargoPackerService)

// CargoPackerService implements CargoPacker on top of the packing engine,
// caching full packing results by request fingerprint.
type CargoPackerService struct {
	cache    cache.Cache
	flight   singleflight.Group
	maxUnits int
}

// NewCargoPackerService creates a new CargoPackerService with the given options.
func NewCargoPackerService(opts ...Option) *CargoPackerService {
	s := &CargoPackerService{maxUnits: DefaultMaxUnits}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *CargoPackerService) {
		if capacity > 0 {
			s.cache = newResultCache(capacity, ttl)
		}
	}
}

// WithShardedCache enables a sharded result cache.
func WithShardedCache(capacity int, ttl time.Duration, shards int) Option {
	return func(s *CargoPackerService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *CargoPackerService) {
		s.cache = c
	}
}

// WithMaxUnits overrides the per-request unit limit. Non-positive values are ignored.
func WithMaxUnits(n int) Option {
	return func(s *CargoPackerService) {
		if n > 0 {
			s.maxUnits = n
		}
	}
}

// Pack runs the packing engine, serving repeated requests from the cache.
func (s *CargoPackerService) Pack(items []model.ItemSpec, container model.ContainerSpec) (model.PackingResult, error) {
	units := 0
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if it.Quantity > s.maxUnits-units {
			metrics.RecordPackRunError(container.ID)
			return model.PackingResult{}, fmt.Errorf("%w: %q adds %d to %d, limit %d",
				ErrTooManyUnits, it.ID, it.Quantity, units, s.maxUnits)
		}
		units += it.Quantity
	}

	if s.cache == nil {
		return s.run(items, container, units), nil
	}

	key := cache.Key(items, container)
	if result, ok := s.cache.Get(key); ok {
		return result, nil
	}

	// Identical requests that miss together share one packing run.
	v, _, shared := s.flight.Do(key, func() (any, error) {
		result := s.run(items, container, units)
		s.cache.Set(key, result)
		if cm, ok := s.cache.(cache.CacheWithMetrics); ok {
			m := cm.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		}
		return result, nil
	})
	if shared {
		metrics.RecordCacheOperation("get", "coalesced")
	}
	return v.(model.PackingResult), nil
}

func (s *CargoPackerService) run(items []model.ItemSpec, container model.ContainerSpec, units int) model.PackingResult {
	start := time.Now()
	result := packing.Pack(items, container)
	elapsed := time.Since(start)

	metrics.RecordPackRun(container.ID, elapsed, len(result.Placed), len(result.Unpacked),
		result.VolumeUtilization, result.WeightUtilization)

	log := logger.Component("packer")
	log.Debug().
		Str("container", container.ID).
		Int("units", units).
		Int("placed", len(result.Placed)).
		Int("unpacked", len(result.Unpacked)).
		Float64("volume_utilization", result.VolumeUtilization).
		Float64("weight_utilization", result.WeightUtilization).
		Dur("duration", elapsed).
		Msg("Packing run completed")

	return result
}

// Snap aligns a dragged placement to walls and neighbors.
func (s *CargoPackerService) Snap(pos model.Position, dims model.Dimensions, container model.ContainerSpec, placed []model.PlacedItem, selfIndex int) model.SnapResult {
	r := packing.Snap(pos, dims, container, placed, selfIndex)
	metrics.RecordSnap(r.SnappedX, r.SnappedY, r.SnappedZ)
	return r
}

// Reposition moves placement index to pos, optionally snapping it first.
func (s *CargoPackerService) Reposition(current model.PackingResult, container model.ContainerSpec, index int, pos model.Position, snap bool) (model.PackingResult, error) {
	if snap && index >= 0 && index < len(current.Placed) {
		pos = s.Snap(pos, current.Placed[index].Dimensions, container, current.Placed, index).Position
	}
	result, err := packing.Reposition(current, container, index, pos)
	metrics.RecordManualEdit("reposition", status(err))
	return result, err
}

// AddPlaced binds a unit to a caller-chosen position.
func (s *CargoPackerService) AddPlaced(current model.PackingResult, container model.ContainerSpec, item model.PlacedItem) model.PackingResult {
	metrics.RecordManualEdit("add", "success")
	return packing.AddPlaced(current, container, item)
}

// RemovePlaced takes a placement out of the container.
func (s *CargoPackerService) RemovePlaced(current model.PackingResult, container model.ContainerSpec, index int) (model.PackingResult, model.UnitItem, error) {
	result, removed, err := packing.RemovePlaced(current, container, index)
	metrics.RecordManualEdit("remove", status(err))
	return result, removed, err
}

// InvalidateCache clears the packing result cache.
func (s *CargoPackerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close releases cache resources.
func (s *CargoPackerService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
