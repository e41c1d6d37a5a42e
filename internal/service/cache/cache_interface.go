// Package cache defines the packing result cache contract and its key scheme.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/guttosm/cargo-service/internal/domain/model"
)

// Cache defines the interface for cache operations.
type Cache interface {
	Get(key string) (model.PackingResult, bool)
	Set(key string, value model.PackingResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

type fingerprint struct {
	Items     []model.ItemSpec    `json:"items"`
	Container model.ContainerSpec `json:"container"`
}

// Key fingerprints a packing request. Equal inputs, in the same order, produce equal keys.
func Key(items []model.ItemSpec, container model.ContainerSpec) string {
	container.Name, container.Color = "", ""
	raw, err := json.Marshal(fingerprint{Items: items, Container: container})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
