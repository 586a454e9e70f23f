package common

import (
	"strings"

	"wayfarer/tracker/internal/metrics"
)

// InstrumentedCache records hit/miss counters around another cache.
// Keys are labelled by their prefix up to and including the last '_'.
type InstrumentedCache struct {
	CacheInterface
	metrics *metrics.MetricsRegistry
}

var _ CacheInterface = (*InstrumentedCache)(nil)

func NewInstrumentedCache(inner CacheInterface, m *metrics.MetricsRegistry) *InstrumentedCache {
	return &InstrumentedCache{CacheInterface: inner, metrics: m}
}

func (c *InstrumentedCache) Get(key string) (interface{}, bool) {
	val, found := c.CacheInterface.Get(key)
	if c.metrics != nil {
		if found {
			c.metrics.CacheHitsTotal.WithLabelValues(keyPattern(key)).Inc()
		} else {
			c.metrics.CacheMissesTotal.WithLabelValues(keyPattern(key)).Inc()
		}
	}
	return val, found
}

func keyPattern(key string) string {
	if i := strings.LastIndex(key, "_"); i >= 0 {
		return key[:i+1]
	}
	return key
}
