package common

import "time"

// CacheInterface is the shared key/value cache. The airport code lookups in
// FlightRepository and the code cache worker both go through it.
//
// Values read back from Redis are JSON-decoded, so callers must accept the
// generic decoded form as well as the type they stored.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)

	// Close releases the backend connection, if any.
	Close() error
}
