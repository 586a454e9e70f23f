package repositories

import (
	"context"
	"errors"
	"time"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/strutil"

	gormlib "gorm.io/gorm"
)

// AirportCodeCacheTTL bounds how long a resolved code stays cached between
// worker refreshes.
const AirportCodeCacheTTL = time.Hour

// CodeCache is the subset of the shared cache used for airport code lookups.
type CodeCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, duration time.Duration)
}

// FlightRepository reads canonical flights with their airports, airline and
// aircraft resolved.
type FlightRepository struct {
	db       *gormlib.DB
	airports *AirportRepository
	cache    CodeCache
}

// NewFlightRepository creates a flight repository. cache may be nil.
func NewFlightRepository(db *gormlib.DB, cache CodeCache) *FlightRepository {
	return &FlightRepository{
		db:       db,
		airports: NewAirportRepository(db),
		cache:    cache,
	}
}

func (r *FlightRepository) withJoins(ctx context.Context) *gormlib.DB {
	return r.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Preload("Airline").
		Preload("Aircraft")
}

// GetByID returns nil, nil when the flight does not exist.
func (r *FlightRepository) GetByID(ctx context.Context, id uint) (*gorm.Flight, error) {
	var flight gorm.Flight
	err := r.withJoins(ctx).First(&flight, id).Error
	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

// SearchByRoute returns flights departing from and/or arriving at the given
// airport codes (IATA or ICAO), optionally restricted to one UTC calendar day.
// A code that matches no airport yields no flights.
func (r *FlightRepository) SearchByRoute(ctx context.Context, departureCode, arrivalCode *string, date *time.Time) ([]gorm.Flight, error) {
	query := r.withJoins(ctx)

	if departureCode != nil && !strutil.IsBlank(*departureCode) {
		ids, err := r.resolveAirportIDs(ctx, *departureCode)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []gorm.Flight{}, nil
		}
		query = query.Where("departure_airport_id IN ?", ids)
	}

	if arrivalCode != nil && !strutil.IsBlank(*arrivalCode) {
		ids, err := r.resolveAirportIDs(ctx, *arrivalCode)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []gorm.Flight{}, nil
		}
		query = query.Where("arrival_airport_id IN ?", ids)
	}

	if date != nil {
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where("scheduled_departure_utc >= ? AND scheduled_departure_utc < ?", start, start.Add(24*time.Hour))
	}

	var flights []gorm.Flight
	if err := query.Order("scheduled_departure_utc DESC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

// Create inserts a flight. Used by seeding and tests.
func (r *FlightRepository) Create(ctx context.Context, flight *gorm.Flight) error {
	return r.db.WithContext(ctx).Create(flight).Error
}

func (r *FlightRepository) resolveAirportIDs(ctx context.Context, code string) ([]uint, error) {
	key := AirportCodeCacheKey(code)
	if r.cache != nil {
		if val, found := r.cache.Get(key); found {
			if ids, ok := idsFromCache(val); ok {
				return ids, nil
			}
		}
	}

	ids, err := r.airports.IDsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Set(key, ids, AirportCodeCacheTTL)
	}
	return ids, nil
}

// AirportCodeCacheKey is the cache key for a normalized airport code.
func AirportCodeCacheKey(code string) string {
	return string(constants.CachePrefixAirportCode) + strutil.NormalizeCode(code)
}

// idsFromCache accepts both the in-memory representation and the generic
// JSON-decoded one produced by the Redis cache.
func idsFromCache(val interface{}) ([]uint, bool) {
	switch v := val.(type) {
	case []uint:
		return v, true
	case []interface{}:
		ids := make([]uint, 0, len(v))
		for _, item := range v {
			f, ok := item.(float64)
			if !ok || f < 0 {
				return nil, false
			}
			ids = append(ids, uint(f))
		}
		return ids, true
	case nil:
		// JSON null: the code is known to match nothing
		return []uint{}, true
	default:
		return nil, false
	}
}
