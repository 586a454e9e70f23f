package api

import (
	"context"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/models/entities"
)

// BoardProvider builds airport departure and arrival boards.
type BoardProvider interface {
	Board(ctx context.Context, airportCode string, direction constants.BoardDirection, includeLive bool, limit int) (*dtos.BoardResponse, error)
}

// EmissionsCalculator computes per-flight distance and CO2.
type EmissionsCalculator interface {
	DistanceAndEmissions(ctx context.Context, flightID uint) (*dtos.FlightEmissions, error)
}

// PassportProvider aggregates a user's travel history.
type PassportProvider interface {
	BuildSnapshot(ctx context.Context, userID string) (*dtos.PassportSnapshot, error)
	GetPassportDetails(ctx context.Context, userID string) (*dtos.PassportDetails, error)
	GetMapRoutes(ctx context.Context, userID string, maxPast, maxUpcoming int) ([]dtos.MapRoute, error)
}

// UserDirectory answers whether a user id is known.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// UserLookup loads the account behind an authenticated caller.
type UserLookup interface {
	FindByID(ctx context.Context, userID string) (*entities.User, error)
}

// AirportImporter replaces airport reference data from its source.
type AirportImporter interface {
	LoadFromSource(ctx context.Context) (int, error)
	AirportCount(ctx context.Context) (int64, error)
}

// CodeCacheRefresher reloads the airport code lookup cache.
type CodeCacheRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Pinger reports the reachability of a backing service.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a plain ping method to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}
