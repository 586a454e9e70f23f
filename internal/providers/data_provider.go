package providers

import (
	"context"

	"wayfarer/tracker/internal/models/dtos"
)

// LiveFlightProvider defines the interface for external live flight sources.
// Every method returns the upstream HTTP status alongside the result; the
// status is 0 when no response was received.
type LiveFlightProvider interface {
	// GetDepartures fetches flights currently departing the airport
	GetDepartures(ctx context.Context, airportCode string, limit int) ([]dtos.LiveObservation, int, error)

	// GetArrivals fetches flights currently arriving at the airport
	GetArrivals(ctx context.Context, airportCode string, limit int) ([]dtos.LiveObservation, int, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string
}

var _ LiveFlightProvider = (*AviationStackProvider)(nil)
