package services

import (
	"context"
	"fmt"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/models/dtos"
)

// MethodologyVersion identifies the distance and CO2 formulas. Bump it
// whenever RoutingSurcharge or the estimator factors change.
const MethodologyVersion = "wayfarer-co2-v1"

// RoutingSurcharge pads great-circle distance for routing and wind.
const RoutingSurcharge = 1.05

type FlightAnalyticsService struct {
	flights FlightStore
}

func NewFlightAnalyticsService(flights FlightStore) *FlightAnalyticsService {
	return &FlightAnalyticsService{flights: flights}
}

// DistanceAndEmissions returns nil, without error, when the flight or either
// airport is missing or a coordinate is unknown.
func (s *FlightAnalyticsService) DistanceAndEmissions(ctx context.Context, flightID uint) (*dtos.FlightEmissions, error) {
	flight, err := s.flights.GetByID(ctx, flightID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight %d: %w", flightID, err)
	}
	if flight == nil || flight.DepartureAirport == nil || flight.ArrivalAirport == nil {
		return nil, nil
	}

	gcKm, ok := analytics.GreatCircleKm(flight.DepartureAirport.Coordinate(), flight.ArrivalAirport.Coordinate())
	if !ok {
		return nil, nil
	}

	adjustedKm := analytics.Round(gcKm*RoutingSurcharge, 1)
	return &dtos.FlightEmissions{
		FlightID:           flight.ID,
		GreatCircleKm:      gcKm,
		AdjustedKm:         adjustedKm,
		Co2Kg:              analytics.EstimateCo2Kg(adjustedKm, flight.Aircraft.Hint()),
		MethodologyVersion: MethodologyVersion,
	}, nil
}
