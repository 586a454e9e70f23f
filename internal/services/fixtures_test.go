package services

import (
	"context"
	"time"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/models/gorm"
)

// Mock FlightStore
type mockFlightStore struct {
	searchByRouteFunc func(ctx context.Context, dep, arr *string, date *time.Time) ([]gorm.Flight, error)
	getByIDFunc       func(ctx context.Context, id uint) (*gorm.Flight, error)
}

func (m *mockFlightStore) SearchByRoute(ctx context.Context, dep, arr *string, date *time.Time) ([]gorm.Flight, error) {
	return m.searchByRouteFunc(ctx, dep, arr, date)
}

func (m *mockFlightStore) GetByID(ctx context.Context, id uint) (*gorm.Flight, error) {
	return m.getByIDFunc(ctx, id)
}

// Mock LiveFeed
type mockLiveFeed struct {
	departuresFunc func(ctx context.Context, code string, limit int) []dtos.LiveObservation
	arrivalsFunc   func(ctx context.Context, code string, limit int) []dtos.LiveObservation
}

func (m *mockLiveFeed) Departures(ctx context.Context, code string, limit int) []dtos.LiveObservation {
	return m.departuresFunc(ctx, code, limit)
}

func (m *mockLiveFeed) Arrivals(ctx context.Context, code string, limit int) []dtos.LiveObservation {
	return m.arrivalsFunc(ctx, code, limit)
}

// Mock FlightExperienceStore
type mockExperienceStore struct {
	getForUserFunc func(ctx context.Context, userID string) ([]gorm.FlightExperience, error)
}

func (m *mockExperienceStore) GetForUser(ctx context.Context, userID string) ([]gorm.FlightExperience, error) {
	return m.getForUserFunc(ctx, userID)
}

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func testAirport(id uint, iata, icao string, lat, lon *float64, country string) *gorm.Airport {
	return &gorm.Airport{
		ID:        id,
		IATA:      iata,
		ICAO:      icao,
		Name:      iata + " Airport",
		Country:   country,
		Latitude:  lat,
		Longitude: lon,
	}
}

var (
	jfk = testAirport(1, "JFK", "KJFK", fptr(40.6413), fptr(-73.7781), "US")
	lax = testAirport(2, "LAX", "KLAX", fptr(33.9416), fptr(-118.4085), "US")
	lhr = testAirport(3, "LHR", "EGLL", fptr(51.4700), fptr(-0.4543), "United Kingdom")
	xxx = testAirport(4, "", "ZZZZ", nil, nil, "")
)

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func testFlight(id uint, number string, dep, arr *gorm.Airport, departure time.Time) gorm.Flight {
	return gorm.Flight{
		ID:                    id,
		FlightNumber:          number,
		Status:                constants.FlightStatusScheduled,
		ScheduledDepartureUTC: departure,
		ScheduledArrivalUTC:   departure.Add(5 * time.Hour),
		DepartureAirport:      dep,
		ArrivalAirport:        arr,
	}
}

func testExperience(id uint, f gorm.Flight, didFly bool, class constants.FlightClass) gorm.FlightExperience {
	flight := f
	return gorm.FlightExperience{
		ID:          id,
		UserID:      "user-1",
		FlightID:    f.ID,
		DidFly:      didFly,
		FlightClass: class,
		Flight:      &flight,
	}
}
