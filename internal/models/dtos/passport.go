package dtos

import (
	"time"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/constants"
)

// MapRoute is a drawable leg of a user's travel map.
type MapRoute struct {
	ExperienceID        uint                 `json:"experience_id"`
	FlightID            uint                 `json:"flight_id"`
	FlightNumber        string               `json:"flight_number"`
	DepartureCode       string               `json:"departure_code"`
	ArrivalCode         string               `json:"arrival_code"`
	DepartureCoordinate analytics.Coordinate `json:"departure_coordinate"`
	ArrivalCoordinate   analytics.Coordinate `json:"arrival_coordinate"`
	DepartureTime       time.Time            `json:"departure_time"`
	ArrivalTime         time.Time            `json:"arrival_time"`
	IsUpcoming          bool                 `json:"is_upcoming"`
}

// PassportSnapshot aggregates a user's lifetime travel.
type PassportSnapshot struct {
	UserID string `json:"user_id"`

	TotalFlights        int `json:"total_flights"`
	TotalMiles          int `json:"total_miles"`
	LongestFlightMiles  int `json:"longest_flight_miles"`
	ShortestFlightMiles int `json:"shortest_flight_miles"`

	FavoriteAirline       string                `json:"favorite_airline,omitempty"`
	FavoriteAirport       string                `json:"favorite_airport,omitempty"`
	MostFlownAircraftType string                `json:"most_flown_aircraft_type,omitempty"`
	FavoriteClass         constants.FlightClass `json:"favorite_class"`

	AirlinesVisited  []string `json:"airlines_visited"`
	AirportsVisited  []string `json:"airports_visited"`
	CountriesVisited []string `json:"countries_visited"`

	FlightsPerYear        map[int]int    `json:"flights_per_year"`
	FlightsByAirline      map[string]int `json:"flights_by_airline"`
	FlightsByAircraftType map[string]int `json:"flights_by_aircraft_type"`

	Routes []MapRoute `json:"routes"`
}

// PassportStat is one row of the passport details breakdown.
type PassportStat struct {
	Name    string `json:"name"`
	Flights int    `json:"flights"`
	Miles   int    `json:"miles"`
}

type PassportDetails struct {
	UserID            string         `json:"user_id"`
	AirlineStats      []PassportStat `json:"airline_stats"`
	AircraftTypeStats []PassportStat `json:"aircraft_type_stats"`
}
