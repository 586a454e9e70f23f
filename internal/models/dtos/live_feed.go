package dtos

import "time"

// ---- Live feed (AviationStack-compatible /flights) ----

type LiveFlightsRawResponse struct {
	Pagination LivePagination     `json:"pagination"`
	Data       []LiveFlightEntry  `json:"data"`
	Error      *LiveFeedErrorBody `json:"error,omitempty"`
}

type LivePagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type LiveFeedErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LiveFlightEntry struct {
	FlightDate   string             `json:"flight_date"`
	FlightStatus string             `json:"flight_status"`
	Departure    LiveFlightEndpoint `json:"departure"`
	Arrival      LiveFlightEndpoint `json:"arrival"`
	Airline      LiveAirline        `json:"airline"`
	Flight       LiveFlightIdent    `json:"flight"`
	Aircraft     *LiveAircraft      `json:"aircraft"`
}

type LiveFlightEndpoint struct {
	Airport   string  `json:"airport"`
	Timezone  string  `json:"timezone"`
	IATA      string  `json:"iata"`
	ICAO      string  `json:"icao"`
	Terminal  *string `json:"terminal"`
	Gate      *string `json:"gate"`
	Scheduled *string `json:"scheduled"`
	Estimated *string `json:"estimated"`
	Actual    *string `json:"actual"`
}

type LiveAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type LiveFlightIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}

type LiveAircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
	ICAO         string `json:"icao"`
	ICAO24       string `json:"icao24"`
}

// LiveObservation is one flight reported by the live feed for an airport.
// It has no internal identifier and is never persisted.
type LiveObservation struct {
	FlightNumber string

	AirlineName string
	AirlineIATA string
	AirlineICAO string

	DepartureIATA string
	DepartureICAO string
	ArrivalIATA   string
	ArrivalICAO   string

	ScheduledDeparture *time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   *time.Time
	ActualArrival      *time.Time

	AircraftRegistration string
	AircraftType         string
}
