package dtos

// BoardItem sources
const (
	BoardSourceStored = "stored"
	BoardSourceLive   = "live"
	BoardSourceMerged = "merged"
)

// BoardItem is a display-ready departures/arrivals entry. ID is set only when
// the entry is backed by a stored flight. Times are ISO-8601 UTC text.
type BoardItem struct {
	ID            *uint  `json:"id,omitempty"`
	FlightNumber  string `json:"flight_number"`
	Airline       string `json:"airline,omitempty"`
	Aircraft      string `json:"aircraft,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureCode string `json:"departure_code,omitempty"`
	ArrivalCode   string `json:"arrival_code,omitempty"`
	Source        string `json:"source"`
}

type BoardResponse struct {
	Departing []BoardItem `json:"departing"`
	Arriving  []BoardItem `json:"arriving"`
}

// EmptyBoard returns a board with non-nil, empty lists.
func EmptyBoard() *BoardResponse {
	return &BoardResponse{
		Departing: []BoardItem{},
		Arriving:  []BoardItem{},
	}
}
