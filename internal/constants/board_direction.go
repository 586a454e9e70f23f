package constants

import "strings"

// BoardDirection selects which side of an airport board is requested.
type BoardDirection string

const (
	BoardDirectionDeparting BoardDirection = "departing"
	BoardDirectionArriving  BoardDirection = "arriving"
	BoardDirectionBoth      BoardDirection = "both"
)

// ParseBoardDirection maps query values onto a direction. Unknown or empty
// values fall back to BoardDirectionBoth.
func ParseBoardDirection(s string) BoardDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "departing", "departures", "departure", "dep":
		return BoardDirectionDeparting
	case "arriving", "arrivals", "arrival", "arr":
		return BoardDirectionArriving
	default:
		return BoardDirectionBoth
	}
}

func (d BoardDirection) IncludesDepartures() bool {
	return d == BoardDirectionDeparting || d == BoardDirectionBoth
}

func (d BoardDirection) IncludesArrivals() bool {
	return d == BoardDirectionArriving || d == BoardDirectionBoth
}
