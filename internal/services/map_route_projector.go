package services

import (
	"sort"
	"time"

	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/models/gorm"
)

// ProjectRoutes turns flight experiences into map routes. Only legs with both
// airports resolved are drawn. Past legs come first, newest first, capped at
// maxPast; upcoming legs follow, soonest first, capped at maxUpcoming. A leg
// departing exactly at now counts as upcoming.
func ProjectRoutes(experiences []gorm.FlightExperience, maxPast, maxUpcoming int, now time.Time) []dtos.MapRoute {
	if maxPast < 0 {
		maxPast = 0
	}
	if maxUpcoming < 0 {
		maxUpcoming = 0
	}

	var past, upcoming []dtos.MapRoute
	for i := range experiences {
		exp := &experiences[i]
		f := exp.Flight
		if f == nil || f.DepartureAirport == nil || f.ArrivalAirport == nil {
			continue
		}

		route := dtos.MapRoute{
			ExperienceID:        exp.ID,
			FlightID:            f.ID,
			FlightNumber:        f.FlightNumber,
			DepartureCode:       f.DepartureAirport.Code(),
			ArrivalCode:         f.ArrivalAirport.Code(),
			DepartureCoordinate: f.DepartureAirport.Coordinate(),
			ArrivalCoordinate:   f.ArrivalAirport.Coordinate(),
			DepartureTime:       f.ScheduledDepartureUTC,
			ArrivalTime:         f.ScheduledArrivalUTC,
			IsUpcoming:          !f.ScheduledDepartureUTC.Before(now),
		}
		if route.IsUpcoming {
			upcoming = append(upcoming, route)
		} else {
			past = append(past, route)
		}
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].DepartureTime.After(past[j].DepartureTime)
	})
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DepartureTime.Before(upcoming[j].DepartureTime)
	})

	if len(past) > maxPast {
		past = past[:maxPast]
	}
	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}

	routes := make([]dtos.MapRoute, 0, len(past)+len(upcoming))
	routes = append(routes, past...)
	return append(routes, upcoming...)
}
