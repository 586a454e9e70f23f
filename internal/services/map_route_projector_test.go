package services

import (
	"testing"
	"time"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/gorm"
)

func TestProjectRoutes_SplitsPastAndUpcoming(t *testing.T) {
	now := baseTime
	experiences := []gorm.FlightExperience{
		testExperience(1, testFlight(11, "P1", jfk, lax, now.Add(-72*time.Hour)), true, constants.FlightClassEconomy),
		testExperience(2, testFlight(12, "U2", lax, jfk, now.Add(48*time.Hour)), false, constants.FlightClassEconomy),
		testExperience(3, testFlight(13, "P3", jfk, lhr, now.Add(-24*time.Hour)), true, constants.FlightClassEconomy),
		testExperience(4, testFlight(14, "U4", lhr, jfk, now), false, constants.FlightClassEconomy),
		testExperience(5, testFlight(15, "X5", jfk, nil, now.Add(-time.Hour)), true, constants.FlightClassEconomy),
		{ID: 6, DidFly: true},
	}

	routes := ProjectRoutes(experiences, 10, 10, now)

	want := []string{"P3", "P1", "U4", "U2"}
	if len(routes) != len(want) {
		t.Fatalf("Expected %d routes, got %d", len(want), len(routes))
	}
	for i, w := range want {
		if routes[i].FlightNumber != w {
			t.Errorf("Position %d: expected %s, got %s", i, w, routes[i].FlightNumber)
		}
	}
	if routes[0].IsUpcoming || !routes[2].IsUpcoming {
		t.Error("A leg departing exactly now must be upcoming and past legs must not")
	}
	if routes[0].DepartureCode != "JFK" || routes[0].ArrivalCode != "LHR" {
		t.Errorf("Unexpected codes %s→%s", routes[0].DepartureCode, routes[0].ArrivalCode)
	}
	if !routes[0].DepartureCoordinate.Known() {
		t.Error("Expected departure coordinate to be carried over")
	}
}

func TestProjectRoutes_Caps(t *testing.T) {
	now := baseTime
	var experiences []gorm.FlightExperience
	for i := 1; i <= 5; i++ {
		experiences = append(experiences,
			testExperience(uint(i), testFlight(uint(i), "P", jfk, lax, now.Add(-time.Duration(i)*time.Hour)), true, constants.FlightClassEconomy),
			testExperience(uint(10+i), testFlight(uint(10+i), "U", lax, jfk, now.Add(time.Duration(i)*time.Hour)), false, constants.FlightClassEconomy),
		)
	}

	routes := ProjectRoutes(experiences, 2, 3, now)
	if len(routes) != 5 {
		t.Fatalf("Expected 2 past + 3 upcoming, got %d", len(routes))
	}
	if routes[0].FlightID != 1 || routes[1].FlightID != 2 {
		t.Errorf("Expected the two most recent past legs, got %d and %d", routes[0].FlightID, routes[1].FlightID)
	}
	if routes[2].FlightID != 11 || routes[4].FlightID != 13 {
		t.Errorf("Expected the three soonest upcoming legs, got %d..%d", routes[2].FlightID, routes[4].FlightID)
	}

	if got := ProjectRoutes(experiences, -1, -1, now); len(got) != 0 {
		t.Errorf("Expected negative caps to yield nothing, got %d", len(got))
	}
}

func TestProjectRoutes_UnknownCoordinatesStillDrawn(t *testing.T) {
	exp := testExperience(1, testFlight(1, "Z1", xxx, jfk, baseTime.Add(-time.Hour)), true, constants.FlightClassEconomy)
	routes := ProjectRoutes([]gorm.FlightExperience{exp}, 5, 5, baseTime)
	if len(routes) != 1 {
		t.Fatalf("Expected one route, got %d", len(routes))
	}
	if routes[0].DepartureCode != "ZZZZ" {
		t.Errorf("Expected ICAO fallback, got %s", routes[0].DepartureCode)
	}
	if routes[0].DepartureCoordinate.Known() {
		t.Error("Expected unknown coordinate")
	}
}
