package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/models/gorm"
)

func experienceStore(experiences []gorm.FlightExperience) *mockExperienceStore {
	return &mockExperienceStore{
		getForUserFunc: func(ctx context.Context, userID string) ([]gorm.FlightExperience, error) {
			return experiences, nil
		},
	}
}

func newTestPassportService(experiences []gorm.FlightExperience) *PassportService {
	svc := NewPassportService(experienceStore(experiences), metrics.NewTestRegistry())
	svc.now = func() time.Time { return baseTime }
	return svc
}

func miles(t *testing.T, a, b *gorm.Airport) int {
	t.Helper()
	km, ok := analytics.GreatCircleKm(a.Coordinate(), b.Coordinate())
	if !ok {
		t.Fatalf("Expected known coordinates for %s-%s", a.Code(), b.Code())
	}
	return analytics.KmToMiles(km)
}

func withAirline(f gorm.Flight, name, iata string) gorm.Flight {
	f.Airline = &gorm.Airline{Name: name, IATA: iata}
	return f
}

func withAircraft(f gorm.Flight, model, typeCode string) gorm.Flight {
	f.Aircraft = &gorm.Aircraft{Model: model, TypeCode: typeCode}
	return f
}

func TestPassportService_AirlineCaseVariantsFoldTogether(t *testing.T) {
	experiences := []gorm.FlightExperience{
		testExperience(1, withAirline(testFlight(1, "CT1", jfk, lax, baseTime.Add(-48*time.Hour)), "Contoso Air", "CT"), true, constants.FlightClassEconomy),
		testExperience(2, withAirline(testFlight(2, "CT2", lax, jfk, baseTime.Add(-24*time.Hour)), "contoso air", "CT"), true, constants.FlightClassEconomy),
	}

	snap, err := newTestPassportService(experiences).BuildSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(snap.FlightsByAirline) != 1 {
		t.Fatalf("Expected exactly one airline key, got %v", snap.FlightsByAirline)
	}
	if snap.FlightsByAirline["Contoso Air"] != 2 {
		t.Errorf("Expected count 2 under first spelling, got %v", snap.FlightsByAirline)
	}
	if !reflect.DeepEqual(snap.AirlinesVisited, []string{"Contoso Air"}) {
		t.Errorf("Unexpected airlines visited %v", snap.AirlinesVisited)
	}
	if snap.FavoriteAirline != "Contoso Air" {
		t.Errorf("Expected favorite airline Contoso Air, got %q", snap.FavoriteAirline)
	}
}

func TestPassportService_FullSnapshot(t *testing.T) {
	jfkLax := withAircraft(withAirline(testFlight(1, "CT1", jfk, lax, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)), "Contoso Air", "CT"), "A320", "A320")
	jfkLhr := withAircraft(withAirline(testFlight(2, "BA2", jfk, lhr, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)), "Blue Air", "BA"), "", "a320")
	unknown := withAircraft(testFlight(3, "ZZ3", xxx, jfk, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)), "B777-300ER", "B77W")
	planned := withAirline(testFlight(4, "CT4", lax, lhr, baseTime.Add(24*time.Hour)), "Contoso Air", "CT")

	experiences := []gorm.FlightExperience{
		testExperience(1, jfkLax, true, constants.FlightClassBusiness),
		testExperience(2, jfkLhr, true, constants.FlightClassBusiness),
		testExperience(3, unknown, true, constants.FlightClassEconomy),
		testExperience(4, planned, false, constants.FlightClassFirst),
		testExperience(5, jfkLax, true, constants.FlightClassFirst),
	}

	snap, err := newTestPassportService(experiences).BuildSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if snap.TotalFlights != 4 {
		t.Errorf("Expected 4 flown legs, got %d", snap.TotalFlights)
	}

	laxMiles := miles(t, jfk, lax)
	lhrMiles := miles(t, jfk, lhr)
	if snap.TotalMiles != 2*laxMiles+lhrMiles {
		t.Errorf("Expected total %d, got %d", 2*laxMiles+lhrMiles, snap.TotalMiles)
	}
	if snap.LongestFlightMiles != lhrMiles || snap.ShortestFlightMiles != laxMiles {
		t.Errorf("Expected longest %d shortest %d, got %d/%d", lhrMiles, laxMiles, snap.LongestFlightMiles, snap.ShortestFlightMiles)
	}

	if !reflect.DeepEqual(snap.AirportsVisited, []string{"JFK", "LAX", "LHR", "ZZZZ"}) {
		t.Errorf("Unexpected airports %v", snap.AirportsVisited)
	}
	if snap.FavoriteAirport != "JFK" {
		t.Errorf("Expected favorite airport JFK, got %q", snap.FavoriteAirport)
	}
	if !reflect.DeepEqual(snap.CountriesVisited, []string{"United Kingdom", "us"}) {
		t.Errorf("Unexpected countries %v", snap.CountriesVisited)
	}

	if snap.FavoriteAirline != "Contoso Air" {
		t.Errorf("Expected Contoso Air, got %q", snap.FavoriteAirline)
	}
	if snap.MostFlownAircraftType != "A320" {
		t.Errorf("Expected A320, got %q", snap.MostFlownAircraftType)
	}
	if snap.FlightsByAircraftType["A320"] != 3 || snap.FlightsByAircraftType["B777-300ER"] != 1 {
		t.Errorf("Unexpected aircraft breakdown %v", snap.FlightsByAircraftType)
	}
	if snap.FavoriteClass != constants.FlightClassBusiness {
		t.Errorf("Expected business, got %s", snap.FavoriteClass)
	}
	if !reflect.DeepEqual(snap.FlightsPerYear, map[int]int{2025: 2, 2026: 2}) {
		t.Errorf("Unexpected per-year counts %v", snap.FlightsPerYear)
	}

	// Routes cover upcoming legs and collapse repeated flights.
	if len(snap.Routes) != 4 {
		t.Fatalf("Expected 4 routes, got %d", len(snap.Routes))
	}
	last := snap.Routes[len(snap.Routes)-1]
	if last.FlightID != 4 || !last.IsUpcoming {
		t.Errorf("Expected upcoming leg last, got %+v", last)
	}
}

func TestPassportService_CountryNamesKeepTheirCase(t *testing.T) {
	fra := testAirport(10, "FRA", "EDDF", fptr(50.0379), fptr(8.5622), "Germany")
	muc := testAirport(11, "MUC", "EDDM", fptr(48.3537), fptr(11.7750), "GERMANY")
	ber := testAirport(12, "BER", "EDDB", fptr(52.3667), fptr(13.5033), "DE")
	ham := testAirport(13, "HAM", "EDDH", fptr(53.6304), fptr(9.9882), "de")

	experiences := []gorm.FlightExperience{
		testExperience(1, testFlight(1, "LH1", fra, muc, baseTime.Add(-48*time.Hour)), true, constants.FlightClassEconomy),
		testExperience(2, testFlight(2, "LH2", ber, ham, baseTime.Add(-24*time.Hour)), true, constants.FlightClassEconomy),
	}

	snap, err := newTestPassportService(experiences).BuildSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"GERMANY", "Germany", "de"}
	if !reflect.DeepEqual(snap.CountriesVisited, want) {
		t.Errorf("Expected %v, got %v", want, snap.CountriesVisited)
	}
}

func TestPassportService_EmptyHistory(t *testing.T) {
	m := metrics.NewTestRegistry()
	svc := NewPassportService(experienceStore(nil), m)

	snap, err := svc.BuildSnapshot(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.TotalFlights != 0 || snap.TotalMiles != 0 || snap.LongestFlightMiles != 0 || snap.ShortestFlightMiles != 0 {
		t.Errorf("Expected zeroed totals, got %+v", snap)
	}
	if snap.FavoriteAirline != "" || snap.FavoriteAirport != "" || snap.MostFlownAircraftType != "" {
		t.Errorf("Expected no favorites, got %+v", snap)
	}
	// With nothing flown every class ties at zero and the first one is reported.
	if snap.FavoriteClass != constants.FlightClassEconomy {
		t.Errorf("Expected economy, got %s", snap.FavoriteClass)
	}
	if snap.AirlinesVisited == nil || snap.Routes == nil {
		t.Error("Expected empty, non-nil lists")
	}
	if got := testutil.ToFloat64(m.PassportSnapshotsTotal); got != 1 {
		t.Errorf("Expected snapshot counter 1, got %v", got)
	}
}

func TestPassportService_UnknownCoordinatesContributeNoMiles(t *testing.T) {
	experiences := []gorm.FlightExperience{
		testExperience(1, testFlight(1, "Z1", xxx, jfk, baseTime.Add(-time.Hour)), true, constants.FlightClassEconomy),
	}

	snap, err := newTestPassportService(experiences).BuildSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if snap.TotalFlights != 1 {
		t.Errorf("Expected one flown leg, got %d", snap.TotalFlights)
	}
	if snap.TotalMiles != 0 || snap.LongestFlightMiles != 0 || snap.ShortestFlightMiles != 0 {
		t.Errorf("Expected no mileage, got %+v", snap)
	}
}

func TestPassportService_GetPassportDetails(t *testing.T) {
	experiences := []gorm.FlightExperience{
		testExperience(1, withAircraft(withAirline(testFlight(1, "A1", jfk, lax, baseTime.Add(-3*time.Hour)), "Zephyr", "ZP"), "A320", ""), true, constants.FlightClassEconomy),
		testExperience(2, withAircraft(withAirline(testFlight(2, "A2", jfk, lhr, baseTime.Add(-2*time.Hour)), "Aero", "AE"), "B787", ""), true, constants.FlightClassEconomy),
		testExperience(3, withAircraft(withAirline(testFlight(3, "A3", lax, jfk, baseTime.Add(-1*time.Hour)), "zephyr", "ZP"), "A320", ""), true, constants.FlightClassEconomy),
		testExperience(4, withAircraft(withAirline(testFlight(4, "A4", jfk, lax, baseTime.Add(time.Hour)), "Bravo", "BV"), "E190", ""), false, constants.FlightClassEconomy),
	}

	details, err := newTestPassportService(experiences).GetPassportDetails(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	laxMiles := miles(t, jfk, lax)
	lhrMiles := miles(t, jfk, lhr)
	wantAirlines := []struct {
		name    string
		flights int
		miles   int
	}{
		{"Zephyr", 2, 2 * laxMiles},
		{"Aero", 1, lhrMiles},
	}
	if len(details.AirlineStats) != len(wantAirlines) {
		t.Fatalf("Expected %d airline rows, got %+v", len(wantAirlines), details.AirlineStats)
	}
	for i, w := range wantAirlines {
		got := details.AirlineStats[i]
		if got.Name != w.name || got.Flights != w.flights || got.Miles != w.miles {
			t.Errorf("Row %d: expected %+v, got %+v", i, w, got)
		}
	}

	if len(details.AircraftTypeStats) != 2 || details.AircraftTypeStats[0].Name != "A320" || details.AircraftTypeStats[1].Name != "B787" {
		t.Errorf("Unexpected aircraft rows %+v", details.AircraftTypeStats)
	}
}

func TestPassportService_DetailsTieBreaksByName(t *testing.T) {
	experiences := []gorm.FlightExperience{
		testExperience(1, withAirline(testFlight(1, "A1", jfk, lax, baseTime), "delta", "DL"), true, constants.FlightClassEconomy),
		testExperience(2, withAirline(testFlight(2, "A2", jfk, lax, baseTime), "Alpha", "AL"), true, constants.FlightClassEconomy),
	}

	svc := newTestPassportService(experiences)
	details, err := svc.GetPassportDetails(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if details.AirlineStats[0].Name != "Alpha" || details.AirlineStats[1].Name != "delta" {
		t.Errorf("Expected name order on ties, got %+v", details.AirlineStats)
	}

	snap, _ := svc.BuildSnapshot(context.Background(), "user-1")
	if snap.FavoriteAirline != "Alpha" {
		t.Errorf("Expected first name in sorted order to win the tie, got %q", snap.FavoriteAirline)
	}
}

func TestPassportService_GetMapRoutes(t *testing.T) {
	experiences := []gorm.FlightExperience{
		testExperience(1, testFlight(1, "P1", jfk, lax, baseTime.Add(-time.Hour)), true, constants.FlightClassEconomy),
		testExperience(2, testFlight(2, "P2", jfk, lax, baseTime.Add(-2*time.Hour)), true, constants.FlightClassEconomy),
		testExperience(3, testFlight(3, "U3", lax, jfk, baseTime.Add(time.Hour)), false, constants.FlightClassEconomy),
	}

	routes, err := newTestPassportService(experiences).GetMapRoutes(context.Background(), "user-1", 1, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(routes) != 2 || routes[0].FlightNumber != "P1" || routes[1].FlightNumber != "U3" {
		t.Errorf("Unexpected routes %+v", routes)
	}
}

func TestPassportService_StoreError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewPassportService(&mockExperienceStore{
		getForUserFunc: func(ctx context.Context, userID string) ([]gorm.FlightExperience, error) {
			return nil, boom
		},
	}, nil)

	if _, err := svc.BuildSnapshot(context.Background(), "user-1"); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped error from snapshot, got %v", err)
	}
	if _, err := svc.GetPassportDetails(context.Background(), "user-1"); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped error from details, got %v", err)
	}
}
