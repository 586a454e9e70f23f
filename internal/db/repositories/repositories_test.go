package repositories

import (
	"context"
	"testing"
	"time"

	"wayfarer/tracker/internal/constants"
	gormModels "wayfarer/tracker/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.Airport{},
		&gormModels.Airline{},
		&gormModels.Aircraft{},
		&gormModels.Flight{},
		&gormModels.User{},
		&gormModels.FlightExperience{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

type mapCache struct {
	items map[string]interface{}
	gets  int
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]interface{}{}}
}

func (c *mapCache) Get(key string) (interface{}, bool) {
	c.gets++
	v, ok := c.items[key]
	return v, ok
}

func (c *mapCache) Set(key string, value interface{}, _ time.Duration) {
	c.items[key] = value
}

func f64(v float64) *float64 { return &v }
func uptr(v uint) *uint { return &v }

type fixture struct {
	jfk, lax, sfo gormModels.Airport
	airline       gormModels.Airline
	aircraft      gormModels.Aircraft
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	fx := fixture{
		jfk:      gormModels.Airport{IATA: "JFK", ICAO: "KJFK", Name: "John F Kennedy", Country: "US", Latitude: f64(40.6413), Longitude: f64(-73.7781)},
		lax:      gormModels.Airport{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles", Country: "US", Latitude: f64(33.9416), Longitude: f64(-118.4085)},
		sfo:      gormModels.Airport{IATA: "SFO", ICAO: "KSFO", Name: "San Francisco", Country: "US"},
		airline:  gormModels.Airline{Name: "Contoso Air", IATA: "CT", ICAO: "CTS"},
		aircraft: gormModels.Aircraft{Model: "A320", Registration: "N320CT", TypeCode: "A320"},
	}
	for _, rec := range []interface{}{&fx.jfk, &fx.lax, &fx.sfo, &fx.airline, &fx.aircraft} {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
	}
	return fx
}

func TestAirportRepository_UpsertByICAO(t *testing.T) {
	db := setupTestDB(t)
	fx := seed(t, db)
	repo := NewAirportRepository(db)
	ctx := context.Background()

	err := repo.UpsertByICAO(ctx, []gormModels.Airport{
		{ICAO: "KJFK", IATA: "JFK", Name: "Kennedy International", Country: "US", Latitude: f64(40.6398), Longitude: f64(-73.7789)},
		{ICAO: "EGLL", IATA: "LHR", Name: "Heathrow", Country: "GB"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 4 {
		t.Errorf("Expected 4 airports after upsert, got %d", count)
	}

	var jfk gormModels.Airport
	if err := db.Where("icao = ?", "KJFK").First(&jfk).Error; err != nil {
		t.Fatalf("Expected KJFK, got %v", err)
	}
	if jfk.ID != fx.jfk.ID {
		t.Errorf("Expected KJFK to keep id %d, got %d", fx.jfk.ID, jfk.ID)
	}
	if jfk.Name != "Kennedy International" {
		t.Errorf("Expected name to be updated, got %q", jfk.Name)
	}
}

func TestAirportRepository_ListCodes(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	codes, err := NewAirportRepository(db).ListCodes(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(codes) != 3 || codes[0].IATA != "JFK" || codes[0].ICAO != "KJFK" {
		t.Errorf("Unexpected codes: %+v", codes)
	}
}

func TestFlightRepository_SearchByRoute(t *testing.T) {
	db := setupTestDB(t)
	fx := seed(t, db)
	ctx := context.Background()
	cache := newMapCache()
	repo := NewFlightRepository(db, cache)

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	flights := []gormModels.Flight{
		{FlightNumber: "CT1", Status: constants.FlightStatusScheduled, ScheduledDepartureUTC: day.Add(8 * time.Hour), ScheduledArrivalUTC: day.Add(14 * time.Hour),
			DepartureAirportID: uptr(fx.jfk.ID), ArrivalAirportID: uptr(fx.lax.ID), AirlineID: uptr(fx.airline.ID), AircraftID: uptr(fx.aircraft.ID)},
		{FlightNumber: "CT2", ScheduledDepartureUTC: day.Add(30 * time.Hour), ScheduledArrivalUTC: day.Add(36 * time.Hour),
			DepartureAirportID: uptr(fx.jfk.ID), ArrivalAirportID: uptr(fx.sfo.ID)},
		{FlightNumber: "CT3", ScheduledDepartureUTC: day.Add(10 * time.Hour), ScheduledArrivalUTC: day.Add(16 * time.Hour),
			DepartureAirportID: uptr(fx.lax.ID), ArrivalAirportID: uptr(fx.jfk.ID)},
	}
	for i := range flights {
		if err := repo.Create(ctx, &flights[i]); err != nil {
			t.Fatalf("Failed to create flight: %v", err)
		}
	}

	dep := "jfk"
	got, err := repo.SearchByRoute(ctx, &dep, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 departures from JFK, got %d", len(got))
	}
	if got[0].FlightNumber != "CT2" {
		t.Errorf("Expected latest departure first, got %s", got[0].FlightNumber)
	}
	if got[1].Airline == nil || got[1].Airline.Name != "Contoso Air" {
		t.Errorf("Expected airline to be preloaded, got %+v", got[1].Airline)
	}
	if got[1].DepartureAirport == nil || got[1].DepartureAirport.Code() != "JFK" {
		t.Errorf("Expected departure airport to be preloaded")
	}

	if _, ok := cache.items[AirportCodeCacheKey("JFK")]; !ok {
		t.Error("Expected resolved airport code to be cached")
	}

	arr := "KJFK"
	got, err = repo.SearchByRoute(ctx, nil, &arr, nil)
	if err != nil || len(got) != 1 || got[0].FlightNumber != "CT3" {
		t.Errorf("Expected CT3 arriving at KJFK, got %v (err=%v)", got, err)
	}

	got, err = repo.SearchByRoute(ctx, &dep, nil, &day)
	if err != nil || len(got) != 1 || got[0].FlightNumber != "CT1" {
		t.Errorf("Expected only CT1 on the requested day, got %v (err=%v)", got, err)
	}

	unknown := "ZZZ"
	got, err = repo.SearchByRoute(ctx, &unknown, nil, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Expected no flights for unknown airport, got %v (err=%v)", got, err)
	}
}

func TestFlightRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	fx := seed(t, db)
	ctx := context.Background()
	repo := NewFlightRepository(db, nil)

	flight := gormModels.Flight{FlightNumber: "CT9", ScheduledDepartureUTC: time.Now().UTC(), DepartureAirportID: uptr(fx.jfk.ID), AircraftID: uptr(fx.aircraft.ID)}
	if err := repo.Create(ctx, &flight); err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	got, err := repo.GetByID(ctx, flight.ID)
	if err != nil || got == nil {
		t.Fatalf("Expected flight, got %v (err=%v)", got, err)
	}
	if got.ArrivalAirport != nil {
		t.Error("Expected missing arrival airport to stay nil")
	}
	if got.Aircraft == nil || got.Aircraft.DisplayName() != "A320 • N320CT" {
		t.Errorf("Expected aircraft display name, got %+v", got.Aircraft)
	}

	missing, err := repo.GetByID(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("Expected nil for missing flight, got %v (err=%v)", missing, err)
	}
}

func TestIdsFromCache_RedisShape(t *testing.T) {
	ids, ok := idsFromCache([]interface{}{float64(3), float64(7)})
	if !ok || len(ids) != 2 || ids[1] != 7 {
		t.Errorf("Expected [3 7], got %v (ok=%v)", ids, ok)
	}
	ids, ok = idsFromCache(nil)
	if !ok || len(ids) != 0 {
		t.Errorf("Expected empty ids for JSON null, got %v", ids)
	}
	if _, ok := idsFromCache("garbage"); ok {
		t.Error("Expected unknown cache shape to be rejected")
	}
}

func TestFlightExperienceRepository_GetForUser(t *testing.T) {
	db := setupTestDB(t)
	fx := seed(t, db)
	ctx := context.Background()

	flight := gormModels.Flight{FlightNumber: "CT1", ScheduledDepartureUTC: time.Now().UTC(),
		DepartureAirportID: uptr(fx.jfk.ID), ArrivalAirportID: uptr(fx.lax.ID), AirlineID: uptr(fx.airline.ID)}
	if err := db.Create(&flight).Error; err != nil {
		t.Fatalf("Failed to create flight: %v", err)
	}

	repo := NewFlightExperienceRepository(db)
	for _, userID := range []string{"u1", "u1", "u2"} {
		exp := gormModels.FlightExperience{UserID: userID, FlightID: flight.ID, DidFly: true, FlightClass: constants.FlightClassBusiness}
		if err := repo.Create(ctx, &exp); err != nil {
			t.Fatalf("Failed to create experience: %v", err)
		}
	}

	got, err := repo.GetForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 experiences, got %d", len(got))
	}
	if got[0].Flight == nil || got[0].Flight.ArrivalAirport == nil || got[0].Flight.ArrivalAirport.IATA != "LAX" {
		t.Errorf("Expected nested airport preload, got %+v", got[0].Flight)
	}
	if got[0].Flight.Airline == nil || got[0].Flight.Airline.IATA != "CT" {
		t.Errorf("Expected nested airline preload")
	}
}
