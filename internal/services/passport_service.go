package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/models/dtos"
	"wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/strutil"
)

// FlightExperienceStore loads a user's flight experiences with their flight,
// airports, airline and aircraft already joined.
type FlightExperienceStore interface {
	GetForUser(ctx context.Context, userID string) ([]gorm.FlightExperience, error)
}

// PassportService aggregates a user's flown legs into passport statistics.
type PassportService struct {
	experiences FlightExperienceStore
	metrics     *metrics.MetricsRegistry
	now         func() time.Time
}

func NewPassportService(experiences FlightExperienceStore, m *metrics.MetricsRegistry) *PassportService {
	return &PassportService{
		experiences: experiences,
		metrics:     m,
		now:         time.Now,
	}
}

// BuildSnapshot computes the passport for a user. Only legs the user actually
// flew feed the statistics; routes cover the whole history, upcoming included.
func (s *PassportService) BuildSnapshot(ctx context.Context, userID string) (*dtos.PassportSnapshot, error) {
	experiences, err := s.experiences.GetForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight experiences for %s: %w", userID, err)
	}

	t := tallyFlown(experiences)

	snapshot := &dtos.PassportSnapshot{
		UserID:                userID,
		TotalFlights:          t.flown,
		TotalMiles:            t.totalMiles,
		LongestFlightMiles:    t.longestMiles,
		ShortestFlightMiles:   t.shortestMiles,
		FavoriteAirline:       t.airlines.mode(),
		FavoriteAirport:       t.airports.mode(),
		MostFlownAircraftType: t.aircraftTypes.mode(),
		FavoriteClass:         t.favoriteClass(),
		AirlinesVisited:       t.airlines.names(),
		AirportsVisited:       t.airports.names(),
		CountriesVisited:      t.countryList(),
		FlightsPerYear:        t.perYear,
		FlightsByAirline:      t.airlines.countMap(),
		FlightsByAircraftType: t.aircraftTypes.countMap(),
		Routes: dedupeRoutesByFlight(
			ProjectRoutes(experiences, constants.PassportRouteCap, constants.PassportRouteCap, s.now().UTC()),
		),
	}

	if s.metrics != nil {
		s.metrics.PassportSnapshotsTotal.Inc()
	}
	logging.Debug("Passport snapshot built",
		"user_id", userID, "experiences", len(experiences), "flown", t.flown)

	return snapshot, nil
}

// GetPassportDetails returns per-airline and per-aircraft-type flight counts
// and mileage, most flown first.
func (s *PassportService) GetPassportDetails(ctx context.Context, userID string) (*dtos.PassportDetails, error) {
	experiences, err := s.experiences.GetForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight experiences for %s: %w", userID, err)
	}

	t := tallyFlown(experiences)
	return &dtos.PassportDetails{
		UserID:            userID,
		AirlineStats:      t.airlines.stats(),
		AircraftTypeStats: t.aircraftTypes.stats(),
	}, nil
}

// GetMapRoutes projects a user's legs with explicit caps for the map view.
func (s *PassportService) GetMapRoutes(ctx context.Context, userID string, maxPast, maxUpcoming int) ([]dtos.MapRoute, error) {
	experiences, err := s.experiences.GetForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flight experiences for %s: %w", userID, err)
	}
	return ProjectRoutes(experiences, maxPast, maxUpcoming, s.now().UTC()), nil
}

// passportTally is the single pass over flown legs shared by the snapshot and
// the details breakdown.
type passportTally struct {
	flown         int
	totalMiles    int
	longestMiles  int
	shortestMiles int
	milesKnown    bool

	airlines      *foldCounter
	airports      *foldCounter
	aircraftTypes *foldCounter
	countries     map[string]struct{}
	classes       map[constants.FlightClass]int
	perYear       map[int]int
}

func tallyFlown(experiences []gorm.FlightExperience) *passportTally {
	t := &passportTally{
		airlines:      newFoldCounter(),
		airports:      newFoldCounter(),
		aircraftTypes: newFoldCounter(),
		countries:     make(map[string]struct{}),
		classes:       make(map[constants.FlightClass]int),
		perYear:       make(map[int]int),
	}

	for i := range experiences {
		exp := &experiences[i]
		if !exp.DidFly {
			continue
		}
		t.flown++
		t.classes[exp.FlightClass]++

		f := exp.Flight
		if f == nil {
			continue
		}

		miles, hasMiles := legMiles(f)
		if hasMiles {
			t.addMiles(miles)
		}

		if !f.ScheduledDepartureUTC.IsZero() {
			t.perYear[f.ScheduledDepartureUTC.Year()]++
		}

		if f.Airline != nil {
			t.airlines.add(f.Airline.Name, miles)
		}
		t.aircraftTypes.add(f.Aircraft.TypeName(), miles)

		depCode := f.DepartureAirport.Code()
		arrCode := f.ArrivalAirport.Code()
		t.airports.add(depCode, miles)
		if !strings.EqualFold(depCode, arrCode) {
			t.airports.add(arrCode, miles)
		}

		for _, ap := range []*gorm.Airport{f.DepartureAirport, f.ArrivalAirport} {
			if ap == nil {
				continue
			}
			if c := countryKey(ap.Country); c != "" {
				t.countries[c] = struct{}{}
			}
		}
	}

	return t
}

func (t *passportTally) addMiles(miles int) {
	t.totalMiles += miles
	if !t.milesKnown {
		t.longestMiles = miles
		t.shortestMiles = miles
		t.milesKnown = true
		return
	}
	if miles > t.longestMiles {
		t.longestMiles = miles
	}
	if miles < t.shortestMiles {
		t.shortestMiles = miles
	}
}

// countryList returns the distinct country values. Only two-letter codes are
// case-folded, so differently cased full names stay separate entries.
func (t *passportTally) countryList() []string {
	out := make([]string, 0, len(t.countries))
	for c := range t.countries {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// favoriteClass scans every class in declaration order, so with no flown legs
// the first class wins at a count of zero.
func (t *passportTally) favoriteClass() constants.FlightClass {
	best := constants.FlightClasses[0]
	bestCount := t.classes[best]
	for _, c := range constants.FlightClasses[1:] {
		if n := t.classes[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// legMiles is the great-circle length of a leg in whole miles.
func legMiles(f *gorm.Flight) (int, bool) {
	if f.DepartureAirport == nil || f.ArrivalAirport == nil {
		return 0, false
	}
	km, ok := analytics.GreatCircleKm(f.DepartureAirport.Coordinate(), f.ArrivalAirport.Coordinate())
	if !ok {
		return 0, false
	}
	return analytics.KmToMiles(km), true
}

// countryKey lower-cases two-letter ISO codes and leaves full names alone.
func countryKey(country string) string {
	c := strings.TrimSpace(country)
	if len([]rune(c)) == 2 {
		return strings.ToLower(c)
	}
	return c
}

func dedupeRoutesByFlight(routes []dtos.MapRoute) []dtos.MapRoute {
	seen := make(map[uint]struct{}, len(routes))
	out := make([]dtos.MapRoute, 0, len(routes))
	for _, r := range routes {
		if _, dup := seen[r.FlightID]; dup {
			continue
		}
		seen[r.FlightID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// foldCounter counts names case-insensitively. The first spelling seen is the
// one reported.
type foldCounter struct {
	display map[string]string
	counts  map[string]int
	miles   map[string]int
}

func newFoldCounter() *foldCounter {
	return &foldCounter{
		display: make(map[string]string),
		counts:  make(map[string]int),
		miles:   make(map[string]int),
	}
}

func (c *foldCounter) add(name string, miles int) {
	name = strings.TrimSpace(name)
	if strutil.IsBlank(name) {
		return
	}
	key := strings.ToLower(name)
	if _, ok := c.display[key]; !ok {
		c.display[key] = name
	}
	c.counts[key]++
	c.miles[key] += miles
}

// sortedKeys orders keys alphabetically, ignoring case.
func (c *foldCounter) sortedKeys() []string {
	keys := make([]string, 0, len(c.display))
	for k := range c.display {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *foldCounter) names() []string {
	keys := c.sortedKeys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.display[k])
	}
	return out
}

// mode is the most counted name. Ties go to the alphabetically first.
func (c *foldCounter) mode() string {
	best, bestCount := "", 0
	for _, k := range c.sortedKeys() {
		if n := c.counts[k]; n > bestCount {
			best, bestCount = k, n
		}
	}
	if best == "" {
		return ""
	}
	return c.display[best]
}

func (c *foldCounter) countMap() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, n := range c.counts {
		out[c.display[k]] = n
	}
	return out
}

func (c *foldCounter) stats() []dtos.PassportStat {
	keys := c.sortedKeys()
	out := make([]dtos.PassportStat, 0, len(keys))
	for _, k := range keys {
		out = append(out, dtos.PassportStat{
			Name:    c.display[k],
			Flights: c.counts[k],
			Miles:   c.miles[k],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Flights > out[j].Flights
	})
	return out
}
