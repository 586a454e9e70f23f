package common

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportLoaderService imports airport reference data from a JSON source
type AirportLoaderService struct {
	repo      *repositories.AirportRepository
	client    *http.Client
	sourceURL string
}

// RawAirportData represents the structure of airport data from JSON
type RawAirportData struct {
	ICAO      string   `json:"icao"`
	IATA      string   `json:"iata"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Elevation int      `json:"elevation"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	TZ        string   `json:"tz"`
}

// NewAirportLoaderService creates a loader reading from sourceURL
func NewAirportLoaderService(db *gormlib.DB, sourceURL string) *AirportLoaderService {
	return &AirportLoaderService{
		repo:      repositories.NewAirportRepository(db),
		client:    &http.Client{Timeout: 60 * time.Second},
		sourceURL: sourceURL,
	}
}

// LoadFromJSON upserts the airports in reader, keyed by ICAO. Rows missing
// from the source are left in place since flights may still reference them.
// Expected format: object keyed by ICAO code,
// e.g. {"KJFK": {"icao": "KJFK", "iata": "JFK", "lat": 40.63, ...}}
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (int, error) {
	var rawData map[string]RawAirportData
	if err := json.NewDecoder(reader).Decode(&rawData); err != nil {
		return 0, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(rawData) == 0 {
		return 0, fmt.Errorf("no airport data found in JSON")
	}

	keys := make([]string, 0, len(rawData))
	for key := range rawData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// one row per ICAO, or the upsert would touch the same row twice
	seen := make(map[string]struct{}, len(rawData))
	airports := make([]gorm.Airport, 0, len(rawData))
	for _, key := range keys {
		airport, ok := toAirport(rawData[key])
		if !ok {
			continue
		}
		if _, dup := seen[airport.ICAO]; dup {
			continue
		}
		seen[airport.ICAO] = struct{}{}
		airports = append(airports, airport)
	}

	if len(airports) == 0 {
		return 0, fmt.Errorf("no valid airports found after parsing")
	}

	logging.Info("Parsed airport reference data", "records", len(rawData), "valid", len(airports))

	err := s.repo.Transaction(ctx, func(tx *repositories.AirportRepository) error {
		if err := tx.UpsertByICAO(ctx, airports); err != nil {
			return fmt.Errorf("failed to upsert airports: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logging.Info("Imported airports", "count", len(airports))
	return len(airports), nil
}

func toAirport(raw RawAirportData) (gorm.Airport, bool) {
	icao := strings.ToUpper(strings.TrimSpace(raw.ICAO))
	name := strings.TrimSpace(raw.Name)
	if icao == "" || name == "" {
		return gorm.Airport{}, false
	}

	timezone := raw.TZ
	if timezone == "" && raw.State != "" {
		timezone = raw.State
	}

	var elevation sql.NullInt64
	if raw.Elevation > 0 {
		elevation = sql.NullInt64{Int64: int64(raw.Elevation), Valid: true}
	}

	// A position is kept only when both halves are present.
	lat, lon := raw.Lat, raw.Lon
	if lat == nil || lon == nil {
		lat, lon = nil, nil
	}

	return gorm.Airport{
		ICAO:      icao,
		IATA:      strings.ToUpper(strings.TrimSpace(raw.IATA)),
		Name:      name,
		City:      strings.TrimSpace(raw.City),
		Country:   strings.TrimSpace(raw.Country),
		Elevation: elevation,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  timezone,
	}, true
}

// AirportCount returns the number of airports currently stored.
func (s *AirportLoaderService) AirportCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// LoadFromSource downloads the configured airport dataset and imports it.
func (s *AirportLoaderService) LoadFromSource(ctx context.Context) (int, error) {
	logging.Info("Fetching airport reference data", "url", s.sourceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build airport source request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch airports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch airports: HTTP %d", resp.StatusCode)
	}

	return s.LoadFromJSON(ctx, resp.Body)
}
