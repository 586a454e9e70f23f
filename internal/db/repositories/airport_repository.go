package repositories

import (
	"context"

	"wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/strutil"

	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// AirportCode is the slim projection used to build the code lookup cache.
type AirportCode struct {
	ID   uint
	IATA string
	ICAO string
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// IDsByCode returns the ids of every airport whose IATA or ICAO code matches.
func (r *AirportRepository) IDsByCode(ctx context.Context, code string) ([]uint, error) {
	code = strutil.NormalizeCode(code)
	if code == "" {
		return nil, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&gorm.Airport{}).
		Where("UPPER(iata) = ? OR UPPER(icao) = ?", code, code).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// ListCodes returns every airport's id and codes.
func (r *AirportRepository) ListCodes(ctx context.Context) ([]AirportCode, error) {
	var codes []AirportCode
	err := r.db.WithContext(ctx).
		Model(&gorm.Airport{}).
		Select("id", "iata", "icao").
		Order("id").
		Scan(&codes).Error
	return codes, err
}

// UpsertByICAO inserts airports, updating the row in place when its ICAO
// code is already stored. Existing IDs are kept, so flights stay linked.
func (r *AirportRepository) UpsertByICAO(ctx context.Context, airports []gorm.Airport) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "icao"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"iata", "name", "city", "country", "elevation",
				"latitude", "longitude", "timezone", "updated_at",
			}),
		}).
		CreateInBatches(airports, 100).Error
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gorm.Airport{}).Count(&count).Error
	return count, err
}

// Transaction runs fn against a repository bound to a single transaction.
func (r *AirportRepository) Transaction(ctx context.Context, fn func(tx *AirportRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		return fn(&AirportRepository{db: tx})
	})
}
