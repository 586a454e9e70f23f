package db

import (
	"fmt"

	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/gorm"

	"gorm.io/driver/postgres"
	gormlib "gorm.io/gorm"
)

func InitPostgresORM(dsn string) (*gormlib.DB, error) {
	db, err := gormlib.Open(postgres.Open(dsn), &gormlib.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	logging.Info("Connected to Postgres via GORM")
	return db, nil
}

// Migrate creates or updates every table the tracker owns.
func Migrate(db *gormlib.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Models lists the GORM models in dependency order.
func Models() []interface{} {
	return []interface{}{
		&gorm.Airport{},
		&gorm.Airline{},
		&gorm.Aircraft{},
		&gorm.Flight{},
		&gorm.User{},
		&gorm.FlightExperience{},
	}
}
