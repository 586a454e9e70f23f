package repositories

import (
	"context"

	"wayfarer/tracker/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// FlightExperienceRepository reads a user's flight log with every join the
// passport needs already resolved.
type FlightExperienceRepository struct {
	db *gormlib.DB
}

func NewFlightExperienceRepository(db *gormlib.DB) *FlightExperienceRepository {
	return &FlightExperienceRepository{db: db}
}

// GetForUser returns all experiences of a user, oldest departure first.
func (r *FlightExperienceRepository) GetForUser(ctx context.Context, userID string) ([]gorm.FlightExperience, error) {
	var experiences []gorm.FlightExperience
	err := r.db.WithContext(ctx).
		Preload("Flight").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Preload("Flight.Airline").
		Preload("Flight.Aircraft").
		Where("user_id = ?", userID).
		Order("id").
		Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

// Create inserts an experience. Used by seeding and tests.
func (r *FlightExperienceRepository) Create(ctx context.Context, experience *gorm.FlightExperience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}
