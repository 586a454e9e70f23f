package gorm

import (
	"time"

	"wayfarer/tracker/internal/constants"
)

// FlightExperience is a user's booking or log entry for a flight.
type FlightExperience struct {
	ID          uint                  `gorm:"column:id;primaryKey"`
	UserID      string                `gorm:"column:user_id;type:varchar(64);index"`
	FlightID    uint                  `gorm:"column:flight_id;index"`
	DidFly      bool                  `gorm:"column:did_fly;default:false"`
	FlightClass constants.FlightClass `gorm:"column:flight_class;type:varchar(32);default:economy"`
	Seat        *string               `gorm:"column:seat"`
	Notes       *string               `gorm:"column:notes"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Flight *Flight `gorm:"foreignKey:FlightID"`
}

// TableName specifies the table name for GORM
func (FlightExperience) TableName() string {
	return "flight_experiences"
}
