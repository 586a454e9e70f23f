package gorm

import (
	"strings"
	"time"

	"wayfarer/tracker/internal/analytics"
	"wayfarer/tracker/internal/strutil"
)

// Aircraft is an airframe. TypeCode is the ICAO type designator (e.g. B77W).
type Aircraft struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Registration string    `gorm:"column:registration;type:varchar(16);index"`
	Model        string    `gorm:"column:model;type:text"`
	TypeCode     string    `gorm:"column:type_code;type:varchar(8)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}

// DisplayName is "model • registration" when both are known, otherwise
// whichever is known.
func (a *Aircraft) DisplayName() string {
	if a == nil {
		return ""
	}
	model := strings.TrimSpace(a.Model)
	reg := strings.TrimSpace(a.Registration)
	switch {
	case model != "" && reg != "":
		return model + " • " + reg
	default:
		return strutil.FirstNonBlank(model, reg)
	}
}

// TypeName is the model, falling back to the ICAO type code.
func (a *Aircraft) TypeName() string {
	if a == nil {
		return ""
	}
	return strutil.FirstNonBlank(a.Model, a.TypeCode)
}

// Hint adapts the aircraft for the emission estimator.
func (a *Aircraft) Hint() *analytics.AircraftHint {
	if a == nil {
		return nil
	}
	return &analytics.AircraftHint{Model: a.Model, TypeCode: a.TypeCode}
}
