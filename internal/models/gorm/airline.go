package gorm

import "time"

type Airline struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null"`
	IATA      string    `gorm:"column:iata;type:varchar(3);index"`
	ICAO      string    `gorm:"column:icao;type:varchar(4);index"`
	Country   string    `gorm:"column:country;type:varchar(100)"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airline) TableName() string {
	return "airlines"
}
