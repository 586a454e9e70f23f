package gorm

import "time"

type User struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	UserName    string    `gorm:"column:username;uniqueIndex"`
	Email       *string   `gorm:"column:email"`
	DisplayName *string   `gorm:"column:display_name"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Experiences []FlightExperience `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
