package model

import (
	"time"

	"github.com/google/uuid"
)

// ExclusiveLocationModel is the GORM-specific struct for the 'exclusive_locations' table.
// Rows describe partner venues where the membership card is honored.
type ExclusiveLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Place     string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExclusiveLocationModel) TableName() string {
	return "exclusive_locations"
}
