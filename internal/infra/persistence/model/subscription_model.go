package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// A row is written only after the payment provider confirms a completed
// checkout, so its presence implies a real billing relationship.
type SubscriptionModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Status               string    `gorm:"type:varchar(50);not null"`
	CurrentPeriodEnd     time.Time `gorm:"not null"`
	StripeCustomerID     string    `gorm:"type:varchar(255);index"`
	StripeSubscriptionID string    `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
