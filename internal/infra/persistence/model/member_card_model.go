package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberCardModel is the GORM-specific struct for the 'member_cards' table.
// The unique index on UserID enforces one card per member at the database
// level, which keeps card issuance idempotent under concurrent activation.
type MemberCardModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_cards_user_id"`
	MemberID string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_member_cards_member_id"`
	Status   string    `gorm:"type:varchar(50);not null"`
	IssuedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MemberCardModel) TableName() string {
	return "member_cards"
}
