// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberCardStatusActive is the status a card is issued with. The card status
// is informational only; the public verification result is always derived from
// the joined subscription, never from this field.
const MemberCardStatusActive = "active"

// MemberCard is the issued membership credential. It binds a public member ID
// to a user; the member ID is the only identifier ever exposed to verifiers.
type MemberCard struct {
	ID       uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the card.
	UserID   uuid.UUID `json:"-"`         // Owner reference. One card per user. Never exposed publicly.
	MemberID string    `json:"member_id"` // Public, unique verification key, e.g. "REG654321".
	Status   string    `json:"status"`    // Informational card status, "active" on issuance.
	IssuedAt time.Time `json:"issued_at"` // Timestamp of issuance.
}

// MemberVerification is the public view served to anonymous verifiers: card
// fields joined with the member's profile and current subscription. It is a
// closed set of fields by construction — email, internal user IDs and payment
// identifiers have no place to leak from.
type MemberVerification struct {
	MemberID         string    `json:"member_id"`
	FullName         string    `json:"full_name"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	IssuedAt         time.Time `json:"issued_at"`
	Status           string    `json:"status"`             // Joined subscription status, "" when no subscription row exists.
	CurrentPeriodEnd time.Time `json:"current_period_end"` // Joined subscription period end; zero when no subscription row exists.
}

// IsActiveAt reports whether the verified membership is active at the given
// instant, using the same rule as Subscription.IsActiveAt evaluated against
// the joined subscription data.
func (v *MemberVerification) IsActiveAt(now time.Time) bool {
	return v != nil && v.Status == SubscriptionStatusActive && v.CurrentPeriodEnd.After(now)
}
