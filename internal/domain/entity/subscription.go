// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatusActive is the only subscription status treated as
// potentially active. Any other value ("canceled", "incomplete", ...) is
// inactive regardless of the period end.
const SubscriptionStatusActive = "active"

// Subscription represents one billing period of a user's membership.
// Rows are written when the payment provider confirms a payment and are never
// mutated in place; the newest active row is "the" subscription for a user.
type Subscription struct {
	ID                   uuid.UUID `json:"id"`                     // The Global Unique Identifier (GUID) for the subscription.
	UserID               uuid.UUID `json:"user_id"`                // The ID of the subscribed user.
	Status               string    `json:"status"`                 // Provider-reported status; "active" or anything else.
	CurrentPeriodEnd     time.Time `json:"current_period_end"`     // End of the paid billing period.
	StripeCustomerID     string    `json:"-"`                      // Payment-provider customer reference. Never exposed publicly.
	StripeSubscriptionID string    `json:"-"`                      // Payment-provider subscription reference. Never exposed publicly.
	CreatedAt            time.Time `json:"created_at"`             // Timestamp of when the subscription row was recorded.
}

// IsActiveAt reports whether the subscription is active at the given instant.
// Both checks are mandatory: a row can carry status "active" while already
// past its period end when renewal never happened. The comparison is strict,
// so a subscription whose period ends exactly now is already inactive.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s != nil && s.Status == SubscriptionStatusActive && s.CurrentPeriodEnd.After(now)
}
