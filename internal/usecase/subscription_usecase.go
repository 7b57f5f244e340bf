package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatusOutput reports the member's current subscription state.
// Active is the single source of truth the rest of the system relies on; the
// accompanying fields are informational.
type SubscriptionStatusOutput struct {
	Active           bool      `json:"active"`
	Status           string    `json:"status,omitempty"`
	CurrentPeriodEnd time.Time `json:"current_period_end,omitzero"`
}

// CheckoutOutput returns the hosted checkout URL to redirect the member to.
type CheckoutOutput struct {
	URL string `json:"url"`
}

// PortalOutput returns the billing portal URL for subscription management.
type PortalOutput struct {
	URL string `json:"url"`
}

// SubscriptionUsecase defines subscription state and payment-flow operations.
type SubscriptionUsecase interface {
	// GetStatus resolves the member's current subscription and evaluates the
	// activity rule against the current time. A member with no subscription
	// rows gets Active=false with empty informational fields, not an error.
	GetStatus(ctx context.Context, userID uuid.UUID) (*SubscriptionStatusOutput, error)

	// StartCheckout opens a payment-provider checkout session for the member.
	StartCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutOutput, error)

	// OpenPortal opens the billing portal for a member with a recorded
	// provider customer. Members without one get ErrNoActiveSubscription.
	OpenPortal(ctx context.Context, userID uuid.UUID) (*PortalOutput, error)
}
