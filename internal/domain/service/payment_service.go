package service

import (
	"context"
	"time"
)

// CheckoutEventType identifies the webhook events this core reacts to.
type CheckoutEventType string

const (
	// CheckoutEventCompleted signals a finished, paid checkout session.
	CheckoutEventCompleted CheckoutEventType = "checkout.session.completed"
	// CheckoutEventIgnored covers every event type this core does not consume.
	CheckoutEventIgnored CheckoutEventType = "ignored"
)

// CheckoutEvent is the verified, provider-neutral projection of a payment
// webhook. Membership activation consumes exactly this; nothing downstream
// ever touches a raw provider payload.
type CheckoutEvent struct {
	Type             CheckoutEventType
	UserID           string    // Client reference the checkout session was created with.
	CustomerID       string    // Provider customer identifier.
	SubscriptionID   string    // Provider subscription identifier.
	CurrentPeriodEnd time.Time // End of the paid period; zero when the event does not carry one.
}

// PaymentService is the boundary to the payment collaborator. It creates
// hosted checkout/portal sessions and verifies inbound webhooks; it confirms
// or denies payment, and this core records the resulting subscription/card.
type PaymentService interface {
	// CreateCheckoutSession starts a hosted checkout for the configured price
	// and returns the URL to redirect the user to.
	CreateCheckoutSession(ctx context.Context, userID, email string) (string, error)

	// CreatePortalSession returns a billing-portal URL for an existing customer.
	CreatePortalSession(ctx context.Context, customerID string) (string, error)

	// VerifyWebhook checks the webhook signature and parses the payload into a
	// CheckoutEvent. A bad signature or malformed payload is an error; event
	// types this core does not consume come back as CheckoutEventIgnored.
	VerifyWebhook(payload []byte, signature string) (*CheckoutEvent, error)
}
