// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no matching subscription row exists.
// For the "current subscription" lookup this signifies "no active subscription",
// which callers treat as a valid state rather than a failure.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription row. Rows are append-only;
	// a renewal writes a new row rather than mutating an old one.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindActiveSubscriptionByUser retrieves the newest subscription with
	// status 'active' for the user. Returns ErrSubscriptionNotFound when the
	// user has none, which is not a failure condition.
	FindActiveSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	// CountActiveSubscriptions counts subscriptions that satisfy the activity
	// predicate (status 'active' and period end in the future) at query time.
	CountActiveSubscriptions(ctx context.Context) (int64, error)
}
