package usecase

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/service"

	"github.com/google/uuid"
)

// MembershipUsecase covers membership activation and the member card.
//
// Activation is driven exclusively by verified payment-provider webhooks;
// nothing in the client-facing API can create a subscription row or a card.
type MembershipUsecase interface {
	// ActivateMembership records the confirmed subscription and issues the
	// member card in one transaction. Safe to call more than once for the
	// same user: replayed webhooks and double activations leave exactly one
	// card in place.
	ActivateMembership(ctx context.Context, event *service.CheckoutEvent) error

	// GetCard returns the member's card. Requires an active subscription;
	// a paid-up member whose card row is missing gets one issued on the spot.
	GetCard(ctx context.Context, userID uuid.UUID) (*entity.MemberCard, error)

	// GetCardQR renders the QR code PNG for the member's card.
	GetCardQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
