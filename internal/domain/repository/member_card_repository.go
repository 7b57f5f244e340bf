// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for member card persistence.
var (
	// ErrCardNotFound is returned when a member card is not found.
	ErrCardNotFound = errors.New("member card not found")
	// ErrDuplicateCard is returned when a card already exists for the user or
	// the generated member ID collides with an existing one. The unique
	// constraints in the store are the real backstop for both.
	ErrDuplicateCard = errors.New("member card already exists")
)

// MemberCardRepository defines the interface for member card database operations.
type MemberCardRepository interface {
	// CreateCard persists a newly issued member card.
	CreateCard(ctx context.Context, card *entity.MemberCard) error

	// FindCardByUser retrieves the card owned by the given user.
	FindCardByUser(ctx context.Context, userID uuid.UUID) (*entity.MemberCard, error)

	// FindVerificationByMemberID resolves the public verification view for a
	// member ID: card fields joined with the owner's profile and their newest
	// active subscription. Returns ErrCardNotFound when no card matches.
	FindVerificationByMemberID(ctx context.Context, memberID string) (*entity.MemberVerification, error)

	// CountCards returns the total number of issued member cards.
	CountCards(ctx context.Context) (int64, error)
}
