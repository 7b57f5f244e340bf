package usecase

import (
	"context"
	"time"
)

// VerifyMemberOutput is the complete public verification result. It is a
// closed set of fields: no email, no internal user ID, no payment identifiers.
type VerifyMemberOutput struct {
	MemberID   string    `json:"member_id"`
	FullName   string    `json:"full_name"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
	Active     bool      `json:"active"`
	ValidUntil time.Time `json:"valid_until,omitzero"`
}

// VerificationUsecase resolves public, unauthenticated member verification.
type VerificationUsecase interface {
	// VerifyMember resolves a member ID to its verification result and
	// evaluates membership activity at the current time. Unknown member IDs
	// yield ErrVerificationFailed; the caller must not distinguish "no such
	// member" from any other failure in what it exposes publicly.
	VerifyMember(ctx context.Context, memberID string) (*VerifyMemberOutput, error)
}
