package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/usecase"

	"github.com/pkg/errors"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	memberCardRepo repository.MemberCardRepository
	logger         *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(
	memberCardRepo repository.MemberCardRepository,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		memberCardRepo: memberCardRepo,
		logger:         logger,
	}
}

// VerifyMember resolves a member ID to its public verification result,
// evaluated at the current time. Unknown member IDs come back as
// ErrVerificationFailed; callers never learn more than "failed".
func (srv *verificationService) VerifyMember(ctx context.Context, memberID string) (*usecase.VerifyMemberOutput, error) {
	verification, err := srv.memberCardRepo.FindVerificationByMemberID(ctx, memberID)
	if err != nil {
		// Every failure collapses to the same generic outcome. The log level
		// is the only place the two cases differ.
		if errors.Is(err, repository.ErrCardNotFound) {
			srv.logger.Info("Verification requested for unknown member ID", "memberID", memberID)

			return nil, domainerrors.ErrVerificationFailed.WrapMessage("unknown member id")
		}
		srv.logger.Error("Failed to resolve member verification", "error", err)

		return nil, domainerrors.ErrVerificationFailed.WrapMessage("verification lookup failed")
	}

	output := &usecase.VerifyMemberOutput{
		MemberID:  verification.MemberID,
		FullName:  verification.FullName,
		AvatarURL: verification.AvatarURL,
		IssuedAt:  verification.IssuedAt,
		Active:    verification.IsActiveAt(time.Now()),
	}
	if output.Active {
		output.ValidUntil = verification.CurrentPeriodEnd
	}

	return output, nil
}
