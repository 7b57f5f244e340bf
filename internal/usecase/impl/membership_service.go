package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memberIDPrefix is the visible prefix on every public member ID.
const memberIDPrefix = "REG"

// memberIDIssueAttempts bounds how often issuance retries after a member ID
// collision. Collisions are resolved by the unique index, not by luck.
const memberIDIssueAttempts = 3

// fallbackPeriod covers checkout events that carry no billing period end.
const fallbackPeriod = 30 * 24 * time.Hour

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	memberCardRepo   repository.MemberCardRepository
	qrcodeService    service.QRCodeService
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(
	txManager repository.TransactionManager,
	subscriptionRepo repository.SubscriptionRepository,
	memberCardRepo repository.MemberCardRepository,
	qrcodeService service.QRCodeService,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
) usecase.MembershipUsecase {
	return &membershipService{
		txManager:        txManager,
		subscriptionRepo: subscriptionRepo,
		memberCardRepo:   memberCardRepo,
		qrcodeService:    qrcodeService,
		eventPublisher:   eventPublisher,
		logger:           logger,
	}
}

// ActivateMembership records the confirmed subscription and issues the member
// card in one transaction. Replayed events and double activations collapse on
// the store's unique constraints, so the whole operation is idempotent.
func (srv *membershipService) ActivateMembership(ctx context.Context, event *service.CheckoutEvent) error {
	if event.Type != service.CheckoutEventCompleted {
		srv.logger.Debug("Ignoring non-checkout event", "type", event.Type)

		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return domainerrors.ErrWebhookInvalid.WrapMessage("event carries no valid user reference")
	}
	srv.logger.Info("Activating membership", "userID", userID)

	var issuedCard *entity.MemberCard

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subscriptionRepo := repoFactory.NewSubscriptionRepository()
		cardRepo := repoFactory.NewMemberCardRepository()

		periodEnd := event.CurrentPeriodEnd
		if periodEnd.IsZero() {
			periodEnd = time.Now().Add(fallbackPeriod)
		}

		// 1. Record the confirmed subscription. A replayed event hits the
		// unique provider-subscription index and is treated as already done.
		newSubscription := &entity.Subscription{
			UserID:               userID,
			Status:               entity.SubscriptionStatusActive,
			CurrentPeriodEnd:     periodEnd,
			StripeCustomerID:     event.CustomerID,
			StripeSubscriptionID: event.SubscriptionID,
		}
		if err := subscriptionRepo.CreateSubscription(ctx, newSubscription); err != nil {
			if errors.Is(err, domainerrors.ErrConflict) {
				srv.logger.Info("Subscription already recorded, replayed event", "userID", userID)
			} else {
				return errors.WithStack(err)
			}
		}

		// 2. Issue the card unless the member already holds one.
		card, err := srv.ensureCard(ctx, cardRepo, userID)
		if err != nil {
			return err
		}
		issuedCard = card

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute membership activation transaction", "error", err, "userID", userID)

		return errors.Wrap(err, "failed to execute membership activation transaction")
	}

	// 3. Notify downstream consumers. Publishing is best effort; the
	// membership is already committed and must not be rolled back over a
	// broker hiccup.
	srv.publishActivation(ctx, issuedCard)

	return nil
}

// ensureCard returns the member's existing card or issues a fresh one.
func (srv *membershipService) ensureCard(ctx context.Context, cardRepo repository.MemberCardRepository, userID uuid.UUID) (*entity.MemberCard, error) {
	existing, err := cardRepo.FindCardByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrCardNotFound) {
		return nil, errors.Wrap(err, "failed to find member card")
	}

	for attempt := 0; attempt < memberIDIssueAttempts; attempt++ {
		memberID, err := generateMemberID()
		if err != nil {
			return nil, domainerrors.ErrCardIssueFailed.WrapMessage("failed to generate member id")
		}

		card := &entity.MemberCard{
			UserID:   userID,
			MemberID: memberID,
			Status:   entity.MemberCardStatusActive,
			IssuedAt: time.Now(),
		}

		err = cardRepo.CreateCard(ctx, card)
		if err == nil {
			srv.logger.Info("Member card issued", "userID", userID, "memberID", memberID)

			return card, nil
		}
		if !errors.Is(err, repository.ErrDuplicateCard) {
			return nil, errors.Wrap(err, "failed to create member card")
		}

		// A duplicate can mean two things: a concurrent activation already
		// issued this user's card, or the generated member ID collided.
		existing, findErr := cardRepo.FindCardByUser(ctx, userID)
		if findErr == nil {
			return existing, nil
		}
		srv.logger.Warn("Member ID collision, retrying", "memberID", memberID, "attempt", attempt+1)
	}

	return nil, domainerrors.ErrCardIssueFailed.WrapMessage("exhausted member id attempts")
}

// publishActivation emits the membership.activated event.
func (srv *membershipService) publishActivation(ctx context.Context, card *entity.MemberCard) {
	if card == nil {
		return
	}

	event := &service.MembershipEvent{
		EventType:  service.MembershipActivated,
		UserID:     card.UserID.String(),
		MemberID:   card.MemberID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.eventPublisher.PublishMembershipEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish membership event", "error", err, "memberID", card.MemberID)
	}
}

// GetCard returns the member's card. Requires an active subscription; a paid
// member whose card row is missing (e.g. issuance raced a crash) gets one
// issued on the spot.
func (srv *membershipService) GetCard(ctx context.Context, userID uuid.UUID) (*entity.MemberCard, error) {
	subscription, err := srv.subscriptionRepo.FindActiveSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrNoActiveSubscription.WrapMessage("card requires an active subscription")
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}
	if !subscription.IsActiveAt(time.Now()) {
		return nil, domainerrors.ErrSubscriptionInactive.WrapMessage("card requires an active subscription")
	}

	card, err := srv.memberCardRepo.FindCardByUser(ctx, userID)
	if err == nil {
		return card, nil
	}
	if !errors.Is(err, repository.ErrCardNotFound) {
		return nil, errors.Wrap(err, "failed to find member card")
	}

	// Paid member without a card row: issue one now.
	var issued *entity.MemberCard

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		card, err := srv.ensureCard(ctx, repoFactory.NewMemberCardRepository(), userID)
		if err != nil {
			return err
		}
		issued = card

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue member card")
	}

	return issued, nil
}

// GetCardQR renders the QR code PNG for the member's card.
func (srv *membershipService) GetCardQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	card, err := srv.GetCard(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateVerificationQR(card.MemberID)
	if err != nil {
		srv.logger.Error("Failed to generate verification QR", "error", err, "memberID", card.MemberID)

		return nil, domainerrors.ErrQRGenerationFailed.WrapMessage("failed to generate verification qr")
	}

	return png, nil
}

// generateMemberID draws a fresh public member ID, e.g. "REG654321".
func generateMemberID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random source")
	}

	return fmt.Sprintf("%s%06d", memberIDPrefix, n.Int64()), nil
}
