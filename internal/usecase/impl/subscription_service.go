package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	paymentService   service.PaymentService
	logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	paymentService service.PaymentService,
	logger *slog.Logger,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		paymentService:   paymentService,
		logger:           logger,
	}
}

// GetStatus resolves the member's current subscription and evaluates the
// activity rule against the current time. Having no subscription rows is a
// valid state, not an error.
func (srv *subscriptionService) GetStatus(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionStatusOutput, error) {
	subscription, err := srv.subscriptionRepo.FindActiveSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return &usecase.SubscriptionStatusOutput{Active: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return &usecase.SubscriptionStatusOutput{
		Active:           subscription.IsActiveAt(time.Now()),
		Status:           subscription.Status,
		CurrentPeriodEnd: subscription.CurrentPeriodEnd,
	}, nil
}

// StartCheckout opens a hosted checkout session for the member.
func (srv *subscriptionService) StartCheckout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("checkout failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	checkoutURL, err := srv.paymentService.CreateCheckoutSession(ctx, user.ID.String(), user.Email)
	if err != nil {
		srv.logger.Error("Failed to create checkout session", "error", err, "userID", userID)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage("failed to create checkout session")
	}
	srv.logger.Info("Checkout session created", "userID", userID)

	return &usecase.CheckoutOutput{URL: checkoutURL}, nil
}

// OpenPortal opens the billing portal for a member with a recorded provider
// customer reference.
func (srv *subscriptionService) OpenPortal(ctx context.Context, userID uuid.UUID) (*usecase.PortalOutput, error) {
	subscription, err := srv.subscriptionRepo.FindActiveSubscriptionByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrNoActiveSubscription.WrapMessage("no subscription to manage")
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}
	if subscription.StripeCustomerID == "" {
		return nil, domainerrors.ErrNoActiveSubscription.WrapMessage("subscription has no customer reference")
	}

	portalURL, err := srv.paymentService.CreatePortalSession(ctx, subscription.StripeCustomerID)
	if err != nil {
		srv.logger.Error("Failed to create portal session", "error", err, "userID", userID)

		return nil, domainerrors.ErrPaymentFailed.WrapMessage("failed to create portal session")
	}

	return &usecase.PortalOutput{URL: portalURL}, nil
}
