package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	mockRepo "registry/internal/mocks/repository"
	mockSvc "registry/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_GetStatus_Active(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()
	periodEnd := time.Now().Add(30 * 24 * time.Hour)

	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: periodEnd,
		}, nil)

	output, err := service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.True(t, output.Active)
	assert.Equal(t, entity.SubscriptionStatusActive, output.Status)
	assert.Equal(t, periodEnd, output.CurrentPeriodEnd)
}

func TestSubscriptionService_GetStatus_ExpiredPeriod(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()

	// Status still says "active" but the paid period already ended; the
	// activity rule must win over the raw status.
	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(-time.Hour),
		}, nil)

	output, err := service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.False(t, output.Active)
	assert.Equal(t, entity.SubscriptionStatusActive, output.Status)
}

func TestSubscriptionService_GetStatus_NoSubscription(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()

	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	output, err := service.GetStatus(ctx, userID)
	require.NoError(t, err)
	assert.False(t, output.Active)
	assert.Empty(t, output.Status)
	assert.True(t, output.CurrentPeriodEnd.IsZero())
}

func TestSubscriptionService_GetStatus_RepoError(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()

	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(nil, assert.AnError)

	output, err := service.GetStatus(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestSubscriptionService_StartCheckout_Success(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "member@example.com"}

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockPayment.EXPECT().
		CreateCheckoutSession(ctx, userID.String(), user.Email).
		Return("https://checkout.example.com/session", nil)

	output, err := service.StartCheckout(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/session", output.URL)
}

func TestSubscriptionService_StartCheckout_PaymentFailure(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "member@example.com"}

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockPayment.EXPECT().
		CreateCheckoutSession(ctx, userID.String(), user.Email).
		Return("", assert.AnError)

	output, err := service.StartCheckout(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
}

func TestSubscriptionService_OpenPortal_Success(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()

	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
			StripeCustomerID: "cus_123",
		}, nil)

	mockPayment.EXPECT().
		CreatePortalSession(ctx, "cus_123").
		Return("https://billing.example.com/portal", nil)

	output, err := service.OpenPortal(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "https://billing.example.com/portal", output.URL)
}

func TestSubscriptionService_OpenPortal_NoSubscription(t *testing.T) {
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockPayment := mockSvc.NewMockPaymentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSubscriptionService(mockSubscriptionRepo, mockUserRepo, mockPayment, logger)

	ctx := context.Background()
	userID := uuid.New()

	mockSubscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	output, err := service.OpenPortal(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSubscription)
}
