package impl

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	mockRepo "registry/internal/mocks/repository"
	mockSvc "registry/internal/mocks/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// membershipServiceFixtures holds all test dependencies for membership service tests.
type membershipServiceFixtures struct {
	service          usecase.MembershipUsecase
	txManager        *mockRepo.MockTransactionManager
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	memberCardRepo   *mockRepo.MockMemberCardRepository
	qrcodeService    *mockSvc.MockQRCodeService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestMembershipService(t *testing.T) membershipServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	memberCardRepo := mockRepo.NewMockMemberCardRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMembershipService(
		txManager,
		subscriptionRepo,
		memberCardRepo,
		qrcodeService,
		eventPublisher,
		logger,
	)

	return membershipServiceFixtures{
		service:          service,
		txManager:        txManager,
		subscriptionRepo: subscriptionRepo,
		memberCardRepo:   memberCardRepo,
		qrcodeService:    qrcodeService,
		eventPublisher:   eventPublisher,
	}
}

var memberIDPattern = regexp.MustCompile(`^REG\d{6}$`)

func TestMembershipService_ActivateMembership_IssuesCard(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.CheckoutEvent{
		Type:             service.CheckoutEventCompleted,
		UserID:           userID.String(),
		CustomerID:       "cus_123",
		SubscriptionID:   "sub_123",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			mockCardRepo := mockRepo.NewMockMemberCardRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockFactory.EXPECT().NewMemberCardRepository().Return(mockCardRepo)

			mockSubscriptionRepo.EXPECT().
				CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
				Run(func(ctx context.Context, subscription *entity.Subscription) {
					assert.Equal(t, userID, subscription.UserID)
					assert.Equal(t, entity.SubscriptionStatusActive, subscription.Status)
					assert.Equal(t, "cus_123", subscription.StripeCustomerID)
					assert.Equal(t, "sub_123", subscription.StripeSubscriptionID)
				}).
				Return(nil)

			mockCardRepo.EXPECT().
				FindCardByUser(ctx, userID).
				Return(nil, repository.ErrCardNotFound)

			mockCardRepo.EXPECT().
				CreateCard(ctx, mock.AnythingOfType("*entity.MemberCard")).
				Run(func(ctx context.Context, card *entity.MemberCard) {
					assert.Equal(t, userID, card.UserID)
					assert.Regexp(t, memberIDPattern, card.MemberID)
					assert.Equal(t, entity.MemberCardStatusActive, card.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishMembershipEvent(ctx, mock.AnythingOfType("*service.MembershipEvent")).
		Run(func(ctx context.Context, event *service.MembershipEvent) {
			assert.Equal(t, service.MembershipActivated, event.EventType)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Regexp(t, memberIDPattern, event.MemberID)
		}).
		Return(nil)

	err := fx.service.ActivateMembership(ctx, event)
	require.NoError(t, err)
}

func TestMembershipService_ActivateMembership_ReplayedEvent(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingCard := &entity.MemberCard{
		ID:       uuid.New(),
		UserID:   userID,
		MemberID: "REG123456",
		Status:   entity.MemberCardStatusActive,
		IssuedAt: time.Now().Add(-time.Hour),
	}
	event := &service.CheckoutEvent{
		Type:             service.CheckoutEventCompleted,
		UserID:           userID.String(),
		CustomerID:       "cus_123",
		SubscriptionID:   "sub_123",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			mockCardRepo := mockRepo.NewMockMemberCardRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockFactory.EXPECT().NewMemberCardRepository().Return(mockCardRepo)

			// The replay trips the unique provider-subscription constraint.
			mockSubscriptionRepo.EXPECT().
				CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
				Return(domainerrors.ErrConflict.WrapMessage("subscription already recorded"))

			// The card from the first delivery is still there; no new one is issued.
			mockCardRepo.EXPECT().
				FindCardByUser(ctx, userID).
				Return(existingCard, nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishMembershipEvent(ctx, mock.AnythingOfType("*service.MembershipEvent")).
		Return(nil)

	err := fx.service.ActivateMembership(ctx, event)
	require.NoError(t, err)
}

func TestMembershipService_ActivateMembership_IgnoredEvent(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	event := &service.CheckoutEvent{Type: service.CheckoutEventIgnored}

	err := fx.service.ActivateMembership(ctx, event)
	require.NoError(t, err)
}

func TestMembershipService_ActivateMembership_BadUserReference(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	event := &service.CheckoutEvent{
		Type:   service.CheckoutEventCompleted,
		UserID: "not-a-uuid",
	}

	err := fx.service.ActivateMembership(ctx, event)
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookInvalid)
}

func TestMembershipService_ActivateMembership_MemberIDCollisionRetries(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.CheckoutEvent{
		Type:             service.CheckoutEventCompleted,
		UserID:           userID.String(),
		SubscriptionID:   "sub_123",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			mockCardRepo := mockRepo.NewMockMemberCardRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockFactory.EXPECT().NewMemberCardRepository().Return(mockCardRepo)

			mockSubscriptionRepo.EXPECT().
				CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
				Return(nil)

			// First lookup: no card. First insert collides on the member ID,
			// the user still has no card, the retry succeeds.
			mockCardRepo.EXPECT().
				FindCardByUser(ctx, userID).
				Return(nil, repository.ErrCardNotFound).
				Times(2)

			mockCardRepo.EXPECT().
				CreateCard(ctx, mock.AnythingOfType("*entity.MemberCard")).
				Return(repository.ErrDuplicateCard).
				Once()

			mockCardRepo.EXPECT().
				CreateCard(ctx, mock.AnythingOfType("*entity.MemberCard")).
				Return(nil).
				Once()

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishMembershipEvent(ctx, mock.AnythingOfType("*service.MembershipEvent")).
		Return(nil)

	err := fx.service.ActivateMembership(ctx, event)
	require.NoError(t, err)
}

func TestMembershipService_ActivateMembership_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.CheckoutEvent{
		Type:             service.CheckoutEventCompleted,
		UserID:           userID.String(),
		SubscriptionID:   "sub_123",
		CurrentPeriodEnd: time.Now().Add(30 * 24 * time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
			mockCardRepo := mockRepo.NewMockMemberCardRepository(t)

			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubscriptionRepo)
			mockFactory.EXPECT().NewMemberCardRepository().Return(mockCardRepo)

			mockSubscriptionRepo.EXPECT().
				CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
				Return(nil)

			mockCardRepo.EXPECT().
				FindCardByUser(ctx, userID).
				Return(nil, repository.ErrCardNotFound)

			mockCardRepo.EXPECT().
				CreateCard(ctx, mock.AnythingOfType("*entity.MemberCard")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		PublishMembershipEvent(ctx, mock.AnythingOfType("*service.MembershipEvent")).
		Return(assert.AnError)

	err := fx.service.ActivateMembership(ctx, event)
	require.NoError(t, err)
}

func TestMembershipService_GetCard_Success(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	card := &entity.MemberCard{
		ID:       uuid.New(),
		UserID:   userID,
		MemberID: "REG654321",
		Status:   entity.MemberCardStatusActive,
		IssuedAt: time.Now().Add(-time.Hour),
	}

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
		}, nil)

	fx.memberCardRepo.EXPECT().FindCardByUser(ctx, userID).Return(card, nil)

	got, err := fx.service.GetCard(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, card, got)
}

func TestMembershipService_GetCard_NoSubscription(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	got, err := fx.service.GetCard(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveSubscription)
}

func TestMembershipService_GetCard_ExpiredSubscription(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(-time.Hour),
		}, nil)

	got, err := fx.service.GetCard(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionInactive)
}

func TestMembershipService_GetCard_IssuesMissingCard(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
		}, nil)

	fx.memberCardRepo.EXPECT().
		FindCardByUser(ctx, userID).
		Return(nil, repository.ErrCardNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCardRepo := mockRepo.NewMockMemberCardRepository(t)

			mockFactory.EXPECT().NewMemberCardRepository().Return(mockCardRepo)

			mockCardRepo.EXPECT().
				FindCardByUser(ctx, userID).
				Return(nil, repository.ErrCardNotFound)

			mockCardRepo.EXPECT().
				CreateCard(ctx, mock.AnythingOfType("*entity.MemberCard")).
				Return(nil)

			return fn(mockFactory)
		})

	got, err := fx.service.GetCard(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Regexp(t, memberIDPattern, got.MemberID)
}

func TestMembershipService_GetCardQR(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	userID := uuid.New()
	card := &entity.MemberCard{
		UserID:   userID,
		MemberID: "REG654321",
		Status:   entity.MemberCardStatusActive,
	}
	wantPNG := []byte{0x89, 'P', 'N', 'G'}

	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByUser(ctx, userID).
		Return(&entity.Subscription{
			UserID:           userID,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
		}, nil)

	fx.memberCardRepo.EXPECT().FindCardByUser(ctx, userID).Return(card, nil)
	fx.qrcodeService.EXPECT().GenerateVerificationQR("REG654321").Return(wantPNG, nil)

	png, err := fx.service.GetCardQR(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, wantPNG, png)
}
