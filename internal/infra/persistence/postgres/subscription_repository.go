// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription row.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			// The provider subscription ID is unique, so a replayed webhook
			// lands here instead of writing a second row.
			return domainerrors.ErrConflict.WrapMessage("subscription already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPaymentFailed.WrapMessage("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	// Update the entity with generated values
	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt

	return nil
}

// FindActiveSubscriptionByUser retrieves the newest subscription carrying
// status 'active' for the user. The period-end check belongs to the caller:
// an expired-but-active row must still be observable so the activity rule can
// reject it explicitly.
func (repo *subscriptionRepository) FindActiveSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.SubscriptionStatusActive).
		Order("created_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription by user")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// CountActiveSubscriptions counts subscriptions satisfying the activity
// predicate at query time.
func (repo *subscriptionRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("status = ? AND current_period_end > ?", entity.SubscriptionStatusActive, time.Now()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active subscriptions")
	}

	return count, nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                   data.ID,
		UserID:               data.UserID,
		Status:               data.Status,
		CurrentPeriodEnd:     data.CurrentPeriodEnd,
		StripeCustomerID:     data.StripeCustomerID,
		StripeSubscriptionID: data.StripeSubscriptionID,
		CreatedAt:            data.CreatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:                   data.ID,
		UserID:               data.UserID,
		Status:               data.Status,
		CurrentPeriodEnd:     data.CurrentPeriodEnd,
		StripeCustomerID:     data.StripeCustomerID,
		StripeSubscriptionID: data.StripeSubscriptionID,
	}
}
