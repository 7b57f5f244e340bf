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

// memberCardRepository implements the repository.MemberCardRepository interface.
type memberCardRepository struct {
	db *gorm.DB
}

// NewMemberCardRepository is the constructor for memberCardRepository.
func NewMemberCardRepository(db *gorm.DB) repository.MemberCardRepository {
	return &memberCardRepository{
		db: db,
	}
}

// CreateCard persists a newly issued member card. The unique indexes on
// user_id and member_id turn both "second card for the same user" and a
// member-ID collision into ErrDuplicateCard.
func (repo *memberCardRepository) CreateCard(ctx context.Context, card *entity.MemberCard) error {
	cardM := fromMemberCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCard
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCardIssueFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCardIssueFailed.WrapMessage("missing required card information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member card")
	}

	card.ID = cardM.ID

	return nil
}

// FindCardByUser retrieves the card owned by the given user.
func (repo *memberCardRepository) FindCardByUser(ctx context.Context, userID uuid.UUID) (*entity.MemberCard, error) {
	var cardM model.MemberCardModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find member card by user")
	}

	return toMemberCardDomain(&cardM), nil
}

// memberVerificationRow is the scan target for the verification join. It
// carries no email, user ID or payment identifiers so the public view cannot
// leak them by accident.
type memberVerificationRow struct {
	MemberID         string
	FullName         string
	AvatarURL        string
	IssuedAt         time.Time
	Status           *string
	CurrentPeriodEnd *time.Time
}

// FindVerificationByMemberID resolves the public verification view: the card
// joined with the owner's profile and their newest 'active' subscription row.
// A member without any subscription row still resolves; the subscription
// columns simply come back NULL.
func (repo *memberCardRepository) FindVerificationByMemberID(ctx context.Context, memberID string) (*entity.MemberVerification, error) {
	var row memberVerificationRow

	query := `
		SELECT
		  c.member_id,
		  p.full_name,
		  p.avatar_url,
		  c.issued_at,
		  s.status,
		  s.current_period_end
		FROM member_cards c
		JOIN profiles p ON p.user_id = c.user_id
		LEFT JOIN LATERAL (
		  SELECT status, current_period_end
		  FROM subscriptions
		  WHERE user_id = c.user_id AND status = 'active'
		  ORDER BY created_at DESC
		  LIMIT 1
		) s ON true
		WHERE c.member_id = ?
	`

	result := repo.db.WithContext(ctx).Raw(query, memberID).Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to resolve member verification")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCardNotFound
	}

	verification := &entity.MemberVerification{
		MemberID:  row.MemberID,
		FullName:  row.FullName,
		AvatarURL: row.AvatarURL,
		IssuedAt:  row.IssuedAt,
	}
	if row.Status != nil {
		verification.Status = *row.Status
	}
	if row.CurrentPeriodEnd != nil {
		verification.CurrentPeriodEnd = *row.CurrentPeriodEnd
	}

	return verification, nil
}

// CountCards returns the total number of issued member cards.
func (repo *memberCardRepository) CountCards(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MemberCardModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count member cards")
	}

	return count, nil
}

// --- Mapper Functions ---

// toMemberCardDomain converts a GORM MemberCardModel to a domain MemberCard entity.
func toMemberCardDomain(data *model.MemberCardModel) *entity.MemberCard {
	if data == nil {
		return nil
	}

	return &entity.MemberCard{
		ID:       data.ID,
		UserID:   data.UserID,
		MemberID: data.MemberID,
		Status:   data.Status,
		IssuedAt: data.IssuedAt,
	}
}

// fromMemberCardDomain converts a domain MemberCard entity to a GORM MemberCardModel.
func fromMemberCardDomain(data *entity.MemberCard) *model.MemberCardModel {
	if data == nil {
		return nil
	}

	return &model.MemberCardModel{
		ID:       data.ID,
		UserID:   data.UserID,
		MemberID: data.MemberID,
		Status:   data.Status,
		IssuedAt: data.IssuedAt,
	}
}
