package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	mockRepo "registry/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVerificationService(t *testing.T) (*mockRepo.MockMemberCardRepository, *verificationService) {
	mockCardRepo := mockRepo.NewMockMemberCardRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewVerificationService(mockCardRepo, logger)

	return mockCardRepo, service.(*verificationService)
}

func TestVerificationService_VerifyMember_Active(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()
	issuedAt := time.Now().Add(-48 * time.Hour)
	periodEnd := time.Now().Add(30 * 24 * time.Hour)

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG654321").
		Return(&entity.MemberVerification{
			MemberID:         "REG654321",
			FullName:         "Test Member",
			AvatarURL:        "https://cdn.example.com/avatars/x.png",
			IssuedAt:         issuedAt,
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: periodEnd,
		}, nil)

	output, err := service.VerifyMember(ctx, "REG654321")
	require.NoError(t, err)
	assert.True(t, output.Active)
	assert.Equal(t, "REG654321", output.MemberID)
	assert.Equal(t, "Test Member", output.FullName)
	assert.Equal(t, issuedAt, output.IssuedAt)
	assert.Equal(t, periodEnd, output.ValidUntil)
}

func TestVerificationService_VerifyMember_ExpiredPeriodOverridesStatus(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG654321").
		Return(&entity.MemberVerification{
			MemberID:         "REG654321",
			FullName:         "Test Member",
			IssuedAt:         time.Now().Add(-48 * time.Hour),
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(-time.Minute),
		}, nil)

	output, err := service.VerifyMember(ctx, "REG654321")
	require.NoError(t, err)
	assert.False(t, output.Active)
	assert.True(t, output.ValidUntil.IsZero())
}

func TestVerificationService_VerifyMember_NoSubscriptionRow(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG654321").
		Return(&entity.MemberVerification{
			MemberID: "REG654321",
			FullName: "Test Member",
			IssuedAt: time.Now().Add(-48 * time.Hour),
		}, nil)

	output, err := service.VerifyMember(ctx, "REG654321")
	require.NoError(t, err)
	assert.False(t, output.Active)
}

func TestVerificationService_VerifyMember_UnknownMemberID(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG000000").
		Return(nil, repository.ErrCardNotFound)

	output, err := service.VerifyMember(ctx, "REG000000")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
}

// A storage failure must be indistinguishable from an unknown member ID in
// what the caller receives; only the log level differs.
func TestVerificationService_VerifyMember_StorageErrorCollapsesToGenericOutcome(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG654321").
		Return(nil, errors.New("connection refused"))

	output, err := service.VerifyMember(ctx, "REG654321")
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
	assert.NotContains(t, err.Error(), "connection refused")
}

// The serialized verification result is consumed by an anonymous public page;
// it must never grow identifying fields beyond the approved set.
func TestVerificationService_VerifyMember_OutputFieldSet(t *testing.T) {
	mockCardRepo, service := createTestVerificationService(t)

	ctx := context.Background()

	mockCardRepo.EXPECT().
		FindVerificationByMemberID(ctx, "REG654321").
		Return(&entity.MemberVerification{
			MemberID:         "REG654321",
			FullName:         "Test Member",
			IssuedAt:         time.Now().Add(-48 * time.Hour),
			Status:           entity.SubscriptionStatusActive,
			CurrentPeriodEnd: time.Now().Add(24 * time.Hour),
		}, nil)

	output, err := service.VerifyMember(ctx, "REG654321")
	require.NoError(t, err)

	raw, err := json.Marshal(output)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for key := range fields {
		assert.Contains(t,
			[]string{"member_id", "full_name", "avatar_url", "issued_at", "active", "valid_until"},
			key,
		)
	}
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "user_id")
}
