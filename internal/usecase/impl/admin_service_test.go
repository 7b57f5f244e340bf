package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	mockRepo "registry/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_GetStats(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockCardRepo := mockRepo.NewMockMemberCardRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAdminService(mockUserRepo, mockSubscriptionRepo, mockCardRepo, mockLocationRepo, logger)

	ctx := context.Background()

	mockUserRepo.EXPECT().CountUsers(ctx).Return(int64(120), nil)
	mockSubscriptionRepo.EXPECT().CountActiveSubscriptions(ctx).Return(int64(45), nil)
	mockCardRepo.EXPECT().CountCards(ctx).Return(int64(50), nil)
	mockLocationRepo.EXPECT().CountActiveLocations(ctx).Return(int64(8), nil)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(45), stats.ActiveSubscriptions)
	assert.Equal(t, int64(50), stats.IssuedCards)
	assert.Equal(t, int64(8), stats.ActiveLocations)
}

func TestAdminService_GetStats_CountError(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockCardRepo := mockRepo.NewMockMemberCardRepository(t)
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAdminService(mockUserRepo, mockSubscriptionRepo, mockCardRepo, mockLocationRepo, logger)

	ctx := context.Background()

	mockUserRepo.EXPECT().CountUsers(ctx).Return(int64(0), assert.AnError)

	stats, err := service.GetStats(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
}
