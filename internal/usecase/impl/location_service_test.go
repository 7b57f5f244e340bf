package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"registry/internal/domain/entity"
	mockRepo "registry/internal/mocks/repository"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ListLocations_NoPosition(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewLocationService(mockLocationRepo, logger)

	ctx := context.Background()
	locations := []*entity.ExclusiveLocation{
		{ID: uuid.New(), Name: "Alpha Lounge", Latitude: 25.03, Longitude: 121.56},
		{ID: uuid.New(), Name: "Beta Club", Latitude: 24.80, Longitude: 120.97},
	}

	mockLocationRepo.EXPECT().FindActiveLocations(ctx).Return(locations, nil)

	results, err := service.ListLocations(ctx, &usecase.ListLocationsInput{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Name ordering from the repository is preserved; no distances computed.
	assert.Equal(t, "Alpha Lounge", results[0].Location.Name)
	assert.Equal(t, -1.0, results[0].Distance)
	assert.Equal(t, -1.0, results[1].Distance)
}

func TestLocationService_ListLocations_OrdersByDistance(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewLocationService(mockLocationRepo, logger)

	ctx := context.Background()
	// Caller is in Taipei; Hsinchu venue sorts behind the Taipei one.
	taipei := &entity.ExclusiveLocation{ID: uuid.New(), Name: "Taipei Lounge", Latitude: 25.04, Longitude: 121.56}
	hsinchu := &entity.ExclusiveLocation{ID: uuid.New(), Name: "Hsinchu Club", Latitude: 24.80, Longitude: 120.97}

	mockLocationRepo.EXPECT().
		FindActiveLocations(ctx).
		Return([]*entity.ExclusiveLocation{hsinchu, taipei}, nil)

	lat, lon := 25.03, 121.55
	results, err := service.ListLocations(ctx, &usecase.ListLocationsInput{
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Taipei Lounge", results[0].Location.Name)
	assert.Equal(t, "Hsinchu Club", results[1].Location.Name)
	assert.Greater(t, results[1].Distance, results[0].Distance)
	assert.Greater(t, results[0].Distance, 0.0)
}

func TestLocationService_ListLocations_RepoError(t *testing.T) {
	mockLocationRepo := mockRepo.NewMockLocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewLocationService(mockLocationRepo, logger)

	ctx := context.Background()

	mockLocationRepo.EXPECT().FindActiveLocations(ctx).Return(nil, assert.AnError)

	results, err := service.ListLocations(ctx, &usecase.ListLocationsInput{})
	assert.Error(t, err)
	assert.Nil(t, results)
}
