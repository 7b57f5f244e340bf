package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	mockRepo "registry/internal/mocks/repository"
	mockSvc "registry/internal/mocks/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockStorage := mockSvc.NewMockAvatarStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(mockUserRepo, mockStorage, logger)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Email:   "member@example.com",
		Profile: &entity.Profile{UserID: userID, FullName: "Test Member"},
	}

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockStorage := mockSvc.NewMockAvatarStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(mockUserRepo, mockStorage, logger)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := service.GetProfile(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockStorage := mockSvc.NewMockAvatarStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(mockUserRepo, mockStorage, logger)

	ctx := context.Background()
	userID := uuid.New()
	newName := "Renamed Member"
	user := &entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, FullName: "Test Member", AvatarURL: "https://cdn.example.com/a.png"},
	}

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockUserRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, profile *entity.Profile) {
			assert.Equal(t, newName, profile.FullName)
			// Untouched fields survive the partial update.
			assert.Equal(t, "https://cdn.example.com/a.png", profile.AvatarURL)
		}).
		Return(nil)

	profile, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{FullName: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, profile.FullName)
}

func TestProfileService_UploadAvatar(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockStorage := mockSvc.NewMockAvatarStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(mockUserRepo, mockStorage, logger)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, FullName: "Test Member"},
	}
	body := bytes.NewReader([]byte("fake image bytes"))

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockStorage.EXPECT().
		Store(ctx, "avatars/"+userID.String()+".png", "image/png", body).
		Return("https://cdn.example.com/avatars/"+userID.String()+".png", nil)
	mockUserRepo.EXPECT().
		UpdateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := service.UploadAvatar(ctx, userID, &usecase.UploadAvatarInput{
		ContentType: "image/png",
		Body:        body,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/"+userID.String()+".png", profile.AvatarURL)
}

func TestProfileService_UploadAvatar_StorageFailure(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockStorage := mockSvc.NewMockAvatarStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(mockUserRepo, mockStorage, logger)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Profile: &entity.Profile{UserID: userID}}
	body := bytes.NewReader([]byte("fake image bytes"))

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockStorage.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "image/jpeg", body).
		Return("", assert.AnError)

	profile, err := service.UploadAvatar(ctx, userID, &usecase.UploadAvatarInput{
		ContentType: "image/jpeg",
		Body:        body,
	})
	assert.Error(t, err)
	assert.Nil(t, profile)
}
