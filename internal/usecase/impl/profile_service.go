package impl

import (
	"context"
	"fmt"
	"log/slog"

	"registry/internal/domain/entity"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/repository"
	"registry/internal/domain/service"
	"registry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo      repository.UserRepository
	avatarStorage service.AvatarStorage
	logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	avatarStorage service.AvatarStorage,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo:      userRepo,
		avatarStorage: avatarStorage,
		logger:        logger,
	}
}

// GetProfile returns the user together with their member profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// UpdateProfile applies the given changes to the member profile.
// Nil input fields leave the stored value unchanged.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: userID}
	}
	if input.FullName != nil {
		profile.FullName = *input.FullName
	}

	if err := srv.userRepo.UpdateProfile(ctx, profile); err != nil {
		srv.logger.Error("Failed to update profile", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to update profile")
	}
	srv.logger.Debug("Profile updated", "userID", userID)

	return profile, nil
}

// UploadAvatar stores a new avatar image and records its URL on the profile.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, input *usecase.UploadAvatarInput) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("avatar upload failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	key := fmt.Sprintf("avatars/%s%s", userID, extensionForContentType(input.ContentType))

	avatarURL, err := srv.avatarStorage.Store(ctx, key, input.ContentType, input.Body)
	if err != nil {
		srv.logger.Error("Failed to store avatar", "error", err, "userID", userID)

		return nil, errors.Wrap(err, "failed to store avatar")
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: userID}
	}
	profile.AvatarURL = avatarURL

	if err := srv.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to record avatar url")
	}
	srv.logger.Info("Avatar uploaded", "userID", userID, "key", key)

	return profile, nil
}

// extensionForContentType maps the upload content type to the stored file
// extension. Unknown types fall back to a bare key; the bucket still serves
// them with the recorded content type.
func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
