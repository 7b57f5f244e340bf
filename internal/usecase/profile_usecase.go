package usecase

import (
	"context"
	"io"

	"registry/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the editable member profile fields.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	FullName *string
}

// UploadAvatarInput carries an avatar image to store for the member.
type UploadAvatarInput struct {
	ContentType string
	Body        io.Reader
}

// ProfileUsecase defines member profile operations.
type ProfileUsecase interface {
	// GetProfile returns the user together with their member profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the given changes to the member profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// UploadAvatar stores a new avatar image and records its URL on the profile.
	UploadAvatar(ctx context.Context, userID uuid.UUID, input *UploadAvatarInput) (*entity.Profile, error)
}
