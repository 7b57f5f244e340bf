// Package storage provides object storage for member avatars.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers are selected by the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobAvatarStorage implements service.AvatarStorage on top of a
// portable blob bucket.
type blobAvatarStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for AvatarStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStorage opens the configured avatar bucket.
func NewAvatarStorage(params StorageParams) (service.AvatarStorage, error) {
	cfg := params.Config.Avatar
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("avatar bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Avatar bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
	)

	storage := &blobAvatarStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Store writes the avatar object under the given key and returns its public URL.
func (s *blobAvatarStorage) Store(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "failed to write avatar %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize avatar %s", key)
	}

	s.logger.Info("Avatar stored", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *blobAvatarStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
