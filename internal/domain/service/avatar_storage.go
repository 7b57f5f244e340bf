package service

import (
	"context"
	"io"
)

// AvatarStorage stores member avatar images in an object bucket and returns
// publicly resolvable URLs for them.
type AvatarStorage interface {
	// Store writes the avatar image and returns its public URL.
	Store(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}
