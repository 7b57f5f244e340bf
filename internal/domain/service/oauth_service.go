package service

import "context"

// OAuthUser is the normalized identity returned by an external OAuth provider.
type OAuthUser struct {
	ID            string // Provider-specific subject identifier.
	Email         string
	Name          string
	Provider      string // e.g. entity.ProviderTypeGoogle
	AvatarURL     string
	EmailVerified bool
}

// OAuthService verifies externally issued identity tokens.
type OAuthService interface {
	// VerifyIDToken validates a provider ID token and returns the normalized user.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
