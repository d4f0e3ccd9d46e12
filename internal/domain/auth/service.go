package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
}

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server side.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, tokenHash string, expiresAt int64) error
	Revoke(ctx context.Context, tokenHash string) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
