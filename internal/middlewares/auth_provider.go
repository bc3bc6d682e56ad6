package middlewares

import (
	"context"

	"codex-portfolio/internal/models"
)

//go:generate mockgen -source=auth_provider.go -destination=../mocks/auth.go -package=mocks

// AuthProvider is the upstream auth hub: it builds login redirect URLs and
// performs the code exchange, profile verification, and refresh calls.
type AuthProvider interface {
	LoginURL(returnPath string, admin bool) string
	ExchangeCode(ctx context.Context, code string) (*models.TokenGrant, error)
	FetchProfile(ctx context.Context, accessToken string) (*models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenGrant, error)
	Logout(ctx context.Context, accessToken string) error
}
