package middlewares

import (
	"net/http"
	"time"

	"codex-portfolio/internal/models"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	SetUser(ctx *AppContext, user *models.User)
	GetUser(ctx *AppContext) (user *models.User, ok bool)
	SetAuthenticated(ctx *AppContext, authenticated bool)
	IsAuthenticated(ctx *AppContext) bool
	SetAccessToken(ctx *AppContext, token string)
	GetAccessToken(ctx *AppContext) string
	SetRefreshToken(ctx *AppContext, token string)
	GetRefreshToken(ctx *AppContext) string
	SetTokenExpiry(ctx *AppContext, expiry time.Time)
	GetTokenExpiry(ctx *AppContext) (time.Time, bool)
	SetCreatedAt(ctx *AppContext, createdAt time.Time)
	GetCreatedAt(ctx *AppContext) (time.Time, bool)
	SetRedirectAfterLogin(ctx *AppContext, redirectAfterLogin string)
	ConsumeRedirectAfterLogin(ctx *AppContext) string
	CreateSessionFromGrant(ctx *AppContext, grant *models.TokenGrant) error
	UpdateTokens(ctx *AppContext, grant *models.TokenGrant)
	IsTokenExpired(ctx *AppContext) bool
	IsUserAuthenticated(ctx *AppContext) bool
	GetAuthenticatedUser(ctx *AppContext) (user *models.User, ok bool)
	RenewToken(ctx *AppContext) error
	Logout(ctx *AppContext) error

	LoadAndSave(next http.Handler) http.Handler
}
