package auth

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	gob.Register(&models.User{})
	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = time.Duration(cfg.Sessions.FixedTimeout)

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{SessionManager: sessionManager}, nil
}

func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return s.SessionManager.LoadAndSave(next)
}

func (s *SessionManager) SetUser(ctx *middlewares.AppContext, user *models.User) {
	s.Put(ctx, string(SessionKeyUserData), user)
}

func (s *SessionManager) GetUser(ctx *middlewares.AppContext) (user *models.User, ok bool) {
	data := s.Get(ctx, string(SessionKeyUserData))
	if data == nil {
		return nil, false
	}

	if user, ok := data.(*models.User); ok {
		return user, true
	}

	return nil, false
}

func (s *SessionManager) SetAuthenticated(ctx *middlewares.AppContext, authenticated bool) {
	s.Put(ctx, string(SessionKeyAuthenticated), authenticated)
}

func (s *SessionManager) IsAuthenticated(ctx *middlewares.AppContext) bool {
	return s.GetBool(ctx, string(SessionKeyAuthenticated))
}

func (s *SessionManager) SetAccessToken(ctx *middlewares.AppContext, token string) {
	s.Put(ctx, string(SessionKeyAccessToken), token)
}

func (s *SessionManager) GetAccessToken(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyAccessToken))
}

func (s *SessionManager) SetRefreshToken(ctx *middlewares.AppContext, token string) {
	s.Put(ctx, string(SessionKeyRefreshToken), token)
}

func (s *SessionManager) GetRefreshToken(ctx *middlewares.AppContext) string {
	return s.GetString(ctx, string(SessionKeyRefreshToken))
}

func (s *SessionManager) SetTokenExpiry(ctx *middlewares.AppContext, expiry time.Time) {
	s.Put(ctx, string(SessionKeyTokenExpiry), expiry.Unix())
}

func (s *SessionManager) GetTokenExpiry(ctx *middlewares.AppContext) (time.Time, bool) {
	timestamp := s.GetInt64(ctx, string(SessionKeyTokenExpiry))
	if timestamp == 0 {
		return time.Time{}, false
	}
	return time.Unix(timestamp, 0), true
}

func (s *SessionManager) SetCreatedAt(ctx *middlewares.AppContext, createdAt time.Time) {
	s.Put(ctx, string(SessionKeyCreatedAt), createdAt.Unix())
}

func (s *SessionManager) GetCreatedAt(ctx *middlewares.AppContext) (time.Time, bool) {
	timestamp := s.GetInt64(ctx, string(SessionKeyCreatedAt))
	if timestamp == 0 {
		return time.Time{}, false
	}
	return time.Unix(timestamp, 0), true
}

func (s *SessionManager) SetRedirectAfterLogin(ctx *middlewares.AppContext, redirectAfterLogin string) {
	s.Put(ctx, string(SessionKeyRedirectAfterLogin), redirectAfterLogin)
}

// ConsumeRedirectAfterLogin reads and clears the pending redirect in one
// step so a replayed callback cannot reuse it.
func (s *SessionManager) ConsumeRedirectAfterLogin(ctx *middlewares.AppContext) string {
	redirect := s.GetString(ctx, string(SessionKeyRedirectAfterLogin))
	s.Remove(ctx, string(SessionKeyRedirectAfterLogin))
	return redirect
}

// CreateSessionFromGrant installs a successful token exchange into the
// session. Called after the session token has been renewed.
func (s *SessionManager) CreateSessionFromGrant(ctx *middlewares.AppContext, grant *models.TokenGrant) error {
	now := time.Now()
	expiry := grant.Expiry(now)

	if !expiry.After(now) {
		return fmt.Errorf("token already expired")
	}

	s.SetUser(ctx, grant.User)
	s.SetAuthenticated(ctx, true)
	s.SetAccessToken(ctx, grant.AccessToken)
	if grant.RefreshToken != "" {
		s.SetRefreshToken(ctx, grant.RefreshToken)
	}
	s.SetTokenExpiry(ctx, expiry)
	s.SetCreatedAt(ctx, now)

	return nil
}

// UpdateTokens replaces the stored tokens after a refresh without touching
// the rest of the session.
func (s *SessionManager) UpdateTokens(ctx *middlewares.AppContext, grant *models.TokenGrant) {
	s.SetAccessToken(ctx, grant.AccessToken)
	if grant.RefreshToken != "" {
		s.SetRefreshToken(ctx, grant.RefreshToken)
	}
	s.SetTokenExpiry(ctx, grant.Expiry(time.Now()))
	if grant.User != nil {
		s.SetUser(ctx, grant.User)
	}
}

func (s *SessionManager) IsTokenExpired(ctx *middlewares.AppContext) bool {
	expiry, exists := s.GetTokenExpiry(ctx)
	if !exists {
		return true
	}

	return !time.Now().Before(expiry)
}

func (s *SessionManager) IsUserAuthenticated(ctx *middlewares.AppContext) bool {
	if !s.IsAuthenticated(ctx) {
		return false
	}

	expiry, exists := s.GetTokenExpiry(ctx)
	if exists && !time.Now().Before(expiry) {
		return false
	}

	return true
}

func (s *SessionManager) GetAuthenticatedUser(ctx *middlewares.AppContext) (user *models.User, ok bool) {
	if !s.IsUserAuthenticated(ctx) {
		return nil, false
	}

	return s.GetUser(ctx)
}

func (s *SessionManager) RenewToken(ctx *middlewares.AppContext) error {
	return s.SessionManager.RenewToken(ctx.Request.Context())
}

func (s *SessionManager) Logout(ctx *middlewares.AppContext) error {
	return s.Destroy(ctx.Request.Context())
}
