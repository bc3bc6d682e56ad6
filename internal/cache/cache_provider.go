package cache

import (
	"context"
	"time"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/models"

	"log/slog"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// Provider persists the site-settings snapshot (stale-while-revalidate cache)
// plus generic string keys used by other components.
type Provider interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, bool)
	SetSettings(ctx context.Context, snapshot *models.SiteSettings)
	GetKey(ctx context.Context, key string) (string, error)
	SetKey(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteKey(ctx context.Context, key string) error
	Close() error
}

// NewProvider returns a new cache Provider for the configured backend.
func NewProvider(cfg *config.Config, logger *slog.Logger) (Provider, error) {
	switch cfg.Cache.Type {
	case "redis":
		return NewRedisCache(cfg, logger)
	case "memory":
		fallthrough
	default:
		return NewMemCache(cfg, logger), nil
	}
}
