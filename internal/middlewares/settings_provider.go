package middlewares

import (
	"context"

	"codex-portfolio/internal/models"
)

//go:generate mockgen -source=settings_provider.go -destination=../mocks/settings.go -package=mocks

// SettingsProvider is the live site settings bridge. Snapshot never blocks;
// Refresh re-fetches from storage and is safe to call from any goroutine.
type SettingsProvider interface {
	Snapshot() *models.SiteSettings
	Loading() bool
	Refresh(ctx context.Context, trigger string) error
	Notify()
	FeedState() string
}
