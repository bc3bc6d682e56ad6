package settings

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"codex-portfolio/internal/cache"
	"codex-portfolio/internal/config"
	"codex-portfolio/internal/metrics"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/realtime"
	"codex-portfolio/internal/storage"
)

// Publisher is the fan-out the bridge pushes change events to. Nil is fine;
// the bridge still refreshes, it just tells nobody.
type Publisher interface {
	Broadcast(eventType string, payload any)
}

// Bridge holds the live site settings snapshot and keeps it current through
// three triggers: change-feed pushes, local Notify calls after an admin
// write, and a periodic poll backstop. All three converge on the same
// idempotent fetch-and-replace, so trigger order and duplication never
// matter.
type Bridge struct {
	logger  *slog.Logger
	cfg     config.SettingsConfig
	storage storage.Provider
	cache   cache.Provider
	hub     Publisher
	feed    ChangeFeed

	current atomic.Pointer[models.SiteSettings]
	loading atomic.Bool

	notify chan struct{}

	refreshMu sync.Mutex
}

func NewBridge(logger *slog.Logger, cfg config.SettingsConfig, storageProvider storage.Provider, cacheProvider cache.Provider, hub Publisher) *Bridge {
	b := &Bridge{
		logger:  logger,
		cfg:     cfg,
		storage: storageProvider,
		cache:   cacheProvider,
		hub:     hub,
		notify:  make(chan struct{}, 1),
	}
	b.loading.Store(true)

	return b
}

// SetFeed attaches the change feed. Must be called before Run.
func (b *Bridge) SetFeed(feed ChangeFeed) {
	b.feed = feed
}

// Snapshot returns the current settings. It never blocks and never returns
// nil: before the first fetch completes it serves the cached snapshot if
// one exists, otherwise the built-in defaults.
func (b *Bridge) Snapshot() *models.SiteSettings {
	if s := b.current.Load(); s != nil {
		return s
	}

	return models.DefaultSiteSettings()
}

// Loading reports whether the bridge is still waiting for its first
// authoritative fetch. A warm cache counts as loaded: stale settings render
// fine and the refresh replaces them in place.
func (b *Bridge) Loading() bool {
	return b.loading.Load()
}

func (b *Bridge) FeedState() string {
	if b.feed == nil {
		return FeedStateDisconnected
	}
	return b.feed.State()
}

// Start primes the snapshot from cache and kicks off the first fetch. The
// cold-start path is deliberately synchronous on the cache read only; the
// storage fetch happens in Run so startup never blocks on it.
func (b *Bridge) Start(ctx context.Context) {
	if cached, ok := b.cache.GetSettings(ctx); ok {
		b.current.Store(cached)
		b.loading.Store(false)
		b.logger.Info("settings primed from cache")
	}
}

// Run drives the poll loop and the notify channel until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	if err := b.Refresh(ctx, metrics.FetchTriggerColdStart); err != nil {
		b.logger.Error("initial settings fetch failed", "error", err)
	}

	interval := time.Duration(b.cfg.PollInterval)
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.notify:
			if err := b.Refresh(ctx, metrics.FetchTriggerBroadcast); err != nil {
				b.logger.Error("settings refresh failed", "trigger", "broadcast", "error", err)
			}
		case <-ticker.C:
			if err := b.Refresh(ctx, metrics.FetchTriggerPoll); err != nil {
				b.logger.Error("settings refresh failed", "trigger", "poll", "error", err)
			}
		}
	}
}

// Notify requests a refresh from the local process, typically right after an
// admin settings write. Coalesces: a pending notification absorbs new ones.
func (b *Bridge) Notify() {
	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Refresh is the single fetch-and-replace every trigger funnels into. On
// error the previous snapshot stays in place; the poll backstop retries.
func (b *Bridge) Refresh(ctx context.Context, trigger string) error {
	b.refreshMu.Lock()
	defer b.refreshMu.Unlock()

	fetched, err := b.storage.GetSiteSettings(ctx)
	if err != nil {
		metrics.SettingsFetchesTotal.WithLabelValues(trigger, metrics.FetchResultError).Inc()
		return err
	}

	previous := b.current.Load()
	b.current.Store(fetched)
	b.loading.Store(false)
	b.cache.SetSettings(ctx, fetched)

	metrics.SettingsFetchesTotal.WithLabelValues(trigger, metrics.FetchResultSuccess).Inc()

	if b.hub != nil && (previous == nil || *previous != *fetched) {
		b.hub.Broadcast(realtime.EventSettingsChanged, fetched)
	}

	return nil
}
