package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/metrics"
	"codex-portfolio/internal/models"
)

var ErrKeyNotFound = errors.New("key not found")

type memEntry struct {
	value     string
	expiresAt time.Time
}

type MemCache struct {
	settingsKey string
	settings    *models.SiteSettings
	keys        map[string]memEntry
	mutex       sync.RWMutex
	logger      *slog.Logger
}

func NewMemCache(cfg *config.Config, logger *slog.Logger) *MemCache {
	return &MemCache{
		settingsKey: cfg.Settings.CacheKey,
		keys:        make(map[string]memEntry),
		logger:      logger,
	}
}

func (m *MemCache) GetSettings(_ context.Context) (*models.SiteSettings, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.settings == nil {
		metrics.CacheMisses.WithLabelValues("settings").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("settings").Inc()
	snapshot := *m.settings
	return &snapshot, true
}

func (m *MemCache) SetSettings(_ context.Context, snapshot *models.SiteSettings) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	copied := *snapshot
	m.settings = &copied
}

func (m *MemCache) GetKey(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entry, exists := m.keys[key]
	if !exists {
		metrics.CacheMisses.WithLabelValues("keys").Inc()
		return "", ErrKeyNotFound
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		metrics.CacheMisses.WithLabelValues("keys").Inc()
		return "", ErrKeyNotFound
	}

	metrics.CacheHits.WithLabelValues("keys").Inc()
	return entry.value, nil
}

func (m *MemCache) SetKey(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry := memEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.keys[key] = entry

	return nil
}

func (m *MemCache) DeleteKey(_ context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.keys, key)
	return nil
}

func (m *MemCache) Close() error {
	return nil
}
