package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/metrics"
	"codex-portfolio/internal/models"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	settingsKey string
	logger      *slog.Logger
}

func NewRedisCache(cfg *config.Config, logger *slog.Logger) (*RedisCache, error) {
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
			DB:               cfg.Redis.CacheIndex,
			MinIdleConns:     2,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.CacheIndex,
			MinIdleConns: 2,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client:      client,
		settingsKey: cfg.Settings.CacheKey,
		logger:      logger,
	}, nil
}

// Client exposes the underlying redis client for metric collectors.
func (r *RedisCache) Client() *redis.Client {
	return r.client
}

func (r *RedisCache) key(name string) string {
	return fmt.Sprintf("cache:%s", name)
}

func (r *RedisCache) GetSettings(ctx context.Context) (*models.SiteSettings, bool) {
	data, err := r.client.Get(ctx, r.key(r.settingsKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("error executing redis GET", "error", err)
		}
		metrics.CacheMisses.WithLabelValues("settings").Inc()
		return nil, false
	}

	var snapshot models.SiteSettings
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		r.logger.Error("error unmarshalling cached settings", "error", err)
		metrics.CacheMisses.WithLabelValues("settings").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("settings").Inc()
	return &snapshot, true
}

func (r *RedisCache) SetSettings(ctx context.Context, snapshot *models.SiteSettings) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		r.logger.Error("error marshalling settings snapshot", "error", err)
		return
	}

	if err := r.client.Set(ctx, r.key(r.settingsKey), data, 0).Err(); err != nil {
		r.logger.Error("error executing redis SET", "error", err)
	}
}

func (r *RedisCache) GetKey(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheMisses.WithLabelValues("keys").Inc()
			return "", ErrKeyNotFound
		}
		return "", err
	}

	metrics.CacheHits.WithLabelValues("keys").Inc()
	return value, nil
}

func (r *RedisCache) SetKey(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *RedisCache) DeleteKey(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
