package server

import (
	"context"
	"log/slog"
	"time"

	"codex-portfolio/internal/settings"
)

// SettingsBridgeJob runs the bridge's notify/poll loop.
type SettingsBridgeJob struct {
	bridge   *settings.Bridge
	logger   *slog.Logger
	interval time.Duration
}

func NewSettingsBridgeJob(bridge *settings.Bridge, logger *slog.Logger, interval time.Duration) *SettingsBridgeJob {
	return &SettingsBridgeJob{
		bridge:   bridge,
		logger:   logger,
		interval: interval,
	}
}

func (j *SettingsBridgeJob) Name() string {
	return "settings_bridge"
}

func (j *SettingsBridgeJob) Interval() time.Duration {
	return j.interval
}

func (j *SettingsBridgeJob) Run(ctx context.Context) error {
	j.bridge.Run(ctx)
	j.logger.Info("settings bridge stopped")
	return ctx.Err()
}

// ChangeFeedJob keeps the upstream change-feed subscription alive.
type ChangeFeedJob struct {
	feed   settings.ChangeFeed
	logger *slog.Logger
}

func NewChangeFeedJob(feed settings.ChangeFeed, logger *slog.Logger) *ChangeFeedJob {
	return &ChangeFeedJob{feed: feed, logger: logger}
}

func (j *ChangeFeedJob) Name() string {
	return "settings_change_feed"
}

func (j *ChangeFeedJob) Interval() time.Duration {
	return 0
}

func (j *ChangeFeedJob) Run(ctx context.Context) error {
	j.feed.Run(ctx)
	j.logger.Info("change feed stopped")
	return ctx.Err()
}
