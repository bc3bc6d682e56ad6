package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"codex-portfolio/internal/storage"
)

// AuditPruneJob trims old security events once a day so the audit table
// does not grow without bound.
type AuditPruneJob struct {
	storage   storage.Provider
	logger    *slog.Logger
	retention time.Duration
	interval  time.Duration
}

func NewAuditPruneJob(storageProvider storage.Provider, logger *slog.Logger, retentionDays int) *AuditPruneJob {
	return &AuditPruneJob{
		storage:   storageProvider,
		logger:    logger,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		interval:  24 * time.Hour,
	}
}

func (j *AuditPruneJob) Name() string {
	return "audit_prune"
}

func (j *AuditPruneJob) Interval() time.Duration {
	return j.interval
}

func (j *AuditPruneJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.prune(ctx)

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("audit prune job canceled")
			return ctx.Err()
		case <-ticker.C:
			j.prune(ctx)
		}
	}
}

func (j *AuditPruneJob) prune(ctx context.Context) {
	pruned, err := j.storage.PruneSecurityEvents(ctx, j.retention)
	if err != nil {
		j.logger.Error("failed to prune security events", "error", err)
		return
	}

	if pruned > 0 {
		j.logger.Info("pruned old security events", "count", pruned)
	}
}
