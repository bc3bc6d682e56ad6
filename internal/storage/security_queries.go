package storage

import (
	"context"
	"fmt"
	"time"

	"codex-portfolio/internal/models"
)

func (p *DatabaseProvider) InsertSecurityEvent(ctx context.Context, event *models.SecurityEvent) (*models.SecurityEvent, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO security_events (event_type, user_id, username, ip_address, location, device, browser, user_agent, path, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := p.db.QueryRowContext(ctx, query,
		event.EventType, event.UserID, event.Username, event.IPAddress,
		event.Location, event.Device, event.Browser, event.UserAgent,
		event.Path, event.Detail, now,
	).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert security event: %w", err)
	}

	event.CreatedAt = now
	return event, nil
}

// PruneSecurityEvents deletes audit records older than the cutoff and
// returns how many were removed.
func (p *DatabaseProvider) PruneSecurityEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := p.db.ExecContext(ctx, `DELETE FROM security_events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune security events: %w", err)
	}

	return result.RowsAffected()
}

func (p *DatabaseProvider) GetRecentSecurityEvents(ctx context.Context, limit int) ([]*models.SecurityEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, event_type, user_id, username, ip_address, location, device, browser, user_agent, path, detail, created_at
		FROM security_events
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}
	defer rows.Close()

	var events []*models.SecurityEvent
	for rows.Next() {
		event := &models.SecurityEvent{}
		err := rows.Scan(
			&event.ID, &event.EventType, &event.UserID, &event.Username,
			&event.IPAddress, &event.Location, &event.Device, &event.Browser,
			&event.UserAgent, &event.Path, &event.Detail, &event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan security event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
