package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codex-portfolio/internal/models"
)

var ErrNotFound = errors.New("record not found")

// UpsertUser inserts or refreshes the hub user on login. The hub owns
// identity; local rows exist for audit joins and role lookups.
func (p *DatabaseProvider) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now().UTC()

	query := `
		INSERT INTO users (id, username, email, first_name, last_name, role, blackbox_id, last_logged_in, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = excluded.username,
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			role = excluded.role,
			blackbox_id = excluded.blackbox_id,
			last_logged_in = excluded.last_logged_in`

	role := user.Role
	if role == "" {
		role = models.RoleEndUser
	}

	_, err := p.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, role, user.BlackBoxID, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return p.GetUserByID(ctx, user.ID)
}

func (p *DatabaseProvider) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, email, first_name, last_name, role, blackbox_id, last_logged_in, created_at
		FROM users WHERE id = ?`

	user := &models.User{}
	var lastLoggedIn sql.NullTime

	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.Role, &user.BlackBoxID, &lastLoggedIn, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastLoggedIn.Valid {
		user.LastLoggedIn = lastLoggedIn.Time
	}

	return user, nil
}
