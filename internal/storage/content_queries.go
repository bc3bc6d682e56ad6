package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"codex-portfolio/internal/models"

	"github.com/google/uuid"
)

func (p *DatabaseProvider) ListProjects(ctx context.Context, onlyVisible bool) ([]*models.Project, error) {
	query := `
		SELECT id, title, description, image_url, project_url, repo_url, tags,
		       is_visible, order_index, created_at, updated_at
		FROM projects`
	if onlyVisible {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY order_index ASC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (p *DatabaseProvider) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, title, description, image_url, project_url, repo_url, tags,
		       is_visible, order_index, created_at, updated_at
		FROM projects WHERE id = ?`

	row := p.db.QueryRowContext(ctx, query, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (p *DatabaseProvider) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	tags, err := json.Marshal(project.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project tags: %w", err)
	}

	query := `
		INSERT INTO projects (id, title, description, image_url, project_url, repo_url, tags, is_visible, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = p.db.ExecContext(ctx, query,
		project.ID, project.Title, project.Description, project.ImageURL,
		project.ProjectURL, project.RepoURL, string(tags), project.IsVisible,
		project.OrderIndex, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p.GetProjectByID(ctx, project.ID)
}

func (p *DatabaseProvider) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	tags, err := json.Marshal(project.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project tags: %w", err)
	}

	query := `
		UPDATE projects SET
			title = ?, description = ?, image_url = ?, project_url = ?, repo_url = ?,
			tags = ?, is_visible = ?, order_index = ?, updated_at = ?
		WHERE id = ?`

	result, err := p.db.ExecContext(ctx, query,
		project.Title, project.Description, project.ImageURL, project.ProjectURL,
		project.RepoURL, string(tags), project.IsVisible, project.OrderIndex,
		time.Now().UTC(), project.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	return p.GetProjectByID(ctx, project.ID)
}

func (p *DatabaseProvider) DeleteProject(ctx context.Context, id string) error {
	return p.deleteByID(ctx, "projects", id)
}

func (p *DatabaseProvider) ListEducation(ctx context.Context, onlyVisible bool) ([]*models.Education, error) {
	query := `
		SELECT id, institution, degree, field, start_year, end_year, description,
		       is_visible, order_index, created_at, updated_at
		FROM education`
	if onlyVisible {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY order_index ASC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var entries []*models.Education
	for rows.Next() {
		entry := &models.Education{}
		err := rows.Scan(
			&entry.ID, &entry.Institution, &entry.Degree, &entry.Field,
			&entry.StartYear, &entry.EndYear, &entry.Description,
			&entry.IsVisible, &entry.OrderIndex, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (p *DatabaseProvider) CreateEducation(ctx context.Context, entry *models.Education) (*models.Education, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO education (id, institution, degree, field, start_year, end_year, description, is_visible, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := p.db.ExecContext(ctx, query,
		entry.ID, entry.Institution, entry.Degree, entry.Field, entry.StartYear,
		entry.EndYear, entry.Description, entry.IsVisible, entry.OrderIndex, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create education entry: %w", err)
	}

	return entry, nil
}

func (p *DatabaseProvider) UpdateEducation(ctx context.Context, entry *models.Education) (*models.Education, error) {
	query := `
		UPDATE education SET
			institution = ?, degree = ?, field = ?, start_year = ?, end_year = ?,
			description = ?, is_visible = ?, order_index = ?, updated_at = ?
		WHERE id = ?`

	now := time.Now().UTC()
	result, err := p.db.ExecContext(ctx, query,
		entry.Institution, entry.Degree, entry.Field, entry.StartYear, entry.EndYear,
		entry.Description, entry.IsVisible, entry.OrderIndex, now, entry.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update education entry: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	entry.UpdatedAt = now
	return entry, nil
}

func (p *DatabaseProvider) DeleteEducation(ctx context.Context, id string) error {
	return p.deleteByID(ctx, "education", id)
}

func (p *DatabaseProvider) ListExperience(ctx context.Context, onlyVisible bool) ([]*models.Experience, error) {
	query := `
		SELECT id, company, position, start_date, end_date, description,
		       is_visible, order_index, created_at, updated_at
		FROM experience`
	if onlyVisible {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY order_index ASC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experience: %w", err)
	}
	defer rows.Close()

	var entries []*models.Experience
	for rows.Next() {
		entry := &models.Experience{}
		err := rows.Scan(
			&entry.ID, &entry.Company, &entry.Position, &entry.StartDate,
			&entry.EndDate, &entry.Description, &entry.IsVisible,
			&entry.OrderIndex, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (p *DatabaseProvider) CreateExperience(ctx context.Context, entry *models.Experience) (*models.Experience, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO experience (id, company, position, start_date, end_date, description, is_visible, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := p.db.ExecContext(ctx, query,
		entry.ID, entry.Company, entry.Position, entry.StartDate, entry.EndDate,
		entry.Description, entry.IsVisible, entry.OrderIndex, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience entry: %w", err)
	}

	return entry, nil
}

func (p *DatabaseProvider) UpdateExperience(ctx context.Context, entry *models.Experience) (*models.Experience, error) {
	query := `
		UPDATE experience SET
			company = ?, position = ?, start_date = ?, end_date = ?,
			description = ?, is_visible = ?, order_index = ?, updated_at = ?
		WHERE id = ?`

	now := time.Now().UTC()
	result, err := p.db.ExecContext(ctx, query,
		entry.Company, entry.Position, entry.StartDate, entry.EndDate,
		entry.Description, entry.IsVisible, entry.OrderIndex, now, entry.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update experience entry: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrNotFound
	}

	entry.UpdatedAt = now
	return entry, nil
}

func (p *DatabaseProvider) DeleteExperience(ctx context.Context, id string) error {
	return p.deleteByID(ctx, "experience", id)
}

func (p *DatabaseProvider) deleteByID(ctx context.Context, table, id string) error {
	result, err := p.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var tags string

	err := row.Scan(
		&project.ID, &project.Title, &project.Description, &project.ImageURL,
		&project.ProjectURL, &project.RepoURL, &tags, &project.IsVisible,
		&project.OrderIndex, &project.CreatedAt, &project.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan project row: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &project.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project tags: %w", err)
	}

	return project, nil
}
