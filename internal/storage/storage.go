package storage

import (
	"context"
	"time"

	"codex-portfolio/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// Provider is the persistence boundary for users, content tables, settings,
// and the security audit log.
type Provider interface {
	Close() error
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error

	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error)

	GetSEOSettings(ctx context.Context) (*models.SEOSettings, error)
	UpdateSEOSettings(ctx context.Context, settings *models.SEOSettings) (*models.SEOSettings, error)

	ListProjects(ctx context.Context, onlyVisible bool) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListEducation(ctx context.Context, onlyVisible bool) ([]*models.Education, error)
	CreateEducation(ctx context.Context, entry *models.Education) (*models.Education, error)
	UpdateEducation(ctx context.Context, entry *models.Education) (*models.Education, error)
	DeleteEducation(ctx context.Context, id string) error

	ListExperience(ctx context.Context, onlyVisible bool) ([]*models.Experience, error)
	CreateExperience(ctx context.Context, entry *models.Experience) (*models.Experience, error)
	UpdateExperience(ctx context.Context, entry *models.Experience) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id string) error

	InsertSecurityEvent(ctx context.Context, event *models.SecurityEvent) (*models.SecurityEvent, error)
	GetRecentSecurityEvents(ctx context.Context, limit int) ([]*models.SecurityEvent, error)
	PruneSecurityEvents(ctx context.Context, olderThan time.Duration) (int64, error)
}
