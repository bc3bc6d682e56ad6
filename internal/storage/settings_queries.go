package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codex-portfolio/internal/models"
)

// GetSiteSettings returns the freshest settings row. The table is seeded with
// a single row at migration time, but ordering by updated_at mirrors the
// remote-table contract of "newest row wins".
func (p *DatabaseProvider) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	query := `
		SELECT id, site_name, site_tagline, contact_email,
		       maintenance_mode, maintenance_title, maintenance_message,
		       maintenance_detail, maintenance_duration, available_for_work,
		       social_line, social_linkedin, hero_image_url, google_analytics_id,
		       created_at, updated_at
		FROM site_settings
		ORDER BY updated_at DESC
		LIMIT 1`

	settings := &models.SiteSettings{}
	err := p.db.QueryRowContext(ctx, query).Scan(
		&settings.ID, &settings.SiteName, &settings.SiteTagline, &settings.ContactEmail,
		&settings.MaintenanceMode, &settings.MaintenanceTitle, &settings.MaintenanceMessage,
		&settings.MaintenanceDetail, &settings.MaintenanceDuration, &settings.AvailableForWork,
		&settings.SocialLine, &settings.SocialLinkedin, &settings.HeroImageURL, &settings.GoogleAnalyticsID,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return settings, nil
}

func (p *DatabaseProvider) UpdateSiteSettings(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error) {
	id := settings.ID
	if id == "" {
		id = "default"
	}

	query := `
		UPDATE site_settings SET
			site_name = ?, site_tagline = ?, contact_email = ?,
			maintenance_mode = ?, maintenance_title = ?, maintenance_message = ?,
			maintenance_detail = ?, maintenance_duration = ?, available_for_work = ?,
			social_line = ?, social_linkedin = ?, hero_image_url = ?, google_analytics_id = ?,
			updated_at = ?
		WHERE id = ?`

	result, err := p.db.ExecContext(ctx, query,
		settings.SiteName, settings.SiteTagline, settings.ContactEmail,
		settings.MaintenanceMode, settings.MaintenanceTitle, settings.MaintenanceMessage,
		settings.MaintenanceDetail, settings.MaintenanceDuration, settings.AvailableForWork,
		settings.SocialLine, settings.SocialLinkedin, settings.HeroImageURL, settings.GoogleAnalyticsID,
		time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return p.GetSiteSettings(ctx)
}

func (p *DatabaseProvider) GetSEOSettings(ctx context.Context) (*models.SEOSettings, error) {
	query := `
		SELECT id, meta_title, meta_description, meta_keywords, og_image_url,
		       canonical_url, no_index, updated_at
		FROM seo_settings
		ORDER BY updated_at DESC
		LIMIT 1`

	settings := &models.SEOSettings{}
	err := p.db.QueryRowContext(ctx, query).Scan(
		&settings.ID, &settings.MetaTitle, &settings.MetaDescription, &settings.MetaKeywords,
		&settings.OGImageURL, &settings.CanonicalURL, &settings.NoIndex, &settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seo settings: %w", err)
	}

	return settings, nil
}

func (p *DatabaseProvider) UpdateSEOSettings(ctx context.Context, settings *models.SEOSettings) (*models.SEOSettings, error) {
	id := settings.ID
	if id == "" {
		id = "default"
	}

	query := `
		UPDATE seo_settings SET
			meta_title = ?, meta_description = ?, meta_keywords = ?,
			og_image_url = ?, canonical_url = ?, no_index = ?, updated_at = ?
		WHERE id = ?`

	result, err := p.db.ExecContext(ctx, query,
		settings.MetaTitle, settings.MetaDescription, settings.MetaKeywords,
		settings.OGImageURL, settings.CanonicalURL, settings.NoIndex,
		time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update seo settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return p.GetSEOSettings(ctx)
}
