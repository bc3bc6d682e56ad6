package models

import "time"

// SiteSettings is the single-row settings record. The in-memory snapshot is
// always replaced wholesale on fetch, never merged field-by-field.
type SiteSettings struct {
	ID                  string    `json:"id"`
	SiteName            string    `json:"site_name"`
	SiteTagline         string    `json:"site_tagline"`
	ContactEmail        string    `json:"contact_email"`
	MaintenanceMode     bool      `json:"maintenance_mode"`
	MaintenanceTitle    string    `json:"maintenance_title"`
	MaintenanceMessage  string    `json:"maintenance_message"`
	MaintenanceDetail   string    `json:"maintenance_detail"`
	MaintenanceDuration string    `json:"maintenance_duration"`
	AvailableForWork    bool      `json:"available_for_work"`
	SocialLine          string    `json:"social_line"`
	SocialLinkedin      string    `json:"social_linkedin"`
	HeroImageURL        string    `json:"hero_image_url"`
	GoogleAnalyticsID   string    `json:"google_analytics_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// DefaultSiteSettings returns the hardcoded snapshot used before the first
// successful fetch.
func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:            "CodeX",
		SiteTagline:         "Developer Portfolio",
		MaintenanceMode:     false,
		MaintenanceTitle:    "Under Maintenance",
		MaintenanceMessage:  "The site is being improved, please check back later.",
		MaintenanceDetail:   "Sorry for the inconvenience. We are upgrading the system, please come back later.",
		MaintenanceDuration: "A few hours",
		AvailableForWork:    true,
		HeroImageURL:        "/Dev.png",
	}
}

type SEOSettings struct {
	ID              string    `json:"id"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	MetaKeywords    string    `json:"meta_keywords"`
	OGImageURL      string    `json:"og_image_url"`
	CanonicalURL    string    `json:"canonical_url"`
	NoIndex         bool      `json:"no_index"`
	UpdatedAt       time.Time `json:"updated_at"`
}
