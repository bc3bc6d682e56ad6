package models

import "time"

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	ProjectURL  string    `json:"project_url,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Education struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field,omitempty"`
	StartYear   int       `json:"start_year"`
	EndYear     int       `json:"end_year,omitempty"`
	Description string    `json:"description,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Experience struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `json:"description,omitempty"`
	IsVisible   bool      `json:"is_visible"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
