package domain

import "encoding/json"

type ProjectRow struct {
	ID           string                     `json:"id"`
	Slug         string                     `json:"slug"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	ClientName   string                     `json:"client_name"`
	ImageURL     string                     `json:"image_url"`
	Content      json.RawMessage            `json:"content"`
	SortOrder    int                        `json:"sort_order"`
	Featured     bool                       `json:"featured"`
	Services     Many[Link[ServiceRow]]     `json:"project_services"`
	Testimonials Many[Link[TestimonialRow]] `json:"project_testimonials"`
}

// ProjectSummaryRow is the slim project shape embedded under other entities.
type ProjectSummaryRow struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
