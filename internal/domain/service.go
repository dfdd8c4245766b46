package domain

import "encoding/json"

type ServiceRow struct {
	ID           string                        `json:"id"`
	Slug         string                        `json:"slug"`
	Title        string                        `json:"title"`
	Description  string                        `json:"description"`
	OfferingType OfferingType                  `json:"offering_type"`
	Content      json.RawMessage               `json:"content"`
	SortOrder    int                           `json:"sort_order"`
	Featured     bool                          `json:"featured"`
	Icons        Many[Icon]                    `json:"icons"`
	Testimonials Many[Link[TestimonialRow]]    `json:"testimonial_services"`
	Projects     Many[Link[ProjectSummaryRow]] `json:"project_services"`
}
