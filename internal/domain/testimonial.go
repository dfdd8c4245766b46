package domain

// TestimonialRow has no slug; testimonials are only ever listed or embedded.
type TestimonialRow struct {
	ID          string `json:"id"`
	Quote       string `json:"quote"`
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title"`
	Company     string `json:"company"`
	AvatarURL   string `json:"avatar_url"`
	SortOrder   int    `json:"sort_order"`
	Featured    bool   `json:"featured"`
}
