package domain

import (
	"encoding/json"
	"time"
)

type PostRow struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	Title         string          `json:"title"`
	Excerpt       string          `json:"excerpt"`
	CoverImageURL string          `json:"cover_image_url"`
	Content       json.RawMessage `json:"content"`
	Status        Status          `json:"status"`
	Featured      bool            `json:"featured"`
	SortOrder     int             `json:"sort_order"`
	PublishedAt   *time.Time      `json:"published_at"`
	Tags          Many[Tag]       `json:"tags"`
}

type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
