package domain

import (
	"encoding/json"
	"time"
)

// PageRow is a page as stored, with its junction-embedded associations.
type PageRow struct {
	ID              string                `json:"id"`
	Slug            string                `json:"slug"`
	Title           string                `json:"title"`
	PageType        PageType              `json:"page_type"`
	Status          Status                `json:"status"`
	Content         json.RawMessage       `json:"content"`
	MetaDescription string                `json:"meta_description"`
	OGImageURL      string                `json:"og_image_url"`
	SortOrder       int                   `json:"sort_order"`
	PublishedAt     *time.Time            `json:"published_at"`
	FAQs            Many[Link[FAQRow]]    `json:"page_faqs"`
	UxProblems      Many[Link[UxItemRow]] `json:"page_ux_problems"`
	UxSolutions     Many[Link[UxItemRow]] `json:"page_ux_solutions"`
}

// NavigablePageInfo is the projection of a page used for adjacency.
type NavigablePageInfo struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	PageType PageType `json:"pageType"`
}
