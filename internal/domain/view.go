package domain

import (
	"encoding/json"
	"time"
)

// View models handed to renderers. Optional related-item fields are nil when
// there is nothing to show, never an empty slice.

type ServiceRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Icon  *Icon  `json:"icon"`
}

type ProjectRef struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type TestimonialItem struct {
	ID          string `json:"id"`
	Quote       string `json:"quote"`
	AuthorName  string `json:"authorName"`
	AuthorTitle string `json:"authorTitle,omitempty"`
	Company     string `json:"company,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Featured    bool   `json:"featured"`
}

type ProjectCardItem struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Featured    bool         `json:"featured"`
	Services    []ServiceRef `json:"services"`
}

type ProjectDetail struct {
	ProjectCardItem
	ClientName  string           `json:"clientName,omitempty"`
	Content     json.RawMessage  `json:"content"`
	Testimonial *TestimonialItem `json:"testimonial"`
}

type ServiceCardItem struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	OfferingType OfferingType `json:"offeringType"`
	Featured     bool         `json:"featured"`
	Icon         *Icon        `json:"icon"`
}

type ServiceData struct {
	ServiceCardItem
	Content      json.RawMessage   `json:"content"`
	Testimonials []TestimonialItem `json:"testimonials"`
	Projects     []ProjectRef      `json:"projects"`
}

type PostCardItem struct {
	ID            string     `json:"id"`
	Slug          string     `json:"slug"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt,omitempty"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt"`
	Tags          []Tag      `json:"tags"`
}

type PostDetail struct {
	PostCardItem
	Content json.RawMessage `json:"content"`
	// Document is nil when the content could not be read as blocks.
	Document *BlockDocument `json:"document"`
}

type FAQItem struct {
	ID       string          `json:"id"`
	Slug     string          `json:"slug"`
	Question string          `json:"question"`
	Answer   json.RawMessage `json:"answer"`
}

type FAQCategoryWithItems struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Items []FAQItem `json:"items"`
}

type ProcessStepItem struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Content     json.RawMessage `json:"content"`
	SortOrder   int             `json:"sortOrder"`
	Icon        *Icon           `json:"icon"`
}

type UxCardItem struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Featured    bool   `json:"featured"`
	Icon        *Icon  `json:"icon"`
}

type UxProblemDetail struct {
	UxCardItem
	Content   json.RawMessage `json:"content"`
	Solutions []UxCardItem    `json:"solutions"`
}

type UxSolutionDetail struct {
	UxCardItem
	Content  json.RawMessage `json:"content"`
	Problems []UxCardItem    `json:"problems"`
}

type PageData struct {
	ID              string          `json:"id"`
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	PageType        PageType        `json:"pageType"`
	Status          Status          `json:"status"`
	Content         json.RawMessage `json:"content"`
	MetaDescription string          `json:"metaDescription,omitempty"`
	OGImageURL      string          `json:"ogImageUrl,omitempty"`
	SortOrder       int             `json:"sortOrder"`
	PublishedAt     *time.Time      `json:"publishedAt"`
	FAQs            []FAQItem       `json:"faqs"`
	UxProblems      []UxCardItem    `json:"uxProblems"`
	UxSolutions     []UxCardItem    `json:"uxSolutions"`
}

// NavLinkInfo is one side of a prev/next pair.
type NavLinkInfo struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	CategoryLabel string `json:"categoryLabel"`
}

type NavLinks struct {
	Previous *NavLinkInfo `json:"previous"`
	Next     *NavLinkInfo `json:"next"`
}
