package domain

import "encoding/json"

type ProcessStepRow struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
	SortOrder   int             `json:"sort_order"`
	Featured    bool            `json:"featured"`
	Icons       Many[Icon]      `json:"icons"`
}
