package domain

import "encoding/json"

// FAQRow is a single question. Answer is a block document like post content.
type FAQRow struct {
	ID        string          `json:"id"`
	Slug      string          `json:"slug"`
	Question  string          `json:"question"`
	Answer    json.RawMessage `json:"answer"`
	SortOrder int             `json:"sort_order"`
	Featured  bool            `json:"featured"`
}

type FAQCategoryRow struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	SortOrder int          `json:"sort_order"`
	FAQs      Many[FAQRow] `json:"faqs"`
}
