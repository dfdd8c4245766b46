package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PageContent is the permissive typed view of a page's content JSON. Every
// key is optional; keys this type does not know are kept in Extra.
type PageContent struct {
	Hero     *HeroSection               `json:"hero,omitempty"`
	Sections []ContentSection           `json:"sections,omitempty"`
	CTA      *CallToAction              `json:"cta,omitempty"`
	Steps    []ContentStep              `json:"steps,omitempty"`
	FAQs     []ContentQA                `json:"faqs,omitempty"`
	Extra    map[string]json.RawMessage `json:"-"`
}

type HeroSection struct {
	Eyebrow  string        `json:"eyebrow,omitempty"`
	Title    string        `json:"title,omitempty"`
	Subtitle string        `json:"subtitle,omitempty"`
	ImageURL string        `json:"image_url,omitempty"`
	CTA      *CallToAction `json:"cta,omitempty"`
}

type ContentSection struct {
	ID    string          `json:"id,omitempty"`
	Type  string          `json:"type,omitempty"`
	Title string          `json:"title,omitempty"`
	Body  string          `json:"body,omitempty"`
	Items json.RawMessage `json:"items,omitempty"`
}

type CallToAction struct {
	Label string `json:"label,omitempty"`
	Href  string `json:"href,omitempty"`
}

type ContentStep struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type ContentQA struct {
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

var pageContentKeys = map[string]struct{}{
	"hero": {}, "sections": {}, "cta": {}, "steps": {}, "faqs": {},
}

// DecodePageContent decodes raw page content. Null or empty content yields
// the zero value; content that is not a JSON object is rejected.
func DecodePageContent(raw json.RawMessage) (PageContent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return PageContent{}, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &all); err != nil {
		return PageContent{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	var out PageContent
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return PageContent{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	for k, v := range all {
		if _, known := pageContentKeys[k]; known {
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]json.RawMessage)
		}
		out.Extra[k] = v
	}
	return out, nil
}
