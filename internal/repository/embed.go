// Package repository holds SQL fragments and decoding helpers shared by the
// per-entity repositories. Related entities are embedded as JSON aggregates
// so one round-trip returns a row and all of its joins.
package repository

import (
	"encoding/json"
	"fmt"
)

// IconsJSON selects the icons attached through <alias>.icon_id as a JSON array.
func IconsJSON(alias string) string {
	return `(SELECT COALESCE(json_agg(json_build_object('name', i.name, 'icon_library', i.icon_library) ORDER BY i.name), '[]'::json)
	FROM icons i WHERE i.id = ` + alias + `.icon_id)`
}

// UxItemJSON builds a UX problem or solution object from <alias>.
func UxItemJSON(alias string) string {
	return `json_build_object('id', ` + alias + `.id, 'slug', ` + alias + `.slug, 'title', ` + alias + `.title,
	'description', COALESCE(` + alias + `.description, ''), 'content', ` + alias + `.content,
	'sort_order', ` + alias + `.sort_order, 'featured', ` + alias + `.featured, 'icons', ` + IconsJSON(alias) + `)`
}

// ServiceJSON builds a service object (with icons) from <alias>.
func ServiceJSON(alias string) string {
	return `json_build_object('id', ` + alias + `.id, 'slug', ` + alias + `.slug, 'title', ` + alias + `.title,
	'description', COALESCE(` + alias + `.description, ''), 'offering_type', ` + alias + `.offering_type,
	'sort_order', ` + alias + `.sort_order, 'featured', ` + alias + `.featured, 'icons', ` + IconsJSON(alias) + `)`
}

// TestimonialJSON builds a testimonial object from <alias>.
func TestimonialJSON(alias string) string {
	return `json_build_object('id', ` + alias + `.id, 'quote', ` + alias + `.quote, 'author_name', ` + alias + `.author_name,
	'author_title', COALESCE(` + alias + `.author_title, ''), 'company', COALESCE(` + alias + `.company, ''),
	'avatar_url', COALESCE(` + alias + `.avatar_url, ''), 'sort_order', ` + alias + `.sort_order, 'featured', ` + alias + `.featured)`
}

// ProjectSummaryJSON builds a slim project object from <alias>.
func ProjectSummaryJSON(alias string) string {
	return `json_build_object('id', ` + alias + `.id, 'slug', ` + alias + `.slug, 'title', ` + alias + `.title,
	'description', COALESCE(` + alias + `.description, ''), 'image_url', COALESCE(` + alias + `.image_url, ''))`
}

// FAQJSON builds a FAQ object from <alias>.
func FAQJSON(alias string) string {
	return `json_build_object('id', ` + alias + `.id, 'slug', ` + alias + `.slug, 'question', ` + alias + `.question,
	'answer', ` + alias + `.answer, 'sort_order', ` + alias + `.sort_order, 'featured', ` + alias + `.featured)`
}

// LinkAgg aggregates junction rows into a JSON array of {"related": ...}
// objects. alias is the far-side table, which is null for dangling links.
// from must carry the FROM/JOIN/WHERE clauses.
func LinkAgg(entity, alias, from, orderBy string) string {
	return `COALESCE((SELECT json_agg(json_build_object('related', CASE WHEN ` + alias + `.id IS NULL THEN NULL ELSE ` + entity + ` END)
	ORDER BY ` + orderBy + `) ` + from + `), '[]'::json)`
}

// Decode unmarshals a JSON aggregate column. Empty input leaves v untouched.
func Decode(raw []byte, v any, what string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	return nil
}

// Content turns a nullable jsonb column into pass-through content.
func Content(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	return json.RawMessage(raw)
}

// Limit normalizes a caller-supplied limit for a LIMIT clause; nil means no limit.
func Limit(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
