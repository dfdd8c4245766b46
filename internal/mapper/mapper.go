// Package mapper turns joined backend rows into renderer view models.
//
// Related-item fields come out nil when empty. Content JSON is passed
// through untouched; nothing here validates CMS-authored content.
package mapper

import "studio-content/internal/domain"

// FirstIcon picks the first attached icon, or nil when there is none.
func FirstIcon(icons []domain.Icon) *domain.Icon {
	if len(icons) == 0 {
		return nil
	}
	icon := icons[0]
	return &icon
}

// Related extracts the far-side entities of junction rows, drops dangling
// links and maps the rest. The result is nil when nothing survives.
func Related[T, V any](links []domain.Link[T], fn func(T) V) []V {
	var out []V
	for _, l := range links {
		if l.Related == nil {
			continue
		}
		out = append(out, fn(*l.Related))
	}
	return out
}

// nilIfEmpty normalizes an empty slice to nil.
func nilIfEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	return items
}

func ServiceRef(s domain.ServiceRow) domain.ServiceRef {
	return domain.ServiceRef{
		ID:    s.ID,
		Title: s.Title,
		Slug:  s.Slug,
		Icon:  FirstIcon(s.Icons),
	}
}

// ServiceRefs flattens project_services into service references.
func ServiceRefs(links []domain.Link[domain.ServiceRow]) []domain.ServiceRef {
	return Related(links, ServiceRef)
}

func Testimonial(t domain.TestimonialRow) domain.TestimonialItem {
	return domain.TestimonialItem{
		ID:          t.ID,
		Quote:       t.Quote,
		AuthorName:  t.AuthorName,
		AuthorTitle: t.AuthorTitle,
		Company:     t.Company,
		AvatarURL:   t.AvatarURL,
		Featured:    t.Featured,
	}
}

func Testimonials(rows []domain.TestimonialRow) []domain.TestimonialItem {
	out := make([]domain.TestimonialItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, Testimonial(r))
	}
	return out
}
