package mapper

import "studio-content/internal/domain"

func ProjectCard(p domain.ProjectRow) domain.ProjectCardItem {
	return domain.ProjectCardItem{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		Services:    ServiceRefs(p.Services),
	}
}

func ProjectCards(rows []domain.ProjectRow) []domain.ProjectCardItem {
	out := make([]domain.ProjectCardItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProjectCard(r))
	}
	return out
}

// ProjectDetail attaches the first linked testimonial, if any.
func ProjectDetail(p domain.ProjectRow) domain.ProjectDetail {
	var testimonial *domain.TestimonialItem
	if items := Related(p.Testimonials, Testimonial); len(items) > 0 {
		testimonial = &items[0]
	}
	return domain.ProjectDetail{
		ProjectCardItem: ProjectCard(p),
		ClientName:      p.ClientName,
		Content:         p.Content,
		Testimonial:     testimonial,
	}
}

func ProjectRef(p domain.ProjectSummaryRow) domain.ProjectRef {
	return domain.ProjectRef{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
