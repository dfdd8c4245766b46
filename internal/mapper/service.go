package mapper

import "studio-content/internal/domain"

func ServiceCard(s domain.ServiceRow) domain.ServiceCardItem {
	return domain.ServiceCardItem{
		ID:           s.ID,
		Slug:         s.Slug,
		Title:        s.Title,
		Description:  s.Description,
		OfferingType: s.OfferingType,
		Featured:     s.Featured,
		Icon:         FirstIcon(s.Icons),
	}
}

func ServiceCards(rows []domain.ServiceRow) []domain.ServiceCardItem {
	out := make([]domain.ServiceCardItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, ServiceCard(r))
	}
	return out
}

func ServiceDetail(s domain.ServiceRow) domain.ServiceData {
	return domain.ServiceData{
		ServiceCardItem: ServiceCard(s),
		Content:         s.Content,
		Testimonials:    Related(s.Testimonials, Testimonial),
		Projects:        Related(s.Projects, ProjectRef),
	}
}
