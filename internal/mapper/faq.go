package mapper

import "studio-content/internal/domain"

func FAQ(f domain.FAQRow) domain.FAQItem {
	return domain.FAQItem{
		ID:       f.ID,
		Slug:     f.Slug,
		Question: f.Question,
		Answer:   f.Answer,
	}
}

// FAQCategories maps categories with their questions. Categories without
// any question are left out.
func FAQCategories(rows []domain.FAQCategoryRow) []domain.FAQCategoryWithItems {
	out := make([]domain.FAQCategoryWithItems, 0, len(rows))
	for _, c := range rows {
		if len(c.FAQs) == 0 {
			continue
		}
		items := make([]domain.FAQItem, 0, len(c.FAQs))
		for _, f := range c.FAQs {
			items = append(items, FAQ(f))
		}
		out = append(out, domain.FAQCategoryWithItems{
			ID:    c.ID,
			Name:  c.Name,
			Slug:  c.Slug,
			Items: items,
		})
	}
	return out
}
