package mapper

import "studio-content/internal/domain"

func ProcessStep(s domain.ProcessStepRow) domain.ProcessStepItem {
	return domain.ProcessStepItem{
		ID:          s.ID,
		Slug:        s.Slug,
		Title:       s.Title,
		Description: s.Description,
		Content:     s.Content,
		SortOrder:   s.SortOrder,
		Icon:        FirstIcon(s.Icons),
	}
}

func ProcessSteps(rows []domain.ProcessStepRow) []domain.ProcessStepItem {
	out := make([]domain.ProcessStepItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProcessStep(r))
	}
	return out
}

func Page(p domain.PageRow) domain.PageData {
	return domain.PageData{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title,
		PageType:        p.PageType,
		Status:          p.Status,
		Content:         p.Content,
		MetaDescription: p.MetaDescription,
		OGImageURL:      p.OGImageURL,
		SortOrder:       p.SortOrder,
		PublishedAt:     p.PublishedAt,
		FAQs:            Related(p.FAQs, FAQ),
		UxProblems:      Related(p.UxProblems, UxCard),
		UxSolutions:     Related(p.UxSolutions, UxCard),
	}
}
