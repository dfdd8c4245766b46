package mapper

import "studio-content/internal/domain"

func UxCard(u domain.UxItemRow) domain.UxCardItem {
	return domain.UxCardItem{
		ID:          u.ID,
		Slug:        u.Slug,
		Title:       u.Title,
		Description: u.Description,
		Featured:    u.Featured,
		Icon:        FirstIcon(u.Icons),
	}
}

func UxProblemCards(rows []domain.UxProblemRow) []domain.UxCardItem {
	out := make([]domain.UxCardItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, UxCard(r.UxItemRow))
	}
	return out
}

func UxSolutionCards(rows []domain.UxSolutionRow) []domain.UxCardItem {
	out := make([]domain.UxCardItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, UxCard(r.UxItemRow))
	}
	return out
}

func UxProblemDetail(p domain.UxProblemRow) domain.UxProblemDetail {
	return domain.UxProblemDetail{
		UxCardItem: UxCard(p.UxItemRow),
		Content:    p.Content,
		Solutions:  Related(p.Solutions, UxCard),
	}
}

func UxSolutionDetail(s domain.UxSolutionRow) domain.UxSolutionDetail {
	return domain.UxSolutionDetail{
		UxCardItem: UxCard(s.UxItemRow),
		Content:    s.Content,
		Problems:   Related(s.Problems, UxCard),
	}
}
