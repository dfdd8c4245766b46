package mapper

import "studio-content/internal/domain"

func PostCard(p domain.PostRow) domain.PostCardItem {
	return domain.PostCardItem{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		CoverImageURL: p.CoverImageURL,
		PublishedAt:   p.PublishedAt,
		Tags:          nilIfEmpty(p.Tags),
	}
}

func PostCards(rows []domain.PostRow) []domain.PostCardItem {
	out := make([]domain.PostCardItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, PostCard(r))
	}
	return out
}

// PostDetail keeps the raw content and, when it reads as a block document,
// the parsed form alongside it.
func PostDetail(p domain.PostRow) domain.PostDetail {
	detail := domain.PostDetail{
		PostCardItem: PostCard(p),
		Content:      p.Content,
	}
	if doc, err := domain.ParseBlockDocument(p.Content); err == nil && len(doc.Blocks) > 0 {
		detail.Document = &doc
	}
	return detail
}
