package faq

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	ListCategoriesWithItems(ctx context.Context) ([]domain.FAQCategoryRow, error)
	ListByPage(ctx context.Context, pageSlug string) ([]domain.FAQRow, error)
}

// Writer upserts FAQ content keyed by slug.
type Writer interface {
	UpsertCategory(ctx context.Context, c domain.FAQCategoryRow) (string, error)
	UpsertFAQ(ctx context.Context, categoryID string, f domain.FAQRow) error
}
