package page

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	// GetBySlug ignores status so previews can load drafts.
	GetBySlug(ctx context.Context, slug string) (*domain.PageRow, error)
	ListNavigable(ctx context.Context) ([]domain.NavigablePageInfo, error)
	ListPublished(ctx context.Context) ([]domain.NavigablePageInfo, error)
}
