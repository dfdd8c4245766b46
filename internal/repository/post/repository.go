package post

import (
	"context"

	"studio-content/internal/domain"
)

// Repository only ever returns published posts, newest first.
type Repository interface {
	ListPublished(ctx context.Context, limit int) ([]domain.PostRow, error)
	ListByTag(ctx context.Context, tagSlug string, limit int) ([]domain.PostRow, error)
	GetBySlug(ctx context.Context, slug string) (*domain.PostRow, error)
}
