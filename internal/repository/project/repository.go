package project

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ProjectRow, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.ProjectRow, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ProjectRow, error)
}
