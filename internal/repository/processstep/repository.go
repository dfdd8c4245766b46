package processstep

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ProcessStepRow, error)
	GetBySlug(ctx context.Context, slug string) (*domain.ProcessStepRow, error)
}
