package ux

import (
	"context"

	"studio-content/internal/domain"
)

// Repository reads UX problems and UX solutions. The problem/solution link
// is symmetric: each detail embeds the other side.
type Repository interface {
	ListProblems(ctx context.Context) ([]domain.UxProblemRow, error)
	GetProblemBySlug(ctx context.Context, slug string) (*domain.UxProblemRow, error)
	ListSolutions(ctx context.Context) ([]domain.UxSolutionRow, error)
	GetSolutionBySlug(ctx context.Context, slug string) (*domain.UxSolutionRow, error)
}
