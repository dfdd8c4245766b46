package service

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ServiceRow, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.ServiceRow, error)
	ListByOffering(ctx context.Context, offering domain.OfferingType) ([]domain.ServiceRow, error)
	// GetBySlug also embeds testimonials and projects linked to the service.
	GetBySlug(ctx context.Context, slug string) (*domain.ServiceRow, error)
}
