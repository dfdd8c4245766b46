package testimonial

import (
	"context"

	"studio-content/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.TestimonialRow, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.TestimonialRow, error)
	ListByService(ctx context.Context, serviceSlug string) ([]domain.TestimonialRow, error)
}
