package testimonial

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/logging"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "testimonial"))}
}

// Testimonials have no slug, so ties on sort_order fall back to creation order.
const (
	selectTestimonial = `
SELECT t.id::text, t.quote, t.author_name, COALESCE(t.author_title, ''), COALESCE(t.company, ''),
       COALESCE(t.avatar_url, ''), t.sort_order, t.featured
FROM testimonials t
`
	orderTestimonials = ` ORDER BY t.sort_order ASC, t.created_at ASC, t.id ASC`

	listQuery          = selectTestimonial + orderTestimonials
	listFeaturedQuery  = selectTestimonial + `WHERE t.featured` + orderTestimonials + ` LIMIT $1`
	listByServiceQuery = selectTestimonial + `
JOIN testimonial_services ts ON ts.testimonial_id = t.id
JOIN services s ON s.id = ts.service_id
WHERE s.slug = $1` + orderTestimonials
)

func (r *postgresRepo) List(ctx context.Context) ([]domain.TestimonialRow, error) {
	return r.list(ctx, "all", listQuery)
}

// ListFeatured caps the list at limit; limit <= 0 selects nothing.
func (r *postgresRepo) ListFeatured(ctx context.Context, limit int) ([]domain.TestimonialRow, error) {
	if limit <= 0 {
		return []domain.TestimonialRow{}, nil
	}
	return r.list(ctx, "featured", listFeaturedQuery, limit)
}

func (r *postgresRepo) ListByService(ctx context.Context, serviceSlug string) ([]domain.TestimonialRow, error) {
	return r.list(ctx, "by_service", listByServiceQuery, serviceSlug)
}

func (r *postgresRepo) list(ctx context.Context, op, q string, args ...any) ([]domain.TestimonialRow, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("testimonial repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.TestimonialRow
	for rows.Next() {
		var t domain.TestimonialRow
		if err := rows.Scan(&t.ID, &t.Quote, &t.AuthorName, &t.AuthorTitle, &t.Company,
			&t.AvatarURL, &t.SortOrder, &t.Featured); err != nil {
			return nil, fmt.Errorf("testimonial repo: list %s: %w", op, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("testimonial repo: list %s: %w", op, err)
	}
	r.logger.Debug("testimonials listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}
