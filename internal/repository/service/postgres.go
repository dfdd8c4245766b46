package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/logging"
	"studio-content/internal/repository"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "service"))}
}

var selectService = `
SELECT s.id::text, s.slug, s.title, COALESCE(s.description, ''), s.offering_type, s.content,
       s.sort_order, s.featured, ` + repository.IconsJSON("s") + `
FROM services s
`

const orderServices = `ORDER BY s.sort_order ASC, s.slug ASC`

var (
	listQuery           = selectService + orderServices
	listFeaturedQuery   = selectService + `WHERE s.featured ` + orderServices + ` LIMIT $1`
	listByOfferingQuery = selectService + `WHERE s.offering_type = $1 ` + orderServices
)

var getBySlugQuery = `
SELECT s.id::text, s.slug, s.title, COALESCE(s.description, ''), s.offering_type, s.content,
       s.sort_order, s.featured, ` + repository.IconsJSON("s") + `,
       ` + repository.LinkAgg(repository.TestimonialJSON("t"), "t",
	`FROM testimonial_services ts LEFT JOIN testimonials t ON t.id = ts.testimonial_id WHERE ts.service_id = s.id`,
	`t.sort_order, t.created_at, t.id`) + `,
       ` + repository.LinkAgg(repository.ProjectSummaryJSON("p"), "p",
	`FROM project_services ps LEFT JOIN projects p ON p.id = ps.project_id WHERE ps.service_id = s.id`,
	`p.sort_order, p.slug`) + `
FROM services s
WHERE s.slug = $1
`

func (r *postgresRepo) List(ctx context.Context) ([]domain.ServiceRow, error) {
	return r.list(ctx, "all", listQuery)
}

// ListFeatured caps the list at limit; limit <= 0 selects nothing.
func (r *postgresRepo) ListFeatured(ctx context.Context, limit int) ([]domain.ServiceRow, error) {
	if limit <= 0 {
		return []domain.ServiceRow{}, nil
	}
	return r.list(ctx, "featured", listFeaturedQuery, limit)
}

func (r *postgresRepo) ListByOffering(ctx context.Context, offering domain.OfferingType) ([]domain.ServiceRow, error) {
	return r.list(ctx, "offering", listByOfferingQuery, string(offering))
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.ServiceRow, error) {
	var (
		s                             domain.ServiceRow
		content                       []byte
		icons, testimonials, projects []byte
	)
	err := r.pool.QueryRow(ctx, getBySlugQuery, slug).Scan(
		&s.ID, &s.Slug, &s.Title, &s.Description, &s.OfferingType, &content,
		&s.SortOrder, &s.Featured, &icons, &testimonials, &projects,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("service not found", zap.String("slug", slug))
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("service repo: get slug=%s: %w", slug, err)
	}
	s.Content = repository.Content(content)
	if err := repository.Decode(icons, &s.Icons, "icons"); err != nil {
		return nil, fmt.Errorf("service repo: get slug=%s: %w", slug, err)
	}
	if err := repository.Decode(testimonials, &s.Testimonials, "testimonial_services"); err != nil {
		return nil, fmt.Errorf("service repo: get slug=%s: %w", slug, err)
	}
	if err := repository.Decode(projects, &s.Projects, "project_services"); err != nil {
		return nil, fmt.Errorf("service repo: get slug=%s: %w", slug, err)
	}
	return &s, nil
}

func (r *postgresRepo) list(ctx context.Context, op, q string, args ...any) ([]domain.ServiceRow, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("service repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.ServiceRow
	for rows.Next() {
		var (
			s       domain.ServiceRow
			content []byte
			icons   []byte
		)
		if err := rows.Scan(&s.ID, &s.Slug, &s.Title, &s.Description, &s.OfferingType, &content,
			&s.SortOrder, &s.Featured, &icons); err != nil {
			return nil, fmt.Errorf("service repo: list %s: %w", op, err)
		}
		s.Content = repository.Content(content)
		if err := repository.Decode(icons, &s.Icons, "icons"); err != nil {
			return nil, fmt.Errorf("service repo: list %s: %w", op, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("service repo: list %s: %w", op, err)
	}
	r.logger.Debug("services listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}
