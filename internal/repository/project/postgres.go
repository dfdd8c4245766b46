package project

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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "project"))}
}

var selectProject = `
SELECT p.id::text, p.slug, p.title, COALESCE(p.description, ''), COALESCE(p.client_name, ''),
       COALESCE(p.image_url, ''), p.content, p.sort_order, p.featured,
       ` + repository.LinkAgg(repository.ServiceJSON("s"), "s",
	`FROM project_services ps LEFT JOIN services s ON s.id = ps.service_id WHERE ps.project_id = p.id`,
	`s.sort_order, s.slug`) + `,
       ` + repository.LinkAgg(repository.TestimonialJSON("t"), "t",
	`FROM project_testimonials pt LEFT JOIN testimonials t ON t.id = pt.testimonial_id WHERE pt.project_id = p.id`,
	`t.sort_order, t.created_at, t.id`) + `
FROM projects p
`

var (
	listQuery         = selectProject + `ORDER BY p.sort_order ASC, p.slug ASC`
	listFeaturedQuery = selectProject + `WHERE p.featured ORDER BY p.sort_order ASC, p.slug ASC LIMIT $1`
	getBySlugQuery    = selectProject + `WHERE p.slug = $1`
)

func (r *postgresRepo) List(ctx context.Context) ([]domain.ProjectRow, error) {
	return r.list(ctx, "all", listQuery)
}

// ListFeatured caps the list at limit; limit <= 0 selects nothing.
func (r *postgresRepo) ListFeatured(ctx context.Context, limit int) ([]domain.ProjectRow, error) {
	if limit <= 0 {
		return []domain.ProjectRow{}, nil
	}
	return r.list(ctx, "featured", listFeaturedQuery, limit)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.ProjectRow, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, getBySlugQuery, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("project not found", zap.String("slug", slug))
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("project repo: get slug=%s: %w", slug, err)
	}
	return p, nil
}

func (r *postgresRepo) list(ctx context.Context, op, q string, args ...any) ([]domain.ProjectRow, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("project repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.ProjectRow
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("project repo: list %s: %w", op, err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project repo: list %s: %w", op, err)
	}
	r.logger.Debug("projects listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}

func scanProject(row pgx.Row) (*domain.ProjectRow, error) {
	var (
		p                      domain.ProjectRow
		content                []byte
		services, testimonials []byte
	)
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.ClientName,
		&p.ImageURL, &content, &p.SortOrder, &p.Featured,
		&services, &testimonials,
	); err != nil {
		return nil, err
	}
	p.Content = repository.Content(content)
	if err := repository.Decode(services, &p.Services, "project_services"); err != nil {
		return nil, err
	}
	if err := repository.Decode(testimonials, &p.Testimonials, "project_testimonials"); err != nil {
		return nil, err
	}
	return &p, nil
}
