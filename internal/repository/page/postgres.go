package page

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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "page"))}
}

var getBySlugQuery = `
SELECT p.id::text, p.slug, p.title, p.page_type, p.status, p.content,
       COALESCE(p.meta_description, ''), COALESCE(p.og_image_url, ''), p.sort_order, p.published_at,
       ` + repository.LinkAgg(repository.FAQJSON("f"), "f",
	`FROM page_faqs pf LEFT JOIN faqs f ON f.id = pf.faq_id WHERE pf.page_id = p.id`,
	`f.sort_order, f.slug`) + `,
       ` + repository.LinkAgg(repository.UxItemJSON("u"), "u",
	`FROM page_ux_problems pu LEFT JOIN ux_problems u ON u.id = pu.problem_id WHERE pu.page_id = p.id`,
	`u.sort_order, u.slug`) + `,
       ` + repository.LinkAgg(repository.UxItemJSON("s"), "s",
	`FROM page_ux_solutions ps LEFT JOIN ux_solutions s ON s.id = ps.solution_id WHERE ps.page_id = p.id`,
	`s.sort_order, s.slug`) + `
FROM pages p
WHERE p.slug = $1
`

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.PageRow, error) {
	var (
		p                         domain.PageRow
		content                   []byte
		faqs, problems, solutions []byte
	)
	err := r.pool.QueryRow(ctx, getBySlugQuery, slug).Scan(
		&p.ID, &p.Slug, &p.Title, &p.PageType, &p.Status, &content,
		&p.MetaDescription, &p.OGImageURL, &p.SortOrder, &p.PublishedAt,
		&faqs, &problems, &solutions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("page not found", zap.String("slug", slug))
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("page repo: get slug=%s: %w", slug, err)
	}
	p.Content = repository.Content(content)
	if err := repository.Decode(faqs, &p.FAQs, "page_faqs"); err != nil {
		return nil, fmt.Errorf("page repo: get slug=%s: %w", slug, err)
	}
	if err := repository.Decode(problems, &p.UxProblems, "page_ux_problems"); err != nil {
		return nil, fmt.Errorf("page repo: get slug=%s: %w", slug, err)
	}
	if err := repository.Decode(solutions, &p.UxSolutions, "page_ux_solutions"); err != nil {
		return nil, fmt.Errorf("page repo: get slug=%s: %w", slug, err)
	}
	r.logger.Debug("page loaded", zap.String("slug", slug), zap.String("id", p.ID))
	return &p, nil
}

const listNavigableQuery = `
SELECT slug, title, page_type
FROM pages
WHERE status = 'PUBLISHED'
  AND page_type <> ALL($1)
ORDER BY sort_order ASC, slug ASC
`

func (r *postgresRepo) ListNavigable(ctx context.Context) ([]domain.NavigablePageInfo, error) {
	excluded := make([]string, 0, len(domain.NonNavigablePageTypes))
	for _, t := range domain.NonNavigablePageTypes {
		excluded = append(excluded, string(t))
	}
	return r.list(ctx, "navigable", listNavigableQuery, excluded)
}

const listPublishedQuery = `
SELECT slug, title, page_type
FROM pages
WHERE status = 'PUBLISHED'
ORDER BY sort_order ASC, slug ASC
`

func (r *postgresRepo) ListPublished(ctx context.Context) ([]domain.NavigablePageInfo, error) {
	return r.list(ctx, "published", listPublishedQuery)
}

func (r *postgresRepo) list(ctx context.Context, op, q string, args ...any) ([]domain.NavigablePageInfo, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("page repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.NavigablePageInfo
	for rows.Next() {
		var p domain.NavigablePageInfo
		if err := rows.Scan(&p.Slug, &p.Title, &p.PageType); err != nil {
			return nil, fmt.Errorf("page repo: list %s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("page repo: list %s: %w", op, err)
	}
	r.logger.Debug("pages listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}
