package faq

import (
	"context"
	"fmt"

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
	return newPostgres(pool, logger)
}

func NewPostgresWriter(pool *pgxpool.Pool, logger *zap.Logger) Writer {
	return newPostgres(pool, logger)
}

func newPostgres(pool *pgxpool.Pool, logger *zap.Logger) *postgresRepo {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "faq"))}
}

var listCategoriesQuery = `
SELECT c.id::text, c.name, c.slug, c.sort_order,
       COALESCE((SELECT json_agg(` + repository.FAQJSON("f") + ` ORDER BY f.sort_order, f.slug)
                 FROM faqs f WHERE f.category_id = c.id), '[]'::json)
FROM faq_categories c
ORDER BY c.sort_order ASC, c.slug ASC
`

const listByPageQuery = `
SELECT f.id::text, f.slug, f.question, f.answer, f.sort_order, f.featured
FROM faqs f
JOIN page_faqs pf ON pf.faq_id = f.id
JOIN pages p ON p.id = pf.page_id
WHERE p.slug = $1
ORDER BY f.sort_order ASC, f.slug ASC
`

func (r *postgresRepo) ListCategoriesWithItems(ctx context.Context) ([]domain.FAQCategoryRow, error) {
	rows, err := r.pool.Query(ctx, listCategoriesQuery)
	if err != nil {
		return nil, fmt.Errorf("faq repo: list categories: %w", err)
	}
	defer rows.Close()

	var result []domain.FAQCategoryRow
	for rows.Next() {
		var (
			c    domain.FAQCategoryRow
			faqs []byte
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder, &faqs); err != nil {
			return nil, fmt.Errorf("faq repo: list categories: %w", err)
		}
		if err := repository.Decode(faqs, &c.FAQs, "faqs"); err != nil {
			return nil, fmt.Errorf("faq repo: list categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("faq repo: list categories: %w", err)
	}
	r.logger.Debug("faq categories listed", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) ListByPage(ctx context.Context, pageSlug string) ([]domain.FAQRow, error) {
	rows, err := r.pool.Query(ctx, listByPageQuery, pageSlug)
	if err != nil {
		return nil, fmt.Errorf("faq repo: list by page=%s: %w", pageSlug, err)
	}
	defer rows.Close()

	var result []domain.FAQRow
	for rows.Next() {
		var (
			f      domain.FAQRow
			answer []byte
		)
		if err := rows.Scan(&f.ID, &f.Slug, &f.Question, &answer, &f.SortOrder, &f.Featured); err != nil {
			return nil, fmt.Errorf("faq repo: list by page=%s: %w", pageSlug, err)
		}
		f.Answer = repository.Content(answer)
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("faq repo: list by page=%s: %w", pageSlug, err)
	}
	return result, nil
}

const upsertCategoryQuery = `
INSERT INTO faq_categories (name, slug, sort_order)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    sort_order = EXCLUDED.sort_order
RETURNING id::text
`

const upsertFAQQuery = `
INSERT INTO faqs (category_id, slug, question, answer, sort_order, featured)
VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET category_id = EXCLUDED.category_id,
    question = EXCLUDED.question,
    answer = EXCLUDED.answer,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured
`

func (r *postgresRepo) UpsertCategory(ctx context.Context, c domain.FAQCategoryRow) (string, error) {
	var id string
	if err := r.pool.QueryRow(ctx, upsertCategoryQuery, c.Name, c.Slug, c.SortOrder).Scan(&id); err != nil {
		return "", fmt.Errorf("faq repo: upsert category slug=%s: %w", c.Slug, err)
	}
	return id, nil
}

func (r *postgresRepo) UpsertFAQ(ctx context.Context, categoryID string, f domain.FAQRow) error {
	var answer any
	if len(f.Answer) > 0 {
		answer = string(f.Answer)
	}
	if _, err := r.pool.Exec(ctx, upsertFAQQuery, categoryID, f.Slug, f.Question, answer, f.SortOrder, f.Featured); err != nil {
		return fmt.Errorf("faq repo: upsert faq slug=%s: %w", f.Slug, err)
	}
	r.logger.Debug("faq upserted", zap.String("slug", f.Slug))
	return nil
}
