package post

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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "post"))}
}

const selectPost = `
SELECT p.id::text, p.slug, p.title, COALESCE(p.excerpt, ''), COALESCE(p.cover_image_url, ''),
       p.content, p.status, p.featured, p.sort_order, p.published_at,
       COALESCE((SELECT json_agg(json_build_object('name', tg.name, 'slug', tg.slug) ORDER BY tg.name)
                 FROM post_tags pt JOIN tags tg ON tg.id = pt.tag_id
                 WHERE pt.post_id = p.id), '[]'::json)
FROM posts p
`

// Newest first; undated published posts sink to the end.
const orderPosts = ` ORDER BY p.published_at DESC NULLS LAST, p.sort_order ASC, p.slug ASC`

const (
	listPublishedQuery = selectPost + `WHERE p.status = 'PUBLISHED'` + orderPosts + ` LIMIT $1`
	listByTagQuery     = selectPost + `WHERE p.status = 'PUBLISHED'
  AND EXISTS (SELECT 1 FROM post_tags pt JOIN tags tg ON tg.id = pt.tag_id WHERE pt.post_id = p.id AND tg.slug = $1)` +
		orderPosts + ` LIMIT $2`
	getBySlugQuery = selectPost + `WHERE p.status = 'PUBLISHED' AND p.slug = $1`
)

func (r *postgresRepo) ListPublished(ctx context.Context, limit int) ([]domain.PostRow, error) {
	return r.list(ctx, "published", listPublishedQuery, repository.Limit(limit))
}

func (r *postgresRepo) ListByTag(ctx context.Context, tagSlug string, limit int) ([]domain.PostRow, error) {
	return r.list(ctx, "by_tag", listByTagQuery, tagSlug, repository.Limit(limit))
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.PostRow, error) {
	p, err := scanPost(r.pool.QueryRow(ctx, getBySlugQuery, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("post not found", zap.String("slug", slug))
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("post repo: get slug=%s: %w", slug, err)
	}
	return p, nil
}

func (r *postgresRepo) list(ctx context.Context, op, q string, args ...any) ([]domain.PostRow, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("post repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.PostRow
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("post repo: list %s: %w", op, err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post repo: list %s: %w", op, err)
	}
	r.logger.Debug("posts listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}

func scanPost(row pgx.Row) (*domain.PostRow, error) {
	var (
		p       domain.PostRow
		content []byte
		tags    []byte
	)
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.CoverImageURL,
		&content, &p.Status, &p.Featured, &p.SortOrder, &p.PublishedAt, &tags); err != nil {
		return nil, err
	}
	p.Content = repository.Content(content)
	if err := repository.Decode(tags, &p.Tags, "tags"); err != nil {
		return nil, err
	}
	return &p, nil
}
