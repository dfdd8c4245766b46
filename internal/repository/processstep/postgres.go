package processstep

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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "process_step"))}
}

var selectStep = `
SELECT ps.id::text, ps.slug, ps.title, COALESCE(ps.description, ''), ps.content,
       ps.sort_order, ps.featured, ` + repository.IconsJSON("ps") + `
FROM process_steps ps
`

var (
	listQuery      = selectStep + `ORDER BY ps.sort_order ASC, ps.slug ASC`
	getBySlugQuery = selectStep + `WHERE ps.slug = $1`
)

func (r *postgresRepo) List(ctx context.Context) ([]domain.ProcessStepRow, error) {
	rows, err := r.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("process step repo: list: %w", err)
	}
	defer rows.Close()

	var result []domain.ProcessStepRow
	for rows.Next() {
		s, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("process step repo: list: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("process step repo: list: %w", err)
	}
	r.logger.Debug("process steps listed", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.ProcessStepRow, error) {
	s, err := scanStep(r.pool.QueryRow(ctx, getBySlugQuery, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("process step repo: get slug=%s: %w", slug, err)
	}
	return s, nil
}

func scanStep(row pgx.Row) (*domain.ProcessStepRow, error) {
	var (
		s       domain.ProcessStepRow
		content []byte
		icons   []byte
	)
	if err := row.Scan(&s.ID, &s.Slug, &s.Title, &s.Description, &content,
		&s.SortOrder, &s.Featured, &icons); err != nil {
		return nil, err
	}
	s.Content = repository.Content(content)
	if err := repository.Decode(icons, &s.Icons, "icons"); err != nil {
		return nil, err
	}
	return &s, nil
}
