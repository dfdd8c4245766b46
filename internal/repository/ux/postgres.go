package ux

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
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger).With(zap.String("repo", "ux"))}
}

// table describes one side of the problem/solution relation.
type table struct {
	name      string
	ownCol    string
	otherName string
	otherCol  string
}

var (
	problems  = table{name: "ux_problems", ownCol: "problem_id", otherName: "ux_solutions", otherCol: "solution_id"}
	solutions = table{name: "ux_solutions", ownCol: "solution_id", otherName: "ux_problems", otherCol: "problem_id"}
)

func (t table) selectItem() string {
	return `
SELECT x.id::text, x.slug, x.title, COALESCE(x.description, ''), x.content,
       x.sort_order, x.featured, ` + repository.IconsJSON("x") + `
FROM ` + t.name + ` x
`
}

func (t table) listQuery() string {
	return t.selectItem() + `ORDER BY x.sort_order ASC, x.slug ASC`
}

func (t table) detailQuery() string {
	return `
SELECT x.id::text, x.slug, x.title, COALESCE(x.description, ''), x.content,
       x.sort_order, x.featured, ` + repository.IconsJSON("x") + `,
       ` + repository.LinkAgg(repository.UxItemJSON("o"), "o",
		`FROM ux_problem_solutions j LEFT JOIN `+t.otherName+` o ON o.id = j.`+t.otherCol+` WHERE j.`+t.ownCol+` = x.id`,
		`o.sort_order, o.slug`) + `
FROM ` + t.name + ` x
WHERE x.slug = $1
`
}

var (
	listProblemsQuery   = problems.listQuery()
	problemDetailQuery  = problems.detailQuery()
	listSolutionsQuery  = solutions.listQuery()
	solutionDetailQuery = solutions.detailQuery()
)

func (r *postgresRepo) ListProblems(ctx context.Context) ([]domain.UxProblemRow, error) {
	items, err := r.listItems(ctx, "problems", listProblemsQuery)
	if err != nil {
		return nil, err
	}
	result := make([]domain.UxProblemRow, 0, len(items))
	for _, it := range items {
		result = append(result, domain.UxProblemRow{UxItemRow: it})
	}
	return result, nil
}

func (r *postgresRepo) ListSolutions(ctx context.Context) ([]domain.UxSolutionRow, error) {
	items, err := r.listItems(ctx, "solutions", listSolutionsQuery)
	if err != nil {
		return nil, err
	}
	result := make([]domain.UxSolutionRow, 0, len(items))
	for _, it := range items {
		result = append(result, domain.UxSolutionRow{UxItemRow: it})
	}
	return result, nil
}

func (r *postgresRepo) GetProblemBySlug(ctx context.Context, slug string) (*domain.UxProblemRow, error) {
	item, related, err := r.getDetail(ctx, "problem", problemDetailQuery, slug)
	if err != nil {
		return nil, err
	}
	return &domain.UxProblemRow{UxItemRow: *item, Solutions: related}, nil
}

func (r *postgresRepo) GetSolutionBySlug(ctx context.Context, slug string) (*domain.UxSolutionRow, error) {
	item, related, err := r.getDetail(ctx, "solution", solutionDetailQuery, slug)
	if err != nil {
		return nil, err
	}
	return &domain.UxSolutionRow{UxItemRow: *item, Problems: related}, nil
}

func (r *postgresRepo) listItems(ctx context.Context, op, q string) ([]domain.UxItemRow, error) {
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("ux repo: list %s: %w", op, err)
	}
	defer rows.Close()

	var result []domain.UxItemRow
	for rows.Next() {
		var (
			it      domain.UxItemRow
			content []byte
			icons   []byte
		)
		if err := rows.Scan(&it.ID, &it.Slug, &it.Title, &it.Description, &content,
			&it.SortOrder, &it.Featured, &icons); err != nil {
			return nil, fmt.Errorf("ux repo: list %s: %w", op, err)
		}
		it.Content = repository.Content(content)
		if err := repository.Decode(icons, &it.Icons, "icons"); err != nil {
			return nil, fmt.Errorf("ux repo: list %s: %w", op, err)
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ux repo: list %s: %w", op, err)
	}
	r.logger.Debug("ux items listed", zap.String("op", op), zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) getDetail(ctx context.Context, op, q, slug string) (*domain.UxItemRow, domain.Many[domain.Link[domain.UxItemRow]], error) {
	var (
		it             domain.UxItemRow
		content        []byte
		icons, related []byte
		links          domain.Many[domain.Link[domain.UxItemRow]]
	)
	err := r.pool.QueryRow(ctx, q, slug).Scan(&it.ID, &it.Slug, &it.Title, &it.Description, &content,
		&it.SortOrder, &it.Featured, &icons, &related)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("ux item not found", zap.String("op", op), zap.String("slug", slug))
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("ux repo: get %s slug=%s: %w", op, slug, err)
	}
	it.Content = repository.Content(content)
	if err := repository.Decode(icons, &it.Icons, "icons"); err != nil {
		return nil, nil, fmt.Errorf("ux repo: get %s slug=%s: %w", op, slug, err)
	}
	if err := repository.Decode(related, &links, "ux_problem_solutions"); err != nil {
		return nil, nil, fmt.Errorf("ux repo: get %s slug=%s: %w", op, slug, err)
	}
	return &it, links, nil
}
