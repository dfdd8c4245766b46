package ux

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/dbtest"
	"studio-content/internal/domain"
)

func TestProblemSolutionLinksAreSymmetric(t *testing.T) {
	pool := dbtest.Pool(t)
	clutter := dbtest.InsertID(t, pool, `INSERT INTO ux_problems (slug, title, sort_order) VALUES ('clutter', 'Clutter', 1) RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO ux_problems (slug, title, sort_order) VALUES ('jargon', 'Jargon', 2)`)
	simplify := dbtest.InsertID(t, pool, `INSERT INTO ux_solutions (slug, title, sort_order) VALUES ('simplify', 'Simplify', 2) RETURNING id::text`)
	group := dbtest.InsertID(t, pool, `INSERT INTO ux_solutions (slug, title, sort_order) VALUES ('group', 'Group', 1) RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO ux_problem_solutions (problem_id, solution_id) VALUES ($1, $2), ($1, $3)`, clutter, simplify, group)
	repo := NewPostgres(pool, nil)
	ctx := context.Background()

	problems, err := repo.ListProblems(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "clutter", problems[0].Slug)

	p, err := repo.GetProblemBySlug(ctx, "clutter")
	require.NoError(t, err)
	require.Len(t, p.Solutions, 2)
	assert.Equal(t, "group", p.Solutions[0].Related.Slug)
	assert.Equal(t, "simplify", p.Solutions[1].Related.Slug)

	s, err := repo.GetSolutionBySlug(ctx, "simplify")
	require.NoError(t, err)
	require.Len(t, s.Problems, 1)
	assert.Equal(t, "Clutter", s.Problems[0].Related.Title)

	solutions, err := repo.ListSolutions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "group", solutions[0].Slug)

	_, err = repo.GetSolutionBySlug(ctx, "clutter")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = repo.GetProblemBySlug(ctx, "simplify")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
