package processstep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/dbtest"
	"studio-content/internal/domain"
)

func TestListAndGet(t *testing.T) {
	pool := dbtest.Pool(t)
	icon := dbtest.InsertID(t, pool, `INSERT INTO icons (name) VALUES ('search') RETURNING id::text`)
	dbtest.Exec(t, pool, `
INSERT INTO process_steps (slug, title, sort_order, icon_id) VALUES
  ('discover', 'Discover', 1, $1),
  ('build', 'Build', 3, NULL),
  ('design', 'Design', 2, NULL)`, icon)
	repo := NewPostgres(pool, nil)
	ctx := context.Background()

	steps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, []string{"discover", "design", "build"}, []string{steps[0].Slug, steps[1].Slug, steps[2].Slug})

	got, err := repo.GetBySlug(ctx, "discover")
	require.NoError(t, err)
	require.Len(t, got.Icons, 1)
	assert.Equal(t, "search", got.Icons[0].Name)

	_, err = repo.GetBySlug(ctx, "ship")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
