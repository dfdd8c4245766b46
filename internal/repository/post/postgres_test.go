package post

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/dbtest"
	"studio-content/internal/domain"
)

func TestListPublished_NewestFirst(t *testing.T) {
	pool := dbtest.Pool(t)
	dbtest.Exec(t, pool, `
INSERT INTO posts (slug, title, status, published_at, content) VALUES
  ('old', 'Old', 'PUBLISHED', '2026-01-01T00:00:00Z', '{"blocks":[{"type":"paragraph","data":{"text":"hi"}}]}'),
  ('new', 'New', 'PUBLISHED', '2026-03-01T00:00:00Z', NULL),
  ('mid', 'Mid', 'PUBLISHED', '2026-02-01T00:00:00Z', NULL),
  ('draft', 'Draft', 'DRAFT', '2026-04-01T00:00:00Z', NULL)`)
	repo := NewPostgres(pool, nil)
	ctx := context.Background()

	all, err := repo.ListPublished(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})

	two, err := repo.ListPublished(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)

	_, err = repo.GetBySlug(ctx, "draft")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	old, err := repo.GetBySlug(ctx, "old")
	require.NoError(t, err)
	doc, err := domain.ParseBlockDocument(old.Content)
	require.NoError(t, err)
	assert.Len(t, doc.Blocks, 1)
}

func TestListByTag(t *testing.T) {
	pool := dbtest.Pool(t)
	goTag := dbtest.InsertID(t, pool, `INSERT INTO tags (name, slug) VALUES ('Go', 'go') RETURNING id::text`)
	uxTag := dbtest.InsertID(t, pool, `INSERT INTO tags (name, slug) VALUES ('UX', 'ux') RETURNING id::text`)
	a := dbtest.InsertID(t, pool, `INSERT INTO posts (slug, title, status, published_at) VALUES ('a', 'A', 'PUBLISHED', '2026-01-02T00:00:00Z') RETURNING id::text`)
	b := dbtest.InsertID(t, pool, `INSERT INTO posts (slug, title, status, published_at) VALUES ('b', 'B', 'PUBLISHED', '2026-01-03T00:00:00Z') RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $3), ($1, $4), ($2, $4)`, a, b, goTag, uxTag)

	got, err := NewPostgres(pool, nil).ListByTag(context.Background(), "go", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Slug)
	assert.Equal(t, domain.Many[domain.Tag]{{Name: "Go", Slug: "go"}, {Name: "UX", Slug: "ux"}}, got[0].Tags)
}
