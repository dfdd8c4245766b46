package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/dbtest"
	"studio-content/internal/domain"
)

func TestListByOfferingAndFeatured(t *testing.T) {
	pool := dbtest.Pool(t)
	dbtest.Exec(t, pool, `
INSERT INTO services (slug, title, offering_type, featured, sort_order) VALUES
  ('audit', 'Audit', 'INDIVIDUAL', false, 2),
  ('design', 'Design', 'INDIVIDUAL', true, 1),
  ('launch', 'Launch', 'BUNDLE', true, 3)`)
	repo := NewPostgres(pool, nil)
	ctx := context.Background()

	bundles, err := repo.ListByOffering(ctx, domain.OfferingBundle)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "launch", bundles[0].Slug)

	featured, err := repo.ListFeatured(ctx, 1)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "design", featured[0].Slug)

	none, err := repo.ListFeatured(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"design", "audit", "launch"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})
	assert.Empty(t, all[0].Icons)
}

func TestGetBySlug_RelatedProjectsAndTestimonials(t *testing.T) {
	pool := dbtest.Pool(t)
	svc := dbtest.InsertID(t, pool, `INSERT INTO services (slug, title) VALUES ('design', 'Design') RETURNING id::text`)
	p1 := dbtest.InsertID(t, pool, `INSERT INTO projects (slug, title, sort_order) VALUES ('second', 'Second', 2) RETURNING id::text`)
	p2 := dbtest.InsertID(t, pool, `INSERT INTO projects (slug, title, sort_order) VALUES ('first', 'First', 1) RETURNING id::text`)
	tm := dbtest.InsertID(t, pool, `INSERT INTO testimonials (quote, author_name) VALUES ('Superb', 'Sam') RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO project_services (project_id, service_id) VALUES ($1, $3), ($2, $3)`, p1, p2, svc)
	dbtest.Exec(t, pool, `INSERT INTO testimonial_services (testimonial_id, service_id) VALUES ($1, $2)`, tm, svc)

	row, err := NewPostgres(pool, nil).GetBySlug(context.Background(), "design")
	require.NoError(t, err)
	assert.Equal(t, domain.OfferingIndividual, row.OfferingType)
	require.Len(t, row.Projects, 2)
	assert.Equal(t, "first", row.Projects[0].Related.Slug)
	require.Len(t, row.Testimonials, 1)
	assert.Equal(t, "Sam", row.Testimonials[0].Related.AuthorName)

	_, err = NewPostgres(pool, nil).GetBySlug(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
