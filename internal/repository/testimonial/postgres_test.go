package testimonial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/dbtest"
)

func TestListings(t *testing.T) {
	pool := dbtest.Pool(t)
	maria := dbtest.InsertID(t, pool, `INSERT INTO testimonials (quote, author_name, featured, sort_order) VALUES ('A', 'Maria', true, 2) RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO testimonials (quote, author_name, featured, sort_order, company) VALUES ('B', 'Sam', true, 1, 'Northwind')`)
	dbtest.Exec(t, pool, `INSERT INTO testimonials (quote, author_name, sort_order) VALUES ('C', 'Ada', 0)`)
	svc := dbtest.InsertID(t, pool, `INSERT INTO services (slug, title) VALUES ('design', 'Design') RETURNING id::text`)
	dbtest.Exec(t, pool, `INSERT INTO testimonial_services (testimonial_id, service_id) VALUES ($1, $2)`, maria, svc)
	repo := NewPostgres(pool, nil)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Ada", "Sam", "Maria"}, []string{all[0].AuthorName, all[1].AuthorName, all[2].AuthorName})
	assert.Equal(t, "Northwind", all[1].Company)

	featured, err := repo.ListFeatured(ctx, 1)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Sam", featured[0].AuthorName)

	none, err := repo.ListFeatured(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	byService, err := repo.ListByService(ctx, "design")
	require.NoError(t, err)
	require.Len(t, byService, 1)
	assert.Equal(t, maria, byService[0].ID)

	none, err = repo.ListByService(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}
