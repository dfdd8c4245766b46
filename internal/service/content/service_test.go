package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"studio-content/internal/domain"
)

func observed(t *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func project(slug string, featured bool) domain.ProjectRow {
	return domain.ProjectRow{ID: "id-" + slug, Slug: slug, Title: "Project " + slug, Featured: featured}
}

func TestGetProjectBySlugUnknownReturnsNil(t *testing.T) {
	logger, logs := observed(t)
	repos := emptyRepos()
	repos.Projects = &stubProjects{rows: []domain.ProjectRow{project("alpha", false)}}
	svc := New(repos, Options{}, logger)

	assert.Nil(t, svc.GetProjectBySlug(context.Background(), "missing"))
	assert.Equal(t, 1, logs.FilterMessage("content not found").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	got := svc.GetProjectBySlug(context.Background(), "alpha")
	require.NotNil(t, got)
	assert.Equal(t, "Project alpha", got.Title)
	assert.Nil(t, got.Services)
	assert.Nil(t, got.Testimonial)
}

func TestGetFeaturedProjectsRespectsFlagAndLimit(t *testing.T) {
	repos := emptyRepos()
	repos.Projects = &stubProjects{rows: []domain.ProjectRow{
		project("a", true), project("b", false), project("c", true), project("d", true),
	}}
	svc := New(repos, Options{}, nil)

	all := map[string]bool{}
	for _, p := range svc.GetAllProjects(context.Background()) {
		all[p.ID] = true
	}
	for _, n := range []int{-1, 0, 1, 2, 3, 10} {
		got := svc.GetFeaturedProjects(context.Background(), n)
		assert.NotNil(t, got)
		assert.LessOrEqual(t, len(got), max(n, 0))
		for _, p := range got {
			assert.True(t, p.Featured, "limit %d returned non-featured %q", n, p.Slug)
			assert.True(t, all[p.ID], "limit %d returned %q outside the full list", n, p.ID)
		}
	}
	assert.Len(t, svc.GetFeaturedProjects(context.Background(), 2), 2)
	assert.Len(t, svc.GetFeaturedProjects(context.Background(), 10), 3)
}

func TestFeaturedListsAreEmptyForNonPositiveLimit(t *testing.T) {
	repos := emptyRepos()
	repos.Services = &stubServices{rows: []domain.ServiceRow{{ID: "s1", Slug: "s1", Featured: true}}}
	repos.Testimonials = &stubTestimonials{rows: []domain.TestimonialRow{{ID: "t1", Featured: true}}}
	svc := New(repos, Options{}, nil)
	ctx := context.Background()

	assert.Empty(t, svc.GetFeaturedServices(ctx, 0))
	assert.NotNil(t, svc.GetFeaturedServices(ctx, 0))
	assert.Empty(t, svc.GetFeaturedTestimonials(ctx, 0))
	assert.Len(t, svc.GetFeaturedServices(ctx, 1), 1)
	assert.Len(t, svc.GetFeaturedTestimonials(ctx, 1), 1)
}

func TestFailingBackendDegradesToEmpty(t *testing.T) {
	logger, logs := observed(t)
	svc := New(failingRepos(errors.New("connection refused")), Options{}, logger)
	ctx := context.Background()

	assert.Nil(t, svc.GetPageBySlug(ctx, "home"))
	assert.Nil(t, svc.GetProjectBySlug(ctx, "x"))
	assert.Nil(t, svc.GetServiceBySlug(ctx, "x"))
	assert.Nil(t, svc.GetPostBySlug(ctx, "x"))
	assert.Nil(t, svc.GetProcessStepBySlug(ctx, "x"))
	assert.Nil(t, svc.GetUxProblemBySlug(ctx, "x"))
	assert.Nil(t, svc.GetUxSolutionBySlug(ctx, "x"))

	lists := map[string]int{
		"navigable":           len(svc.GetNavigablePages(ctx)),
		"published":           len(svc.GetPublishedPages(ctx)),
		"projects":            len(svc.GetAllProjects(ctx)),
		"featuredProjects":    len(svc.GetFeaturedProjects(ctx, 3)),
		"services":            len(svc.GetAllServices(ctx)),
		"featuredServices":    len(svc.GetFeaturedServices(ctx, 3)),
		"offering":            len(svc.GetServicesByOffering(ctx, domain.OfferingBundle)),
		"posts":               len(svc.GetAllPublishedPosts(ctx, 0)),
		"postsByTag":          len(svc.GetPostsByTag(ctx, "go", 0)),
		"faqs":                len(svc.GetFAQsGroupedByCategory(ctx)),
		"faqsForPage":         len(svc.GetFAQsForPage(ctx, "home")),
		"steps":               len(svc.GetAllProcessSteps(ctx)),
		"uxProblems":          len(svc.GetAllUxProblems(ctx)),
		"uxSolutions":         len(svc.GetAllUxSolutions(ctx)),
		"testimonials":        len(svc.GetAllTestimonials(ctx)),
		"featuredTestimonial": len(svc.GetFeaturedTestimonials(ctx, 3)),
		"byService":           len(svc.GetTestimonialsByService(ctx, "x")),
	}
	for name, n := range lists {
		assert.Zero(t, n, name)
	}
	assert.NotNil(t, svc.GetAllProjects(ctx))
	assert.NotNil(t, svc.GetNavigablePages(ctx))

	failures := logs.FilterMessage("content fetch failed")
	assert.GreaterOrEqual(t, failures.Len(), 7+len(lists))
	assert.Equal(t, 1, failures.FilterField(zap.String("op", "GetPageBySlug")).Len())
}

func TestGetServicesByOfferingRejectsUnknownType(t *testing.T) {
	services := &stubServices{rows: []domain.ServiceRow{
		{ID: "1", Slug: "audit", OfferingType: domain.OfferingIndividual},
		{ID: "2", Slug: "retainer", OfferingType: domain.OfferingBundle},
	}}
	repos := emptyRepos()
	repos.Services = services
	svc := New(repos, Options{}, nil)

	got := svc.GetServicesByOffering(context.Background(), domain.OfferingType("SUBSCRIPTION"))
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Empty(t, services.offeringSeen)

	got = svc.GetServicesByOffering(context.Background(), domain.OfferingBundle)
	require.Len(t, got, 1)
	assert.Equal(t, "retainer", got[0].Slug)
}

func TestGetFAQsGroupedByCategoryDropsEmpty(t *testing.T) {
	repos := emptyRepos()
	repos.FAQs = &stubFAQs{categories: []domain.FAQCategoryRow{
		{ID: "c1", Name: "General", Slug: "general", FAQs: domain.Many[domain.FAQRow]{{ID: "f1", Slug: "what", Question: "What?"}}},
		{ID: "c2", Name: "Empty", Slug: "empty"},
	}}
	svc := New(repos, Options{}, nil)

	got := svc.GetFAQsGroupedByCategory(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "general", got[0].Slug)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "What?", got[0].Items[0].Question)
}

func TestGetPostsByTag(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repos := emptyRepos()
	repos.Posts = &stubPosts{rows: []domain.PostRow{
		{ID: "1", Slug: "newest", PublishedAt: &now, Tags: domain.Many[domain.Tag]{{Name: "Go", Slug: "go"}}},
		{ID: "2", Slug: "middle"},
		{ID: "3", Slug: "oldest", Tags: domain.Many[domain.Tag]{{Name: "Go", Slug: "go"}}},
	}}
	svc := New(repos, Options{}, nil)

	got := svc.GetPostsByTag(context.Background(), "go", 0)
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].Slug)
	assert.Equal(t, "oldest", got[1].Slug)
	assert.Len(t, svc.GetPostsByTag(context.Background(), "go", 1), 1)
}
