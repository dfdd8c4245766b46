package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/domain"
)

var threePages = []domain.NavigablePageInfo{
	{Slug: "home", Title: "Home", PageType: domain.PageTypeMain},
	{Slug: "about", Title: "About", PageType: domain.PageTypeMarketing},
	{Slug: "contact", Title: "Contact", PageType: domain.PageTypeContentHub},
}

func TestPageNeighbors_Middle(t *testing.T) {
	links := PageNeighbors(threePages, "about")
	require.NotNil(t, links.Previous)
	require.NotNil(t, links.Next)
	assert.Equal(t, domain.NavLinkInfo{Slug: "home", Title: "Home", CategoryLabel: "Main"}, *links.Previous)
	assert.Equal(t, domain.NavLinkInfo{Slug: "contact", Title: "Contact", CategoryLabel: "Content Hub"}, *links.Next)
}

func TestPageNeighbors_Boundaries(t *testing.T) {
	first := PageNeighbors(threePages, "home")
	assert.Nil(t, first.Previous)
	require.NotNil(t, first.Next)
	assert.Equal(t, "about", first.Next.Slug)

	last := PageNeighbors(threePages, "contact")
	require.NotNil(t, last.Previous)
	assert.Equal(t, "about", last.Previous.Slug)
	assert.Nil(t, last.Next)

	missing := PageNeighbors(threePages, "nowhere")
	assert.Nil(t, missing.Previous)
	assert.Nil(t, missing.Next)

	none := PageNeighbors(nil, "home")
	assert.Nil(t, none.Previous)
	assert.Nil(t, none.Next)
}

func TestPageNeighbors_SingleItem(t *testing.T) {
	links := PageNeighbors(threePages[:1], "home")
	assert.Nil(t, links.Previous)
	assert.Nil(t, links.Next)
}

func TestPageNeighbors_Idempotent(t *testing.T) {
	a := PageNeighbors(threePages, "about")
	b := PageNeighbors(threePages, "about")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("repeated resolution differs (-first +second):\n%s", diff)
	}
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	items := []Sibling{{Slug: "a", Title: "A"}, {Slug: "b", Title: "B"}}
	_, next := Resolve(items, "a", slugOf)
	require.NotNil(t, next)
	next.Title = "changed"
	assert.Equal(t, "B", items[1].Title)
}

func TestNeighbors_StaticLabels(t *testing.T) {
	items := []Sibling{{Slug: "design", Title: "Design"}, {Slug: "build", Title: "Build"}, {Slug: "launch", Title: "Launch"}}
	links := Neighbors(items, "build", Services)
	require.NotNil(t, links.Previous)
	require.NotNil(t, links.Next)
	assert.Equal(t, "Previous Service", links.Previous.CategoryLabel)
	assert.Equal(t, "design", links.Previous.Slug)
	assert.Equal(t, "Next Service", links.Next.CategoryLabel)
	assert.Equal(t, "launch", links.Next.Slug)
}

func TestPostNeighbors_InvertsDirection(t *testing.T) {
	newestFirst := []Sibling{{Slug: "newest", Title: "Newest"}, {Slug: "middle", Title: "Middle"}, {Slug: "oldest", Title: "Oldest"}}

	links := PostNeighbors(newestFirst, "middle")
	require.NotNil(t, links.Previous)
	require.NotNil(t, links.Next)
	assert.Equal(t, domain.NavLinkInfo{Slug: "oldest", Title: "Oldest", CategoryLabel: "Older Post"}, *links.Previous)
	assert.Equal(t, domain.NavLinkInfo{Slug: "newest", Title: "Newest", CategoryLabel: "Newer Post"}, *links.Next)

	newest := PostNeighbors(newestFirst, "newest")
	assert.Nil(t, newest.Next)
	require.NotNil(t, newest.Previous)
	assert.Equal(t, "middle", newest.Previous.Slug)

	oldest := PostNeighbors(newestFirst, "oldest")
	assert.Nil(t, oldest.Previous)
	require.NotNil(t, oldest.Next)
	assert.Equal(t, "middle", oldest.Next.Slug)
}

func TestCategoryLabel(t *testing.T) {
	cases := map[domain.PageType]string{
		domain.PageTypeMain:       "Main",
		domain.PageTypeResources:  "Resources",
		domain.PageTypeProduct:    "Product",
		domain.PageTypeContentHub: "Content Hub",
		domain.PageType("NEW"):    "Page",
	}
	for in, want := range cases {
		assert.Equal(t, want, CategoryLabel(in), string(in))
	}
}
