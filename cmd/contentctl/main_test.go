package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-content/internal/domain"
	"studio-content/internal/service/content"
)

type stubReader struct {
	pages   []domain.NavigablePageInfo
	posts   []domain.PostCardItem
	lastTag string
}

func (s *stubReader) GetNavigablePages(context.Context) []domain.NavigablePageInfo { return s.pages }

func (s *stubReader) GetAllPublishedPosts(_ context.Context, limit int) []domain.PostCardItem {
	if limit > 0 && limit < len(s.posts) {
		return s.posts[:limit]
	}
	return s.posts
}

func (s *stubReader) GetPostsByTag(_ context.Context, tag string, _ int) []domain.PostCardItem {
	s.lastTag = tag
	return s.posts[:1]
}

func (s *stubReader) PageView(_ context.Context, slug string) *content.PageView {
	for _, p := range s.pages {
		if p.Slug == slug {
			return &content.PageView{Page: &domain.PageData{Slug: p.Slug, Title: p.Title}}
		}
	}
	return nil
}

type stubBackend struct {
	r      *stubReader
	opened bool
}

func (b *stubBackend) Open(context.Context) (reader, error) {
	b.opened = true
	return b.r, nil
}

func (b *stubBackend) SchemaVersion(context.Context) (uint, bool, error) { return 1, false, nil }

func run(t *testing.T, b backend, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(b)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testBackend() *stubBackend {
	published := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	return &stubBackend{r: &stubReader{
		pages: []domain.NavigablePageInfo{
			{Slug: "home", Title: "Home", PageType: domain.PageTypeMain},
			{Slug: "about", Title: "About", PageType: domain.PageTypeMain},
			{Slug: "contact", Title: "Contact", PageType: domain.PageTypeMarketing},
		},
		posts: []domain.PostCardItem{
			{Slug: "shipping-small", Title: "Shipping small", PublishedAt: &published},
			{Slug: "draft-ish", Title: "Undated"},
		},
	}}
}

func TestHrefRunsOffline(t *testing.T) {
	b := testBackend()
	out, err := run(t, b, "href", "/blog/", "my-post")
	require.NoError(t, err)
	assert.Equal(t, "/blog/my-post\n", out)
	assert.False(t, b.opened)
}

func TestNavCommand(t *testing.T) {
	out, err := run(t, testBackend(), "nav", "about")
	require.NoError(t, err)
	assert.Contains(t, out, "previous  Home (Main) /home")
	assert.Contains(t, out, "next      Contact (Marketing) /contact")

	out, err = run(t, testBackend(), "nav", "home")
	require.NoError(t, err)
	assert.Contains(t, out, "previous  none")
}

func TestPagesCommand(t *testing.T) {
	out, err := run(t, testBackend(), "pages")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "home"))
	assert.Contains(t, lines[3], "Marketing")
}

func TestPageCommand(t *testing.T) {
	out, err := run(t, testBackend(), "page", "about")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "About"`)

	_, err = run(t, testBackend(), "page", "missing")
	require.Error(t, err)
}

func TestPostsCommand(t *testing.T) {
	out, err := run(t, testBackend(), "posts", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-04-15")
	assert.NotContains(t, out, "draft-ish")

	b := testBackend()
	_, err = run(t, b, "posts", "--tag", "engineering")
	require.NoError(t, err)
	assert.Equal(t, "engineering", b.r.lastTag)
}

func TestSchemaVersionCommand(t *testing.T) {
	out, err := run(t, testBackend(), "schema-version")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}
