package content

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"studio-content/internal/domain"
	"studio-content/internal/nav"
)

// Each view fans its reads out concurrently. The getters above never
// fail and section recovers panics, so one broken section leaves the
// others intact and the group never cancels.

type PageView struct {
	Page *domain.PageData `json:"page"`
	Nav  domain.NavLinks  `json:"nav"`
}

type HomeView struct {
	Page             *domain.PageData         `json:"page"`
	FeaturedProjects []domain.ProjectCardItem `json:"featuredProjects"`
	FeaturedServices []domain.ServiceCardItem `json:"featuredServices"`
	Testimonials     []domain.TestimonialItem `json:"testimonials"`
	RecentPosts      []domain.PostCardItem    `json:"recentPosts"`
	ProcessSteps     []domain.ProcessStepItem `json:"processSteps"`
	Nav              domain.NavLinks          `json:"nav"`
}

type ProjectView struct {
	Project *domain.ProjectDetail `json:"project"`
	Nav     domain.NavLinks       `json:"nav"`
}

type ServiceView struct {
	Service *domain.ServiceData `json:"service"`
	Nav     domain.NavLinks     `json:"nav"`
}

type PostView struct {
	Post *domain.PostDetail `json:"post"`
	Nav  domain.NavLinks    `json:"nav"`
}

type ProcessStepView struct {
	Step *domain.ProcessStepItem `json:"step"`
	Nav  domain.NavLinks         `json:"nav"`
}

type UxProblemView struct {
	Problem *domain.UxProblemDetail `json:"problem"`
	Nav     domain.NavLinks         `json:"nav"`
}

type UxSolutionView struct {
	Solution *domain.UxSolutionDetail `json:"solution"`
	Nav      domain.NavLinks          `json:"nav"`
}

// PageView returns nil when the page does not resolve.
func (s *Service) PageView(ctx context.Context, slug string) *PageView {
	var (
		g     errgroup.Group
		page  *domain.PageData
		pages []domain.NavigablePageInfo
	)
	g.Go(s.section("GetPageBySlug", func() { page = s.GetPageBySlug(ctx, slug) }))
	g.Go(s.section("GetNavigablePages", func() { pages = s.GetNavigablePages(ctx) }))
	_ = g.Wait()

	if page == nil {
		return nil
	}
	return &PageView{Page: page, Nav: nav.PageNeighbors(pages, slug)}
}

// HomeView always returns a view; a missing home page leaves Page nil
// while the listing sections still render.
func (s *Service) HomeView(ctx context.Context) *HomeView {
	var (
		g     errgroup.Group
		v     HomeView
		pages []domain.NavigablePageInfo
	)
	g.Go(s.section("GetPageBySlug", func() { v.Page = s.GetPageBySlug(ctx, s.opts.HomeSlug) }))
	g.Go(s.section("GetFeaturedProjects", func() { v.FeaturedProjects = s.GetFeaturedProjects(ctx, s.opts.FeaturedLimit) }))
	g.Go(s.section("GetFeaturedServices", func() { v.FeaturedServices = s.GetFeaturedServices(ctx, s.opts.FeaturedLimit) }))
	g.Go(s.section("GetFeaturedTestimonials", func() { v.Testimonials = s.GetFeaturedTestimonials(ctx, s.opts.FeaturedLimit) }))
	g.Go(s.section("GetAllPublishedPosts", func() { v.RecentPosts = s.GetAllPublishedPosts(ctx, s.opts.PostsLimit) }))
	g.Go(s.section("GetAllProcessSteps", func() { v.ProcessSteps = s.GetAllProcessSteps(ctx) }))
	g.Go(s.section("GetNavigablePages", func() { pages = s.GetNavigablePages(ctx) }))
	_ = g.Wait()

	v.Nav = nav.PageNeighbors(pages, s.opts.HomeSlug)
	return &v
}

func (s *Service) ProjectView(ctx context.Context, slug string) *ProjectView {
	var (
		g      errgroup.Group
		detail *domain.ProjectDetail
		all    []domain.ProjectCardItem
	)
	g.Go(s.section("GetProjectBySlug", func() { detail = s.GetProjectBySlug(ctx, slug) }))
	g.Go(s.section("GetAllProjects", func() { all = s.GetAllProjects(ctx) }))
	_ = g.Wait()

	if detail == nil {
		return nil
	}
	sibs := siblings(all, func(p domain.ProjectCardItem) nav.Sibling { return nav.Sibling{Slug: p.Slug, Title: p.Title} })
	return &ProjectView{Project: detail, Nav: nav.Neighbors(sibs, slug, nav.Projects)}
}

func (s *Service) ServiceView(ctx context.Context, slug string) *ServiceView {
	var (
		g      errgroup.Group
		detail *domain.ServiceData
		all    []domain.ServiceCardItem
	)
	g.Go(s.section("GetServiceBySlug", func() { detail = s.GetServiceBySlug(ctx, slug) }))
	g.Go(s.section("GetAllServices", func() { all = s.GetAllServices(ctx) }))
	_ = g.Wait()

	if detail == nil {
		return nil
	}
	sibs := siblings(all, func(c domain.ServiceCardItem) nav.Sibling { return nav.Sibling{Slug: c.Slug, Title: c.Title} })
	return &ServiceView{Service: detail, Nav: nav.Neighbors(sibs, slug, nav.Services)}
}

// PostView links posts by publication date, so the sibling list is every
// published post newest first.
func (s *Service) PostView(ctx context.Context, slug string) *PostView {
	var (
		g      errgroup.Group
		detail *domain.PostDetail
		all    []domain.PostCardItem
	)
	g.Go(s.section("GetPostBySlug", func() { detail = s.GetPostBySlug(ctx, slug) }))
	g.Go(s.section("GetAllPublishedPosts", func() { all = s.GetAllPublishedPosts(ctx, 0) }))
	_ = g.Wait()

	if detail == nil {
		return nil
	}
	sibs := siblings(all, func(p domain.PostCardItem) nav.Sibling { return nav.Sibling{Slug: p.Slug, Title: p.Title} })
	return &PostView{Post: detail, Nav: nav.PostNeighbors(sibs, slug)}
}

func (s *Service) ProcessStepView(ctx context.Context, slug string) *ProcessStepView {
	var (
		g    errgroup.Group
		step *domain.ProcessStepItem
		all  []domain.ProcessStepItem
	)
	g.Go(s.section("GetProcessStepBySlug", func() { step = s.GetProcessStepBySlug(ctx, slug) }))
	g.Go(s.section("GetAllProcessSteps", func() { all = s.GetAllProcessSteps(ctx) }))
	_ = g.Wait()

	if step == nil {
		return nil
	}
	sibs := siblings(all, func(p domain.ProcessStepItem) nav.Sibling { return nav.Sibling{Slug: p.Slug, Title: p.Title} })
	return &ProcessStepView{Step: step, Nav: nav.Neighbors(sibs, slug, nav.ProcessSteps)}
}

func (s *Service) UxProblemView(ctx context.Context, slug string) *UxProblemView {
	var (
		g      errgroup.Group
		detail *domain.UxProblemDetail
		all    []domain.UxCardItem
	)
	g.Go(s.section("GetUxProblemBySlug", func() { detail = s.GetUxProblemBySlug(ctx, slug) }))
	g.Go(s.section("GetAllUxProblems", func() { all = s.GetAllUxProblems(ctx) }))
	_ = g.Wait()

	if detail == nil {
		return nil
	}
	return &UxProblemView{Problem: detail, Nav: nav.Neighbors(uxSiblings(all), slug, nav.UxProblems)}
}

func (s *Service) UxSolutionView(ctx context.Context, slug string) *UxSolutionView {
	var (
		g      errgroup.Group
		detail *domain.UxSolutionDetail
		all    []domain.UxCardItem
	)
	g.Go(s.section("GetUxSolutionBySlug", func() { detail = s.GetUxSolutionBySlug(ctx, slug) }))
	g.Go(s.section("GetAllUxSolutions", func() { all = s.GetAllUxSolutions(ctx) }))
	_ = g.Wait()

	if detail == nil {
		return nil
	}
	return &UxSolutionView{Solution: detail, Nav: nav.Neighbors(uxSiblings(all), slug, nav.UxSolutions)}
}

func siblings[T any](items []T, fn func(T) nav.Sibling) []nav.Sibling {
	out := make([]nav.Sibling, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func uxSiblings(items []domain.UxCardItem) []nav.Sibling {
	return siblings(items, func(u domain.UxCardItem) nav.Sibling { return nav.Sibling{Slug: u.Slug, Title: u.Title} })
}

// section wraps one fan-out read. A panic is logged and leaves that
// section at its zero value; it must not take the process down, because
// gin's recovery only covers the request goroutine.
func (s *Service) section(name string, read func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("content section panicked",
					zap.String("op", name), zap.String("panic", fmt.Sprint(r)), zap.Stack("stack"))
			}
		}()
		read()
		return nil
	}
}
