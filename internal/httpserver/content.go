package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"studio-content/internal/domain"
	"studio-content/internal/nav"
)

// Route prefixes the renderers mount each content type under.
const (
	pagesBase        = "/"
	projectsBase     = "/projects"
	servicesBase     = "/services"
	postsBase        = "/blog"
	processStepsBase = "/process"
	uxProblemsBase   = "/ux-problems"
	uxSolutionsBase  = "/ux-solutions"
)

type contentHandlers struct {
	svc           ContentService
	featuredLimit int
}

type navLink struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	CategoryLabel string `json:"categoryLabel"`
	Href          string `json:"href"`
}

type navResponse struct {
	Previous *navLink `json:"previous"`
	Next     *navLink `json:"next"`
}

func toNav(links domain.NavLinks, base string) navResponse {
	conv := func(l *domain.NavLinkInfo) *navLink {
		if l == nil {
			return nil
		}
		return &navLink{Slug: l.Slug, Title: l.Title, CategoryLabel: l.CategoryLabel, Href: nav.MakeHref(base, l.Slug)}
	}
	return navResponse{Previous: conv(links.Previous), Next: conv(links.Next)}
}

func toPageLinks(pages []domain.NavigablePageInfo) []navLink {
	out := make([]navLink, 0, len(pages))
	for _, p := range pages {
		out = append(out, navLink{
			Slug:          p.Slug,
			Title:         p.Title,
			CategoryLabel: nav.CategoryLabel(p.PageType),
			Href:          nav.MakeHref(pagesBase, p.Slug),
		})
	}
	return out
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// queryLimit reads ?limit; absent means 0 (no limit).
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, "limit must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func queryBool(c *gin.Context, key string) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(c, key+" must be a boolean")
		return false, false
	}
	return v, true
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func items[T any](c *gin.Context, list []T) {
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *contentHandlers) home(c *gin.Context) {
	v := h.svc.HomeView(c.Request.Context())
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":             v.Page,
		"featuredProjects": v.FeaturedProjects,
		"featuredServices": v.FeaturedServices,
		"testimonials":     v.Testimonials,
		"recentPosts":      v.RecentPosts,
		"processSteps":     v.ProcessSteps,
		"nav":              toNav(v.Nav, pagesBase),
	})
}

func (h *contentHandlers) sitemap(c *gin.Context) {
	items(c, toPageLinks(h.svc.GetPublishedPages(c.Request.Context())))
}

func (h *contentHandlers) listPages(c *gin.Context) {
	items(c, toPageLinks(h.svc.GetNavigablePages(c.Request.Context())))
}

func (h *contentHandlers) getPage(c *gin.Context) {
	v := h.svc.PageView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": v.Page, "nav": toNav(v.Nav, pagesBase)})
}

func (h *contentHandlers) pageFAQs(c *gin.Context) {
	items(c, h.svc.GetFAQsForPage(c.Request.Context(), c.Param("slug")))
}

func (h *contentHandlers) listProjects(c *gin.Context) {
	featured, ok := queryBool(c, "featured")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if featured {
		if limit == 0 {
			limit = h.featuredLimit
		}
		items(c, h.svc.GetFeaturedProjects(ctx, limit))
		return
	}
	items(c, capped(h.svc.GetAllProjects(ctx), limit))
}

func (h *contentHandlers) getProject(c *gin.Context) {
	v := h.svc.ProjectView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": v.Project, "nav": toNav(v.Nav, projectsBase)})
}

func (h *contentHandlers) listServices(c *gin.Context) {
	featured, ok := queryBool(c, "featured")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if raw := c.Query("offering"); raw != "" {
		offering := domain.OfferingType(strings.ToUpper(raw))
		if !offering.Valid() {
			badRequest(c, "offering must be INDIVIDUAL or BUNDLE")
			return
		}
		items(c, capped(h.svc.GetServicesByOffering(ctx, offering), limit))
		return
	}
	if featured {
		if limit == 0 {
			limit = h.featuredLimit
		}
		items(c, h.svc.GetFeaturedServices(ctx, limit))
		return
	}
	items(c, capped(h.svc.GetAllServices(ctx), limit))
}

func (h *contentHandlers) getService(c *gin.Context) {
	v := h.svc.ServiceView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": v.Service, "nav": toNav(v.Nav, servicesBase)})
}

func (h *contentHandlers) serviceTestimonials(c *gin.Context) {
	items(c, h.svc.GetTestimonialsByService(c.Request.Context(), c.Param("slug")))
}

func (h *contentHandlers) listPosts(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if tag := c.Query("tag"); tag != "" {
		items(c, h.svc.GetPostsByTag(ctx, tag, limit))
		return
	}
	items(c, h.svc.GetAllPublishedPosts(ctx, limit))
}

func (h *contentHandlers) getPost(c *gin.Context) {
	v := h.svc.PostView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": v.Post, "nav": toNav(v.Nav, postsBase)})
}

func (h *contentHandlers) listFAQs(c *gin.Context) {
	items(c, h.svc.GetFAQsGroupedByCategory(c.Request.Context()))
}

func (h *contentHandlers) listProcessSteps(c *gin.Context) {
	items(c, h.svc.GetAllProcessSteps(c.Request.Context()))
}

func (h *contentHandlers) getProcessStep(c *gin.Context) {
	v := h.svc.ProcessStepView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": v.Step, "nav": toNav(v.Nav, processStepsBase)})
}

func (h *contentHandlers) listUxProblems(c *gin.Context) {
	items(c, h.svc.GetAllUxProblems(c.Request.Context()))
}

func (h *contentHandlers) getUxProblem(c *gin.Context) {
	v := h.svc.UxProblemView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"problem": v.Problem, "nav": toNav(v.Nav, uxProblemsBase)})
}

func (h *contentHandlers) listUxSolutions(c *gin.Context) {
	items(c, h.svc.GetAllUxSolutions(c.Request.Context()))
}

func (h *contentHandlers) getUxSolution(c *gin.Context) {
	v := h.svc.UxSolutionView(c.Request.Context(), c.Param("slug"))
	if v == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution": v.Solution, "nav": toNav(v.Nav, uxSolutionsBase)})
}

func (h *contentHandlers) listTestimonials(c *gin.Context) {
	featured, ok := queryBool(c, "featured")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if featured {
		if limit == 0 {
			limit = h.featuredLimit
		}
		items(c, h.svc.GetFeaturedTestimonials(ctx, limit))
		return
	}
	items(c, capped(h.svc.GetAllTestimonials(ctx), limit))
}
