package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/service/content"
)

// ContentService is the read side the handlers render from.
type ContentService interface {
	GetNavigablePages(ctx context.Context) []domain.NavigablePageInfo
	GetPublishedPages(ctx context.Context) []domain.NavigablePageInfo
	GetFAQsForPage(ctx context.Context, pageSlug string) []domain.FAQItem
	GetAllProjects(ctx context.Context) []domain.ProjectCardItem
	GetFeaturedProjects(ctx context.Context, limit int) []domain.ProjectCardItem
	GetAllServices(ctx context.Context) []domain.ServiceCardItem
	GetFeaturedServices(ctx context.Context, limit int) []domain.ServiceCardItem
	GetServicesByOffering(ctx context.Context, offering domain.OfferingType) []domain.ServiceCardItem
	GetTestimonialsByService(ctx context.Context, serviceSlug string) []domain.TestimonialItem
	GetAllPublishedPosts(ctx context.Context, limit int) []domain.PostCardItem
	GetPostsByTag(ctx context.Context, tagSlug string, limit int) []domain.PostCardItem
	GetFAQsGroupedByCategory(ctx context.Context) []domain.FAQCategoryWithItems
	GetAllProcessSteps(ctx context.Context) []domain.ProcessStepItem
	GetAllUxProblems(ctx context.Context) []domain.UxCardItem
	GetAllUxSolutions(ctx context.Context) []domain.UxCardItem
	GetAllTestimonials(ctx context.Context) []domain.TestimonialItem
	GetFeaturedTestimonials(ctx context.Context, limit int) []domain.TestimonialItem

	HomeView(ctx context.Context) *content.HomeView
	PageView(ctx context.Context, slug string) *content.PageView
	ProjectView(ctx context.Context, slug string) *content.ProjectView
	ServiceView(ctx context.Context, slug string) *content.ServiceView
	PostView(ctx context.Context, slug string) *content.PostView
	ProcessStepView(ctx context.Context, slug string) *content.ProcessStepView
	UxProblemView(ctx context.Context, slug string) *content.UxProblemView
	UxSolutionView(ctx context.Context, slug string) *content.UxSolutionView
}

// Deps groups the services the router needs.
type Deps struct {
	Content ContentService
	// FeaturedLimit applies when ?featured=true comes without ?limit.
	FeaturedLimit int
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db Pinger, deps Deps, allowedOrigins []string) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(zap.NewStdLog(logger).Writer()), gin.Recovery())
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &contentHandlers{svc: deps.Content, featuredLimit: deps.FeaturedLimit}
	if h.featuredLimit <= 0 {
		h.featuredLimit = 3
	}

	api := router.Group("/api")
	api.GET("/home", h.home)
	api.GET("/sitemap", h.sitemap)
	api.GET("/pages", h.listPages)
	api.GET("/pages/:slug", h.getPage)
	api.GET("/pages/:slug/faqs", h.pageFAQs)
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:slug", h.getProject)
	api.GET("/services", h.listServices)
	api.GET("/services/:slug", h.getService)
	api.GET("/services/:slug/testimonials", h.serviceTestimonials)
	api.GET("/posts", h.listPosts)
	api.GET("/posts/:slug", h.getPost)
	api.GET("/faqs", h.listFAQs)
	api.GET("/process-steps", h.listProcessSteps)
	api.GET("/process-steps/:slug", h.getProcessStep)
	api.GET("/ux-problems", h.listUxProblems)
	api.GET("/ux-problems/:slug", h.getUxProblem)
	api.GET("/ux-solutions", h.listUxSolutions)
	api.GET("/ux-solutions/:slug", h.getUxSolution)
	api.GET("/testimonials", h.listTestimonials)

	return router
}
