// Package content is the read side the page renderers call. It never
// returns errors: backend failures are logged and degrade to nil (single
// items) or an empty slice (lists), the same result as "not found".
package content

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/logging"
	"studio-content/internal/mapper"
	faqrepo "studio-content/internal/repository/faq"
	pagerepo "studio-content/internal/repository/page"
	postrepo "studio-content/internal/repository/post"
	steprepo "studio-content/internal/repository/processstep"
	projectrepo "studio-content/internal/repository/project"
	servicerepo "studio-content/internal/repository/service"
	testimonialrepo "studio-content/internal/repository/testimonial"
	uxrepo "studio-content/internal/repository/ux"
)

// Repositories is the backend handle the service reads through.
type Repositories struct {
	Pages        pagerepo.Repository
	Projects     projectrepo.Repository
	Services     servicerepo.Repository
	Posts        postrepo.Repository
	FAQs         faqrepo.Repository
	ProcessSteps steprepo.Repository
	Ux           uxrepo.Repository
	Testimonials testimonialrepo.Repository
}

// Options tunes the composite views.
type Options struct {
	HomeSlug      string
	FeaturedLimit int
	PostsLimit    int
}

type Service struct {
	repos  Repositories
	opts   Options
	logger *zap.Logger
}

func New(repos Repositories, opts Options, logger *zap.Logger) *Service {
	if opts.HomeSlug == "" {
		opts.HomeSlug = "home"
	}
	if opts.FeaturedLimit <= 0 {
		opts.FeaturedLimit = 3
	}
	if opts.PostsLimit <= 0 {
		opts.PostsLimit = 6
	}
	return &Service{repos: repos, opts: opts, logger: logging.OrNop(logger).Named("content")}
}

// fetchFailed logs a repository error. Not-found is expected traffic and
// stays at debug level.
func (s *Service) fetchFailed(op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op))
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.Debug("content not found", fields...)
		return
	}
	s.logger.Error("content fetch failed", append(fields, zap.Error(err))...)
}

func (s *Service) GetPageBySlug(ctx context.Context, slug string) *domain.PageData {
	row, err := s.repos.Pages.GetBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetPageBySlug", err, zap.String("slug", slug))
		return nil
	}
	page := mapper.Page(*row)
	return &page
}

func (s *Service) GetNavigablePages(ctx context.Context) []domain.NavigablePageInfo {
	pages, err := s.repos.Pages.ListNavigable(ctx)
	if err != nil {
		s.fetchFailed("GetNavigablePages", err)
		return []domain.NavigablePageInfo{}
	}
	return nonNil(pages)
}

// GetPublishedPages lists every published page regardless of type, for sitemaps.
func (s *Service) GetPublishedPages(ctx context.Context) []domain.NavigablePageInfo {
	pages, err := s.repos.Pages.ListPublished(ctx)
	if err != nil {
		s.fetchFailed("GetPublishedPages", err)
		return []domain.NavigablePageInfo{}
	}
	return nonNil(pages)
}

func (s *Service) GetAllProjects(ctx context.Context) []domain.ProjectCardItem {
	rows, err := s.repos.Projects.List(ctx)
	if err != nil {
		s.fetchFailed("GetAllProjects", err)
		return []domain.ProjectCardItem{}
	}
	return mapper.ProjectCards(rows)
}

// GetFeaturedProjects returns at most limit featured projects; a limit of
// zero or less yields an empty list.
func (s *Service) GetFeaturedProjects(ctx context.Context, limit int) []domain.ProjectCardItem {
	if limit <= 0 {
		return []domain.ProjectCardItem{}
	}
	rows, err := s.repos.Projects.ListFeatured(ctx, limit)
	if err != nil {
		s.fetchFailed("GetFeaturedProjects", err, zap.Int("limit", limit))
		return []domain.ProjectCardItem{}
	}
	return mapper.ProjectCards(rows)
}

func (s *Service) GetProjectBySlug(ctx context.Context, slug string) *domain.ProjectDetail {
	row, err := s.repos.Projects.GetBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetProjectBySlug", err, zap.String("slug", slug))
		return nil
	}
	detail := mapper.ProjectDetail(*row)
	return &detail
}

func (s *Service) GetAllServices(ctx context.Context) []domain.ServiceCardItem {
	rows, err := s.repos.Services.List(ctx)
	if err != nil {
		s.fetchFailed("GetAllServices", err)
		return []domain.ServiceCardItem{}
	}
	return mapper.ServiceCards(rows)
}

func (s *Service) GetFeaturedServices(ctx context.Context, limit int) []domain.ServiceCardItem {
	if limit <= 0 {
		return []domain.ServiceCardItem{}
	}
	rows, err := s.repos.Services.ListFeatured(ctx, limit)
	if err != nil {
		s.fetchFailed("GetFeaturedServices", err, zap.Int("limit", limit))
		return []domain.ServiceCardItem{}
	}
	return mapper.ServiceCards(rows)
}

// GetServicesByOffering returns an empty list for an unknown offering type.
func (s *Service) GetServicesByOffering(ctx context.Context, offering domain.OfferingType) []domain.ServiceCardItem {
	if !offering.Valid() {
		return []domain.ServiceCardItem{}
	}
	rows, err := s.repos.Services.ListByOffering(ctx, offering)
	if err != nil {
		s.fetchFailed("GetServicesByOffering", err, zap.String("offering", string(offering)))
		return []domain.ServiceCardItem{}
	}
	return mapper.ServiceCards(rows)
}

func (s *Service) GetServiceBySlug(ctx context.Context, slug string) *domain.ServiceData {
	row, err := s.repos.Services.GetBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetServiceBySlug", err, zap.String("slug", slug))
		return nil
	}
	detail := mapper.ServiceDetail(*row)
	return &detail
}

// GetAllPublishedPosts lists published posts newest first; limit <= 0 means all.
func (s *Service) GetAllPublishedPosts(ctx context.Context, limit int) []domain.PostCardItem {
	rows, err := s.repos.Posts.ListPublished(ctx, limit)
	if err != nil {
		s.fetchFailed("GetAllPublishedPosts", err, zap.Int("limit", limit))
		return []domain.PostCardItem{}
	}
	return mapper.PostCards(rows)
}

func (s *Service) GetPostsByTag(ctx context.Context, tagSlug string, limit int) []domain.PostCardItem {
	rows, err := s.repos.Posts.ListByTag(ctx, tagSlug, limit)
	if err != nil {
		s.fetchFailed("GetPostsByTag", err, zap.String("tag", tagSlug), zap.Int("limit", limit))
		return []domain.PostCardItem{}
	}
	return mapper.PostCards(rows)
}

func (s *Service) GetPostBySlug(ctx context.Context, slug string) *domain.PostDetail {
	row, err := s.repos.Posts.GetBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetPostBySlug", err, zap.String("slug", slug))
		return nil
	}
	detail := mapper.PostDetail(*row)
	return &detail
}

func (s *Service) GetFAQsGroupedByCategory(ctx context.Context) []domain.FAQCategoryWithItems {
	rows, err := s.repos.FAQs.ListCategoriesWithItems(ctx)
	if err != nil {
		s.fetchFailed("GetFAQsGroupedByCategory", err)
		return []domain.FAQCategoryWithItems{}
	}
	return mapper.FAQCategories(rows)
}

func (s *Service) GetAllProcessSteps(ctx context.Context) []domain.ProcessStepItem {
	rows, err := s.repos.ProcessSteps.List(ctx)
	if err != nil {
		s.fetchFailed("GetAllProcessSteps", err)
		return []domain.ProcessStepItem{}
	}
	return mapper.ProcessSteps(rows)
}

func (s *Service) GetProcessStepBySlug(ctx context.Context, slug string) *domain.ProcessStepItem {
	row, err := s.repos.ProcessSteps.GetBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetProcessStepBySlug", err, zap.String("slug", slug))
		return nil
	}
	step := mapper.ProcessStep(*row)
	return &step
}

func (s *Service) GetAllUxProblems(ctx context.Context) []domain.UxCardItem {
	rows, err := s.repos.Ux.ListProblems(ctx)
	if err != nil {
		s.fetchFailed("GetAllUxProblems", err)
		return []domain.UxCardItem{}
	}
	return mapper.UxProblemCards(rows)
}

func (s *Service) GetUxProblemBySlug(ctx context.Context, slug string) *domain.UxProblemDetail {
	row, err := s.repos.Ux.GetProblemBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetUxProblemBySlug", err, zap.String("slug", slug))
		return nil
	}
	detail := mapper.UxProblemDetail(*row)
	return &detail
}

func (s *Service) GetAllUxSolutions(ctx context.Context) []domain.UxCardItem {
	rows, err := s.repos.Ux.ListSolutions(ctx)
	if err != nil {
		s.fetchFailed("GetAllUxSolutions", err)
		return []domain.UxCardItem{}
	}
	return mapper.UxSolutionCards(rows)
}

func (s *Service) GetUxSolutionBySlug(ctx context.Context, slug string) *domain.UxSolutionDetail {
	row, err := s.repos.Ux.GetSolutionBySlug(ctx, slug)
	if err != nil {
		s.fetchFailed("GetUxSolutionBySlug", err, zap.String("slug", slug))
		return nil
	}
	detail := mapper.UxSolutionDetail(*row)
	return &detail
}

func (s *Service) GetAllTestimonials(ctx context.Context) []domain.TestimonialItem {
	rows, err := s.repos.Testimonials.List(ctx)
	if err != nil {
		s.fetchFailed("GetAllTestimonials", err)
		return []domain.TestimonialItem{}
	}
	return mapper.Testimonials(rows)
}

func (s *Service) GetFeaturedTestimonials(ctx context.Context, limit int) []domain.TestimonialItem {
	if limit <= 0 {
		return []domain.TestimonialItem{}
	}
	rows, err := s.repos.Testimonials.ListFeatured(ctx, limit)
	if err != nil {
		s.fetchFailed("GetFeaturedTestimonials", err, zap.Int("limit", limit))
		return []domain.TestimonialItem{}
	}
	return mapper.Testimonials(rows)
}

func (s *Service) GetTestimonialsByService(ctx context.Context, serviceSlug string) []domain.TestimonialItem {
	rows, err := s.repos.Testimonials.ListByService(ctx, serviceSlug)
	if err != nil {
		s.fetchFailed("GetTestimonialsByService", err, zap.String("service", serviceSlug))
		return []domain.TestimonialItem{}
	}
	return mapper.Testimonials(rows)
}

func (s *Service) GetFAQsForPage(ctx context.Context, pageSlug string) []domain.FAQItem {
	rows, err := s.repos.FAQs.ListByPage(ctx, pageSlug)
	if err != nil {
		s.fetchFailed("GetFAQsForPage", err, zap.String("page", pageSlug))
		return []domain.FAQItem{}
	}
	out := make([]domain.FAQItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapper.FAQ(r))
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
