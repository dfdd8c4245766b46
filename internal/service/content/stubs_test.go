package content

import (
	"context"
	"sync"

	"studio-content/internal/domain"
)

type stubPages struct {
	rows      map[string]domain.PageRow
	navigable []domain.NavigablePageInfo
	err       error
}

func (s *stubPages) GetBySlug(_ context.Context, slug string) (*domain.PageRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	row, ok := s.rows[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (s *stubPages) ListNavigable(context.Context) ([]domain.NavigablePageInfo, error) {
	return s.navigable, s.err
}

func (s *stubPages) ListPublished(context.Context) ([]domain.NavigablePageInfo, error) {
	return s.navigable, s.err
}

type stubProjects struct {
	rows []domain.ProjectRow
	err  error
}

func (s *stubProjects) List(context.Context) ([]domain.ProjectRow, error) { return s.rows, s.err }

func (s *stubProjects) ListFeatured(_ context.Context, limit int) ([]domain.ProjectRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return featured(s.rows, limit, func(r domain.ProjectRow) bool { return r.Featured }), nil
}

func (s *stubProjects) GetBySlug(_ context.Context, slug string) (*domain.ProjectRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubServices struct {
	rows         []domain.ServiceRow
	err          error
	mu           sync.Mutex
	offeringSeen []domain.OfferingType
}

func (s *stubServices) List(context.Context) ([]domain.ServiceRow, error) { return s.rows, s.err }

func (s *stubServices) ListFeatured(_ context.Context, limit int) ([]domain.ServiceRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return featured(s.rows, limit, func(r domain.ServiceRow) bool { return r.Featured }), nil
}

func (s *stubServices) ListByOffering(_ context.Context, offering domain.OfferingType) ([]domain.ServiceRow, error) {
	s.mu.Lock()
	s.offeringSeen = append(s.offeringSeen, offering)
	s.mu.Unlock()
	var out []domain.ServiceRow
	for _, r := range s.rows {
		if r.OfferingType == offering {
			out = append(out, r)
		}
	}
	return out, s.err
}

func (s *stubServices) GetBySlug(_ context.Context, slug string) (*domain.ServiceRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubPosts struct {
	rows []domain.PostRow
	err  error
}

func (s *stubPosts) ListPublished(_ context.Context, limit int) ([]domain.PostRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return featured(s.rows, limit, func(domain.PostRow) bool { return true }), nil
}

func (s *stubPosts) ListByTag(_ context.Context, tag string, limit int) ([]domain.PostRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return featured(s.rows, limit, func(r domain.PostRow) bool {
		for _, t := range r.Tags {
			if t.Slug == tag {
				return true
			}
		}
		return false
	}), nil
}

func (s *stubPosts) GetBySlug(_ context.Context, slug string) (*domain.PostRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubFAQs struct {
	categories []domain.FAQCategoryRow
	byPage     map[string][]domain.FAQRow
	err        error
}

func (s *stubFAQs) ListCategoriesWithItems(context.Context) ([]domain.FAQCategoryRow, error) {
	return s.categories, s.err
}

func (s *stubFAQs) ListByPage(_ context.Context, pageSlug string) ([]domain.FAQRow, error) {
	return s.byPage[pageSlug], s.err
}

type stubSteps struct {
	rows []domain.ProcessStepRow
	err  error
}

func (s *stubSteps) List(context.Context) ([]domain.ProcessStepRow, error) { return s.rows, s.err }

func (s *stubSteps) GetBySlug(_ context.Context, slug string) (*domain.ProcessStepRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubUx struct {
	problems  []domain.UxProblemRow
	solutions []domain.UxSolutionRow
	err       error
}

func (s *stubUx) ListProblems(context.Context) ([]domain.UxProblemRow, error) {
	return s.problems, s.err
}

func (s *stubUx) GetProblemBySlug(_ context.Context, slug string) (*domain.UxProblemRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.problems {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUx) ListSolutions(context.Context) ([]domain.UxSolutionRow, error) {
	return s.solutions, s.err
}

func (s *stubUx) GetSolutionBySlug(_ context.Context, slug string) (*domain.UxSolutionRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, r := range s.solutions {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubTestimonials struct {
	rows      []domain.TestimonialRow
	byService map[string][]domain.TestimonialRow
	err       error
}

func (s *stubTestimonials) List(context.Context) ([]domain.TestimonialRow, error) {
	return s.rows, s.err
}

func (s *stubTestimonials) ListFeatured(_ context.Context, limit int) ([]domain.TestimonialRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return featured(s.rows, limit, func(r domain.TestimonialRow) bool { return r.Featured }), nil
}

func (s *stubTestimonials) ListByService(_ context.Context, serviceSlug string) ([]domain.TestimonialRow, error) {
	return s.byService[serviceSlug], s.err
}

// featured mimics the SQL: filter, keep order, cap at limit.
func featured[T any](rows []T, limit int, keep func(T) bool) []T {
	out := []T{}
	for _, r := range rows {
		if !keep(r) {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out
}

// emptyRepos returns a backend where every repository answers with nothing.
func emptyRepos() Repositories {
	return Repositories{
		Pages:        &stubPages{},
		Projects:     &stubProjects{},
		Services:     &stubServices{},
		Posts:        &stubPosts{},
		FAQs:         &stubFAQs{},
		ProcessSteps: &stubSteps{},
		Ux:           &stubUx{},
		Testimonials: &stubTestimonials{},
	}
}

func failingRepos(err error) Repositories {
	return Repositories{
		Pages:        &stubPages{err: err},
		Projects:     &stubProjects{err: err},
		Services:     &stubServices{err: err},
		Posts:        &stubPosts{err: err},
		FAQs:         &stubFAQs{err: err},
		ProcessSteps: &stubSteps{err: err},
		Ux:           &stubUx{err: err},
		Testimonials: &stubTestimonials{err: err},
	}
}
