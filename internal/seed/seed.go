package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/logging"
)

const defaultIconLibrary = "lucide-react"

// testimonialNamespace derives stable testimonial IDs from fixture keys, so
// re-running the seed updates rows instead of duplicating them.
var testimonialNamespace = uuid.MustParse("6f1c2f4e-8a57-4c3b-9d7e-2b0e5b8f9a41")

func TestimonialID(key string) string {
	return uuid.NewSHA1(testimonialNamespace, []byte("testimonial:"+key)).String()
}

// Apply writes the fixture in one transaction. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool, fx *Fixture, logger *zap.Logger) error {
	logger = logging.OrNop(logger)
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		s := &seeder{tx: tx, ids: map[string]map[string]string{}}
		steps := []struct {
			name string
			fn   func(context.Context, *Fixture) error
		}{
			{"icons", s.icons},
			{"pages", s.pages},
			{"services", s.services},
			{"testimonials", s.testimonials},
			{"projects", s.projects},
			{"posts", s.posts},
			{"faqs", s.faqs},
			{"process steps", s.processSteps},
			{"ux", s.ux},
			{"page links", s.pageLinks},
		}
		for _, step := range steps {
			if err := step.fn(ctx, fx); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
			logger.Debug("seed step applied", zap.String("step", step.name))
		}
		return nil
	})
}

type seeder struct {
	tx pgx.Tx
	// ids maps kind -> natural key -> row id.
	ids map[string]map[string]string
}

func (s *seeder) remember(kind, key, id string) {
	if s.ids[kind] == nil {
		s.ids[kind] = map[string]string{}
	}
	s.ids[kind][key] = id
}

func (s *seeder) ref(kind, key string) (string, error) {
	id, ok := s.ids[kind][key]
	if !ok {
		return "", fmt.Errorf("unknown %s %q", kind, key)
	}
	return id, nil
}

// iconRef resolves an optional icon name; empty means no icon.
func (s *seeder) iconRef(name string) (*string, error) {
	if name == "" {
		return nil, nil
	}
	id, err := s.ref("icon", name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *seeder) upsertID(ctx context.Context, kind, key, q string, args ...any) error {
	var id string
	if err := s.tx.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return fmt.Errorf("%s %q: %w", kind, key, err)
	}
	s.remember(kind, key, id)
	return nil
}

func (s *seeder) link(ctx context.Context, q, a, b string) error {
	_, err := s.tx.Exec(ctx, q, a, b)
	return err
}

// jsonContent encodes YAML content for a jsonb column; nil stays NULL.
func jsonContent(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := string(raw)
	return &out, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func statusOrDraft(st domain.Status) domain.Status {
	if st == "" {
		return domain.StatusDraft
	}
	return st
}

func (s *seeder) icons(ctx context.Context, fx *Fixture) error {
	const q = `
INSERT INTO icons (name, icon_library)
VALUES ($1, $2)
ON CONFLICT (name, icon_library) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	for _, ic := range fx.Icons {
		lib := ic.Library
		if lib == "" {
			lib = defaultIconLibrary
		}
		if err := s.upsertID(ctx, "icon", ic.Name, q, ic.Name, lib); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) pages(ctx context.Context, fx *Fixture) error {
	const q = `
INSERT INTO pages (slug, title, page_type, status, content, meta_description, og_image_url, sort_order, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CASE WHEN $4 = 'PUBLISHED' THEN now() END)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    page_type = EXCLUDED.page_type,
    status = EXCLUDED.status,
    content = EXCLUDED.content,
    meta_description = EXCLUDED.meta_description,
    og_image_url = EXCLUDED.og_image_url,
    sort_order = EXCLUDED.sort_order,
    published_at = COALESCE(pages.published_at, EXCLUDED.published_at)
RETURNING id::text
`
	for _, p := range fx.Pages {
		content, err := jsonContent(p.Content)
		if err != nil {
			return fmt.Errorf("page %q content: %w", p.Slug, err)
		}
		err = s.upsertID(ctx, "page", p.Slug, q,
			p.Slug, p.Title, string(p.PageType), string(statusOrDraft(p.Status)), content,
			nullable(p.MetaDescription), nullable(p.OGImageURL), p.SortOrder)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) services(ctx context.Context, fx *Fixture) error {
	const q = `
INSERT INTO services (slug, title, description, offering_type, content, sort_order, featured, icon_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    offering_type = EXCLUDED.offering_type,
    content = EXCLUDED.content,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured,
    icon_id = EXCLUDED.icon_id
RETURNING id::text
`
	for _, sv := range fx.Services {
		icon, err := s.iconRef(sv.Icon)
		if err != nil {
			return fmt.Errorf("service %q: %w", sv.Slug, err)
		}
		content, err := jsonContent(sv.Content)
		if err != nil {
			return fmt.Errorf("service %q content: %w", sv.Slug, err)
		}
		offering := sv.OfferingType
		if offering == "" {
			offering = domain.OfferingIndividual
		}
		err = s.upsertID(ctx, "service", sv.Slug, q,
			sv.Slug, sv.Title, nullable(sv.Description), string(offering), content, sv.SortOrder, sv.Featured, icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) testimonials(ctx context.Context, fx *Fixture) error {
	const q = `
INSERT INTO testimonials (id, quote, author_name, author_title, company, avatar_url, sort_order, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET quote = EXCLUDED.quote,
    author_name = EXCLUDED.author_name,
    author_title = EXCLUDED.author_title,
    company = EXCLUDED.company,
    avatar_url = EXCLUDED.avatar_url,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured
RETURNING id::text
`
	const linkQ = `INSERT INTO testimonial_services (testimonial_id, service_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, t := range fx.Testimonials {
		err := s.upsertID(ctx, "testimonial", t.Key, q,
			TestimonialID(t.Key), t.Quote, t.AuthorName, nullable(t.AuthorTitle), nullable(t.Company),
			nullable(t.AvatarURL), t.SortOrder, t.Featured)
		if err != nil {
			return err
		}
		id := s.ids["testimonial"][t.Key]
		for _, slug := range t.Services {
			serviceID, err := s.ref("service", slug)
			if err != nil {
				return fmt.Errorf("testimonial %q: %w", t.Key, err)
			}
			if err := s.link(ctx, linkQ, id, serviceID); err != nil {
				return fmt.Errorf("testimonial %q service %q: %w", t.Key, slug, err)
			}
		}
	}
	return nil
}

func (s *seeder) projects(ctx context.Context, fx *Fixture) error {
	const q = `
INSERT INTO projects (slug, title, description, client_name, image_url, content, sort_order, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    client_name = EXCLUDED.client_name,
    image_url = EXCLUDED.image_url,
    content = EXCLUDED.content,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured
RETURNING id::text
`
	const serviceQ = `INSERT INTO project_services (project_id, service_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	const testimonialQ = `INSERT INTO project_testimonials (project_id, testimonial_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, p := range fx.Projects {
		content, err := jsonContent(p.Content)
		if err != nil {
			return fmt.Errorf("project %q content: %w", p.Slug, err)
		}
		err = s.upsertID(ctx, "project", p.Slug, q,
			p.Slug, p.Title, nullable(p.Description), nullable(p.ClientName), nullable(p.ImageURL),
			content, p.SortOrder, p.Featured)
		if err != nil {
			return err
		}
		id := s.ids["project"][p.Slug]
		for _, slug := range p.Services {
			serviceID, err := s.ref("service", slug)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Slug, err)
			}
			if err := s.link(ctx, serviceQ, id, serviceID); err != nil {
				return fmt.Errorf("project %q service %q: %w", p.Slug, slug, err)
			}
		}
		for _, key := range p.Testimonials {
			testimonialID, err := s.ref("testimonial", key)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Slug, err)
			}
			if err := s.link(ctx, testimonialQ, id, testimonialID); err != nil {
				return fmt.Errorf("project %q testimonial %q: %w", p.Slug, key, err)
			}
		}
	}
	return nil
}

func (s *seeder) posts(ctx context.Context, fx *Fixture) error {
	const tagQ = `
INSERT INTO tags (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	const q = `
INSERT INTO posts (slug, title, excerpt, cover_image_url, content, status, featured, sort_order, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    excerpt = EXCLUDED.excerpt,
    cover_image_url = EXCLUDED.cover_image_url,
    content = EXCLUDED.content,
    status = EXCLUDED.status,
    featured = EXCLUDED.featured,
    sort_order = EXCLUDED.sort_order,
    published_at = EXCLUDED.published_at
RETURNING id::text
`
	const linkQ = `INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, t := range fx.Tags {
		if err := s.upsertID(ctx, "tag", t.Slug, tagQ, t.Name, t.Slug); err != nil {
			return err
		}
	}
	for _, p := range fx.Posts {
		content, err := jsonContent(p.Content)
		if err != nil {
			return fmt.Errorf("post %q content: %w", p.Slug, err)
		}
		err = s.upsertID(ctx, "post", p.Slug, q,
			p.Slug, p.Title, nullable(p.Excerpt), nullable(p.CoverImageURL), content,
			string(statusOrDraft(p.Status)), p.Featured, p.SortOrder, p.PublishedAt)
		if err != nil {
			return err
		}
		id := s.ids["post"][p.Slug]
		for _, slug := range p.Tags {
			tagID, err := s.ref("tag", slug)
			if err != nil {
				return fmt.Errorf("post %q: %w", p.Slug, err)
			}
			if err := s.link(ctx, linkQ, id, tagID); err != nil {
				return fmt.Errorf("post %q tag %q: %w", p.Slug, slug, err)
			}
		}
	}
	return nil
}

func (s *seeder) faqs(ctx context.Context, fx *Fixture) error {
	const categoryQ = `
INSERT INTO faq_categories (name, slug, sort_order)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, sort_order = EXCLUDED.sort_order
RETURNING id::text
`
	const q = `
INSERT INTO faqs (category_id, slug, question, answer, sort_order, featured)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (slug) DO UPDATE
SET category_id = EXCLUDED.category_id,
    question = EXCLUDED.question,
    answer = EXCLUDED.answer,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured
RETURNING id::text
`
	for ci, c := range fx.FAQCategories {
		order := c.SortOrder
		if order == 0 {
			order = ci + 1
		}
		if err := s.upsertID(ctx, "faq category", c.Slug, categoryQ, c.Name, c.Slug, order); err != nil {
			return err
		}
		categoryID := s.ids["faq category"][c.Slug]
		for fi, f := range c.FAQs {
			answer, err := answerDocument(f.Answer)
			if err != nil {
				return fmt.Errorf("faq %q answer: %w", f.Slug, err)
			}
			faqOrder := f.SortOrder
			if faqOrder == 0 {
				faqOrder = fi + 1
			}
			if err := s.upsertID(ctx, "faq", f.Slug, q, categoryID, f.Slug, f.Question, answer, faqOrder, f.Featured); err != nil {
				return err
			}
		}
	}
	return nil
}

// answerDocument turns plain fixture text into a paragraph block document.
func answerDocument(text string) (*string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return jsonContent(domain.TextDocument(paragraphs...))
}

func (s *seeder) processSteps(ctx context.Context, fx *Fixture) error {
	return s.items(ctx, "process step", "process_steps", fx.ProcessSteps)
}

func (s *seeder) items(ctx context.Context, kind, table string, items []ItemSeed) error {
	q := `
INSERT INTO ` + table + ` (slug, title, description, content, sort_order, featured, icon_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    content = EXCLUDED.content,
    sort_order = EXCLUDED.sort_order,
    featured = EXCLUDED.featured,
    icon_id = EXCLUDED.icon_id
RETURNING id::text
`
	for _, it := range items {
		icon, err := s.iconRef(it.Icon)
		if err != nil {
			return fmt.Errorf("%s %q: %w", kind, it.Slug, err)
		}
		content, err := jsonContent(it.Content)
		if err != nil {
			return fmt.Errorf("%s %q content: %w", kind, it.Slug, err)
		}
		err = s.upsertID(ctx, kind, it.Slug, q,
			it.Slug, it.Title, nullable(it.Description), content, it.SortOrder, it.Featured, icon)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) ux(ctx context.Context, fx *Fixture) error {
	problems := make([]ItemSeed, 0, len(fx.UxProblems))
	for _, p := range fx.UxProblems {
		problems = append(problems, p.ItemSeed)
	}
	solutions := make([]ItemSeed, 0, len(fx.UxSolutions))
	for _, sol := range fx.UxSolutions {
		solutions = append(solutions, sol.ItemSeed)
	}
	if err := s.items(ctx, "ux problem", "ux_problems", problems); err != nil {
		return err
	}
	if err := s.items(ctx, "ux solution", "ux_solutions", solutions); err != nil {
		return err
	}

	const linkQ = `INSERT INTO ux_problem_solutions (problem_id, solution_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, p := range fx.UxProblems {
		problemID := s.ids["ux problem"][p.Slug]
		for _, slug := range p.Solutions {
			solutionID, err := s.ref("ux solution", slug)
			if err != nil {
				return fmt.Errorf("ux problem %q: %w", p.Slug, err)
			}
			if err := s.link(ctx, linkQ, problemID, solutionID); err != nil {
				return fmt.Errorf("ux problem %q solution %q: %w", p.Slug, slug, err)
			}
		}
	}
	return nil
}

// pageLinks runs last because pages reference FAQs and UX items.
func (s *seeder) pageLinks(ctx context.Context, fx *Fixture) error {
	joins := []struct {
		kind  string
		query string
		keys  func(PageSeed) []string
	}{
		{"faq", `INSERT INTO page_faqs (page_id, faq_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			func(p PageSeed) []string { return p.FAQs }},
		{"ux problem", `INSERT INTO page_ux_problems (page_id, problem_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			func(p PageSeed) []string { return p.UxProblems }},
		{"ux solution", `INSERT INTO page_ux_solutions (page_id, solution_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			func(p PageSeed) []string { return p.UxSolutions }},
	}
	for _, p := range fx.Pages {
		pageID := s.ids["page"][p.Slug]
		for _, j := range joins {
			for _, key := range j.keys(p) {
				id, err := s.ref(j.kind, key)
				if err != nil {
					return fmt.Errorf("page %q: %w", p.Slug, err)
				}
				if err := s.link(ctx, j.query, pageID, id); err != nil {
					return fmt.Errorf("page %q %s %q: %w", p.Slug, j.kind, key, err)
				}
			}
		}
	}
	return nil
}
