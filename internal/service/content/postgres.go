package content

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	faqrepo "studio-content/internal/repository/faq"
	pagerepo "studio-content/internal/repository/page"
	postrepo "studio-content/internal/repository/post"
	steprepo "studio-content/internal/repository/processstep"
	projectrepo "studio-content/internal/repository/project"
	servicerepo "studio-content/internal/repository/service"
	testimonialrepo "studio-content/internal/repository/testimonial"
	uxrepo "studio-content/internal/repository/ux"
)

// PostgresRepositories builds every repository on one pool.
func PostgresRepositories(pool *pgxpool.Pool, logger *zap.Logger) Repositories {
	return Repositories{
		Pages:        pagerepo.NewPostgres(pool, logger),
		Projects:     projectrepo.NewPostgres(pool, logger),
		Services:     servicerepo.NewPostgres(pool, logger),
		Posts:        postrepo.NewPostgres(pool, logger),
		FAQs:         faqrepo.NewPostgres(pool, logger),
		ProcessSteps: steprepo.NewPostgres(pool, logger),
		Ux:           uxrepo.NewPostgres(pool, logger),
		Testimonials: testimonialrepo.NewPostgres(pool, logger),
	}
}
