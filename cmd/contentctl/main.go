// Command contentctl inspects studio content the way the site renderers see it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studio-content/internal/config"
	"studio-content/internal/db"
	"studio-content/internal/domain"
	"studio-content/internal/logging"
	"studio-content/internal/migrate"
	"studio-content/internal/nav"
	"studio-content/internal/service/content"
)

// reader is the part of the content service the commands use.
type reader interface {
	GetNavigablePages(ctx context.Context) []domain.NavigablePageInfo
	GetAllPublishedPosts(ctx context.Context, limit int) []domain.PostCardItem
	GetPostsByTag(ctx context.Context, tagSlug string, limit int) []domain.PostCardItem
	PageView(ctx context.Context, slug string) *content.PageView
}

// backend opens the content reader and reports the schema version.
type backend interface {
	Open(ctx context.Context) (reader, error)
	SchemaVersion(ctx context.Context) (uint, bool, error)
}

func main() {
	b := &postgresBackend{}
	err := newRootCmd(b).Execute()
	b.Close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(b backend) *cobra.Command {
	root := &cobra.Command{
		Use:          "contentctl",
		Short:        "Inspect studio content",
		SilenceUsage: true,
	}

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "List navigable pages in navigation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := b.Open(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tTITLE\tCATEGORY\tHREF")
			for _, p := range r.GetNavigablePages(cmd.Context()) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Slug, p.Title, nav.CategoryLabel(p.PageType), nav.MakeHref("/", p.Slug))
			}
			return w.Flush()
		},
	}

	pageCmd := &cobra.Command{
		Use:   "page <slug>",
		Short: "Print a page as the renderer receives it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := b.Open(cmd.Context())
			if err != nil {
				return err
			}
			v := r.PageView(cmd.Context(), args[0])
			if v == nil {
				return fmt.Errorf("page %q not found", args[0])
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}

	navCmd := &cobra.Command{
		Use:   "nav <slug>",
		Short: "Show the previous and next pages around a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := b.Open(cmd.Context())
			if err != nil {
				return err
			}
			links := nav.PageNeighbors(r.GetNavigablePages(cmd.Context()), args[0])
			out := cmd.OutOrStdout()
			printLink(out, "previous", links.Previous)
			printLink(out, "next", links.Next)
			return nil
		},
	}

	var (
		tag   string
		limit int
	)
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := b.Open(cmd.Context())
			if err != nil {
				return err
			}
			var posts []domain.PostCardItem
			if tag != "" {
				posts = r.GetPostsByTag(cmd.Context(), tag, limit)
			} else {
				posts = r.GetAllPublishedPosts(cmd.Context(), limit)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PUBLISHED\tSLUG\tTITLE")
			for _, p := range posts {
				published := "-"
				if p.PublishedAt != nil {
					published = p.PublishedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", published, p.Slug, p.Title)
			}
			return w.Flush()
		},
	}
	postsCmd.Flags().StringVar(&tag, "tag", "", "only posts with this tag slug")
	postsCmd.Flags().IntVar(&limit, "limit", 0, "maximum number of posts (0 for all)")

	hrefCmd := &cobra.Command{
		Use:   "href <base> <slug>",
		Short: "Join a base path and a slug into a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), nav.MakeHref(args[0], args[1]))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "schema-version",
		Short: "Print the applied migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := b.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			suffix := ""
			if dirty {
				suffix = " (dirty)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d%s\n", version, suffix)
			return nil
		},
	}

	root.AddCommand(pagesCmd, pageCmd, navCmd, postsCmd, hrefCmd, versionCmd)
	return root
}

func printLink(w io.Writer, label string, l *domain.NavLinkInfo) {
	if l == nil {
		fmt.Fprintf(w, "%-8s  none\n", label)
		return
	}
	fmt.Fprintf(w, "%-8s  %s (%s) %s\n", label, l.Title, l.CategoryLabel, nav.MakeHref("/", l.Slug))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// postgresBackend connects on first use so commands like href run offline.
type postgresBackend struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	svc    *content.Service
}

func (b *postgresBackend) connect(ctx context.Context) error {
	if b.pool != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New("contentctl", cfg.LogLevel)
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, cfg.DBConnString, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	b.pool, b.logger = pool, logger
	b.svc = content.New(content.PostgresRepositories(pool, logger), content.Options{
		HomeSlug:      cfg.HomeSlug,
		FeaturedLimit: cfg.FeaturedLimit,
		PostsLimit:    cfg.PostsLimit,
	}, logger)
	return nil
}

func (b *postgresBackend) Open(ctx context.Context) (reader, error) {
	if err := b.connect(ctx); err != nil {
		return nil, err
	}
	return b.svc, nil
}

func (b *postgresBackend) SchemaVersion(ctx context.Context) (uint, bool, error) {
	if err := b.connect(ctx); err != nil {
		return 0, false, err
	}
	return migrate.Version(ctx, b.pool)
}

func (b *postgresBackend) Close() {
	if b.pool == nil {
		return
	}
	b.pool.Close()
	_ = b.logger.Sync()
}
