package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-slug"

	"studio-content/internal/domain"
)

type savedFAQ struct {
	categoryID string
	faq        domain.FAQRow
}

type stubWriter struct {
	categories []domain.FAQCategoryRow
	faqs       []savedFAQ
}

func (s *stubWriter) UpsertCategory(_ context.Context, c domain.FAQCategoryRow) (string, error) {
	s.categories = append(s.categories, c)
	return "cat-" + c.Slug, nil
}

func (s *stubWriter) UpsertFAQ(_ context.Context, categoryID string, f domain.FAQRow) error {
	s.faqs = append(s.faqs, savedFAQ{categoryID: categoryID, faq: f})
	return nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `category.slug,category.name,slug,question,answer,featured
general,General,,How long does a project take?,Most projects take six to ten weeks.,true
,,,,Larger rebuilds can run longer.,
,,pricing,What does it cost?,It depends on scope.,
billing,,,Do you invoice monthly?,Yes.,
`
	w := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), w, nil)

	res, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if res.Categories != 2 || res.FAQs != 3 {
		t.Fatalf("expected 2 categories and 3 faqs, got %+v", res)
	}

	if w.categories[0].Name != "General" || w.categories[0].SortOrder != 0 {
		t.Fatalf("unexpected first category: %+v", w.categories[0])
	}
	if w.categories[1].Name != "billing" || w.categories[1].SortOrder != 1 {
		t.Fatalf("expected slug fallback for unnamed category: %+v", w.categories[1])
	}

	first := w.faqs[0]
	if first.categoryID != "cat-general" || first.faq.Slug != "how-long-does-a-project-take" || !first.faq.Featured {
		t.Fatalf("unexpected first faq: %+v", first)
	}
	doc, err := domain.ParseBlockDocument(first.faq.Answer)
	if err != nil {
		t.Fatalf("parse answer: %v", err)
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected continuation row to add a paragraph, got %d blocks", len(doc.Blocks))
	}
	if p, ok := doc.Blocks[1].Paragraph(); !ok || p.Text != "Larger rebuilds can run longer." {
		t.Fatalf("unexpected second paragraph: %+v", doc.Blocks[1])
	}

	if w.faqs[1].faq.Slug != "pricing" || w.faqs[1].faq.SortOrder != 1 {
		t.Fatalf("expected explicit slug and position 1: %+v", w.faqs[1].faq)
	}
	if w.faqs[2].categoryID != "cat-billing" || w.faqs[2].faq.SortOrder != 0 {
		t.Fatalf("expected position reset in new category: %+v", w.faqs[2])
	}
}

func TestCSVImporter_RejectsOrphanAnswer(t *testing.T) {
	csvData := `category.slug,question,answer
general,,Stray answer
`
	_, err := NewCSVImporter(strings.NewReader(csvData), &stubWriter{}, nil).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line-numbered error, got %v", err)
	}
}

func TestCSVImporter_RejectsBadSlug(t *testing.T) {
	csvData := `slug,question,answer
Not A Slug,Why?,Because.
`
	w := &stubWriter{}
	_, err := NewCSVImporter(strings.NewReader(csvData), w, nil).Run(context.Background())
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if len(w.faqs) != 0 {
		t.Fatalf("expected nothing written, got %d", len(w.faqs))
	}
}

func TestCSVImporter_MissingQuestionColumn(t *testing.T) {
	_, err := NewCSVImporter(strings.NewReader("slug,answer\nx,y\n"), &stubWriter{}, nil).Run(context.Background())
	if err == nil {
		t.Fatalf("expected missing column error")
	}
}

func TestCSVImporter_DerivesSlugFromQuestion(t *testing.T) {
	csvData := `category.slug,question,answer
precios,¿Cuánto cuesta un proyecto?,Depende del alcance.
`
	w := &stubWriter{}
	if _, err := NewCSVImporter(strings.NewReader(csvData), w, nil).Run(context.Background()); err != nil {
		t.Fatalf("import run: %v", err)
	}
	if len(w.faqs) != 1 {
		t.Fatalf("expected one faq, got %d", len(w.faqs))
	}
	got := w.faqs[0].faq.Slug
	if !slug.IsValid(got) {
		t.Fatalf("derived slug %q is not a valid slug", got)
	}
	if !strings.Contains(got, "proyecto") {
		t.Fatalf("derived slug %q lost the question's words", got)
	}
	want, err := slug.Normalize("¿Cuánto cuesta un proyecto?")
	if err != nil || got != want {
		t.Fatalf("derived slug %q, want normalized %q (err %v)", got, want, err)
	}
}

func TestCSVImporter_RejectsBadFeaturedFlag(t *testing.T) {
	csvData := `slug,question,answer,featured
scope,What is in scope?,Design and build.,true
timeline,How long?,Six weeks.,yes please
`
	w := &stubWriter{}
	_, err := NewCSVImporter(strings.NewReader(csvData), w, nil).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "line 3") || !strings.Contains(err.Error(), "featured") {
		t.Fatalf("expected line-numbered featured error, got %v", err)
	}
	for _, f := range w.faqs {
		if f.faq.Slug == "timeline" {
			t.Fatalf("row with a bad featured flag was written: %+v", f.faq)
		}
	}
}
