package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"go.uber.org/zap"

	"studio-content/internal/domain"
	"studio-content/internal/logging"
)

type FAQWriter interface {
	UpsertCategory(ctx context.Context, c domain.FAQCategoryRow) (string, error)
	UpsertFAQ(ctx context.Context, categoryID string, f domain.FAQRow) error
}

// Result counts what a run wrote.
type Result struct {
	Categories int
	FAQs       int
}

// CSVImporter reads FAQ spreadsheets exported by the editors.
//
// A row with category.slug opens a category; following rows belong to it.
// A row with a question opens an FAQ. A row carrying only an answer adds
// another paragraph to the FAQ above it.
type CSVImporter struct {
	reader *csv.Reader
	writer FAQWriter
	logger *zap.Logger
}

func NewCSVImporter(r io.Reader, w FAQWriter, logger *zap.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		writer: w,
		logger: logging.OrNop(logger),
	}
}

type csvRow struct {
	CategorySlug string
	CategoryName string
	Slug         string
	Question     string
	Answer       string
	Featured     bool
}

type pendingFAQ struct {
	row        domain.FAQRow
	paragraphs []string
	line       int
}

var validSlug = validation.By(func(v any) error {
	if s, _ := v.(string); !slug.IsValid(s) {
		return errors.New("must be a lowercase dash-separated slug")
	}
	return nil
})

// Run parses CSV rows and upserts categories and FAQs in file order.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["question"]; !ok {
		return res, errors.New("missing required column \"question\"")
	}

	var (
		categoryID string
		current    *pendingFAQ
		position   int
		line       = 1
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		if err := i.save(ctx, categoryID, current); err != nil {
			return err
		}
		res.FAQs++
		current = nil
		return nil
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read row: %w", err)
		}
		line++

		row, err := parseRow(record, index)
		if err != nil {
			return res, fmt.Errorf("line %d: %w", line, err)
		}
		if row == nil {
			continue
		}

		if row.CategorySlug != "" {
			if err := flush(); err != nil {
				return res, err
			}
			name := row.CategoryName
			if name == "" {
				name = row.CategorySlug
			}
			id, err := i.writer.UpsertCategory(ctx, domain.FAQCategoryRow{
				Name:      name,
				Slug:      row.CategorySlug,
				SortOrder: res.Categories,
			})
			if err != nil {
				return res, fmt.Errorf("line %d: %w", line, err)
			}
			categoryID = id
			position = 0
			res.Categories++
		}

		if row.Question != "" {
			if err := flush(); err != nil {
				return res, err
			}
			faqSlug := row.Slug
			if faqSlug == "" {
				if faqSlug, err = slug.Normalize(row.Question); err != nil {
					return res, fmt.Errorf("line %d: derive slug: %w", line, err)
				}
			}
			current = &pendingFAQ{
				row: domain.FAQRow{
					Slug:      faqSlug,
					Question:  row.Question,
					SortOrder: position,
					Featured:  row.Featured,
				},
				line: line,
			}
			position++
		}

		// Continuation rows extend the answer of the FAQ above.
		if row.Answer != "" {
			if current == nil {
				return res, fmt.Errorf("line %d: answer without a question", line)
			}
			current.paragraphs = append(current.paragraphs, row.Answer)
		}
	}

	if err := flush(); err != nil {
		return res, err
	}
	i.logger.Info("faq import finished", zap.Int("categories", res.Categories), zap.Int("faqs", res.FAQs))
	return res, nil
}

func (i *CSVImporter) save(ctx context.Context, categoryID string, p *pendingFAQ) error {
	f := p.row
	err := validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required),
		validation.Field(&f.Slug, validation.Required, validSlug),
	)
	if err != nil {
		return fmt.Errorf("line %d: invalid faq %q: %w", p.line, f.Slug, err)
	}

	if len(p.paragraphs) > 0 {
		answer, err := json.Marshal(domain.TextDocument(p.paragraphs...))
		if err != nil {
			return fmt.Errorf("line %d: encode answer: %w", p.line, err)
		}
		f.Answer = answer
	}

	if err := i.writer.UpsertFAQ(ctx, categoryID, f); err != nil {
		return fmt.Errorf("line %d: %w", p.line, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	row := &csvRow{
		CategorySlug: pick(record, index, "category.slug"),
		CategoryName: pick(record, index, "category.name"),
		Slug:         pick(record, index, "slug"),
		Question:     pick(record, index, "question"),
		Answer:       pick(record, index, "answer"),
	}
	if featured := pick(record, index, "featured"); featured != "" {
		v, err := strconv.ParseBool(featured)
		if err != nil {
			return nil, fmt.Errorf("featured %q is not a boolean", featured)
		}
		row.Featured = v
	}
	if row.CategorySlug == "" && row.Question == "" && row.Answer == "" {
		return nil, nil
	}
	return row, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
