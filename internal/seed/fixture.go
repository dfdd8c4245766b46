package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"studio-content/internal/domain"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the studio content written by Apply. References between
// entities are by slug (testimonials by key).
type Fixture struct {
	Icons         []IconSeed        `yaml:"icons"`
	Pages         []PageSeed        `yaml:"pages"`
	Services      []ServiceSeed     `yaml:"services"`
	Testimonials  []TestimonialSeed `yaml:"testimonials"`
	Projects      []ProjectSeed     `yaml:"projects"`
	Tags          []domain.Tag      `yaml:"tags"`
	Posts         []PostSeed        `yaml:"posts"`
	FAQCategories []FAQCategorySeed `yaml:"faq_categories"`
	ProcessSteps  []ItemSeed        `yaml:"process_steps"`
	UxProblems    []UxSeed          `yaml:"ux_problems"`
	UxSolutions   []UxSeed          `yaml:"ux_solutions"`
}

type IconSeed struct {
	Name    string `yaml:"name"`
	Library string `yaml:"library"`
}

type PageSeed struct {
	Slug            string          `yaml:"slug"`
	Title           string          `yaml:"title"`
	PageType        domain.PageType `yaml:"page_type"`
	Status          domain.Status   `yaml:"status"`
	SortOrder       int             `yaml:"sort_order"`
	MetaDescription string          `yaml:"meta_description"`
	OGImageURL      string          `yaml:"og_image_url"`
	Content         any             `yaml:"content"`
	FAQs            []string        `yaml:"faqs"`
	UxProblems      []string        `yaml:"ux_problems"`
	UxSolutions     []string        `yaml:"ux_solutions"`
}

type ServiceSeed struct {
	Slug         string              `yaml:"slug"`
	Title        string              `yaml:"title"`
	Description  string              `yaml:"description"`
	OfferingType domain.OfferingType `yaml:"offering_type"`
	Featured     bool                `yaml:"featured"`
	SortOrder    int                 `yaml:"sort_order"`
	Icon         string              `yaml:"icon"`
	Content      any                 `yaml:"content"`
}

type TestimonialSeed struct {
	Key         string   `yaml:"key"`
	Quote       string   `yaml:"quote"`
	AuthorName  string   `yaml:"author_name"`
	AuthorTitle string   `yaml:"author_title"`
	Company     string   `yaml:"company"`
	AvatarURL   string   `yaml:"avatar_url"`
	Featured    bool     `yaml:"featured"`
	SortOrder   int      `yaml:"sort_order"`
	Services    []string `yaml:"services"`
}

type ProjectSeed struct {
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	ClientName   string   `yaml:"client_name"`
	ImageURL     string   `yaml:"image_url"`
	Featured     bool     `yaml:"featured"`
	SortOrder    int      `yaml:"sort_order"`
	Content      any      `yaml:"content"`
	Services     []string `yaml:"services"`
	Testimonials []string `yaml:"testimonials"`
}

type PostSeed struct {
	Slug          string        `yaml:"slug"`
	Title         string        `yaml:"title"`
	Excerpt       string        `yaml:"excerpt"`
	CoverImageURL string        `yaml:"cover_image_url"`
	Status        domain.Status `yaml:"status"`
	PublishedAt   *time.Time    `yaml:"published_at"`
	Featured      bool          `yaml:"featured"`
	SortOrder     int           `yaml:"sort_order"`
	Tags          []string      `yaml:"tags"`
	Content       any           `yaml:"content"`
}

type FAQCategorySeed struct {
	Slug      string    `yaml:"slug"`
	Name      string    `yaml:"name"`
	SortOrder int       `yaml:"sort_order"`
	FAQs      []FAQSeed `yaml:"faqs"`
}

type FAQSeed struct {
	Slug     string `yaml:"slug"`
	Question string `yaml:"question"`
	// Answer is plain text; each blank-line separated paragraph becomes a block.
	Answer    string `yaml:"answer"`
	Featured  bool   `yaml:"featured"`
	SortOrder int    `yaml:"sort_order"`
}

// ItemSeed covers process steps and the shared UX item columns.
type ItemSeed struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Featured    bool   `yaml:"featured"`
	SortOrder   int    `yaml:"sort_order"`
	Content     any    `yaml:"content"`
}

type UxSeed struct {
	ItemSeed  `yaml:",inline"`
	Solutions []string `yaml:"solutions"`
}

// Default returns the fixture bundled with the binary.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// LoadFile reads a fixture from disk.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

var (
	validPageType = validation.By(func(v any) error {
		if t, _ := v.(domain.PageType); !t.Valid() {
			return errors.New("unknown page type")
		}
		return nil
	})
	validStatus = validation.By(func(v any) error {
		if s, _ := v.(domain.Status); s != "" && !s.Valid() {
			return errors.New("unknown status")
		}
		return nil
	})
	validOffering = validation.By(func(v any) error {
		if o, _ := v.(domain.OfferingType); o != "" && !o.Valid() {
			return errors.New("unknown offering type")
		}
		return nil
	})
	// Page content must be a JSON object the page renderers can read.
	validPageContent = validation.By(func(v any) error {
		raw, err := contentJSON(v)
		if err != nil {
			return err
		}
		_, err = domain.DecodePageContent(raw)
		return err
	})
	// Post bodies are block documents.
	validBlocks = validation.By(func(v any) error {
		raw, err := contentJSON(v)
		if err != nil {
			return err
		}
		doc, err := domain.ParseBlockDocument(raw)
		if err != nil {
			return err
		}
		return doc.Validate()
	})
)

func contentJSON(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidContent, err)
	}
	return raw, nil
}

// Validate checks required fields and enum values. Dangling references are
// reported by Apply, which knows what already exists.
func (fx *Fixture) Validate() error {
	for i := range fx.Pages {
		p := &fx.Pages[i]
		if p.PageType == "" {
			p.PageType = domain.PageTypeStandard
		}
		err := validation.ValidateStruct(p,
			validation.Field(&p.Slug, validation.Required),
			validation.Field(&p.Title, validation.Required),
			validation.Field(&p.PageType, validPageType),
			validation.Field(&p.Status, validStatus),
			validation.Field(&p.Content, validPageContent),
		)
		if err != nil {
			return fmt.Errorf("page %q: %w", p.Slug, err)
		}
	}
	for i := range fx.Services {
		s := &fx.Services[i]
		err := validation.ValidateStruct(s,
			validation.Field(&s.Slug, validation.Required),
			validation.Field(&s.Title, validation.Required),
			validation.Field(&s.OfferingType, validOffering),
		)
		if err != nil {
			return fmt.Errorf("service %q: %w", s.Slug, err)
		}
	}
	for i := range fx.Testimonials {
		t := &fx.Testimonials[i]
		err := validation.ValidateStruct(t,
			validation.Field(&t.Key, validation.Required),
			validation.Field(&t.Quote, validation.Required),
			validation.Field(&t.AuthorName, validation.Required),
		)
		if err != nil {
			return fmt.Errorf("testimonial %q: %w", t.Key, err)
		}
	}
	for i := range fx.Posts {
		p := &fx.Posts[i]
		err := validation.ValidateStruct(p,
			validation.Field(&p.Slug, validation.Required),
			validation.Field(&p.Title, validation.Required),
			validation.Field(&p.Status, validStatus),
			validation.Field(&p.Content, validBlocks),
		)
		if err != nil {
			return fmt.Errorf("post %q: %w", p.Slug, err)
		}
	}
	for _, c := range fx.FAQCategories {
		if c.Slug == "" || c.Name == "" {
			return fmt.Errorf("faq category %q: slug and name are required", c.Slug)
		}
		for _, f := range c.FAQs {
			if f.Slug == "" || f.Question == "" {
				return fmt.Errorf("faq %q: slug and question are required", f.Slug)
			}
		}
	}
	items := append([]ItemSeed{}, fx.ProcessSteps...)
	for _, u := range fx.UxProblems {
		items = append(items, u.ItemSeed)
	}
	for _, u := range fx.UxSolutions {
		items = append(items, u.ItemSeed)
	}
	for _, it := range items {
		if it.Slug == "" || it.Title == "" {
			return fmt.Errorf("item %q: slug and title are required", it.Slug)
		}
	}
	return nil
}
