package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Block types understood by the renderers. Anything else is carried as-is.
const (
	BlockHeader    = "header"
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockQuote     = "quote"
	BlockImage     = "image"
	BlockCode      = "code"
	BlockDelimiter = "delimiter"
)

// BlockDocument is the rich-text format used for post bodies and FAQ answers.
type BlockDocument struct {
	Time    int64   `json:"time,omitempty"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version,omitempty"`
}

type Block struct {
	ID   string          `json:"id,omitempty"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type HeaderData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

type ParagraphData struct {
	Text string `json:"text"`
}

type ListData struct {
	Style string   `json:"style"`
	Items []string `json:"items"`
}

type QuoteData struct {
	Text      string `json:"text"`
	Caption   string `json:"caption"`
	Alignment string `json:"alignment"`
}

type ImageData struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type CodeData struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// ParseBlockDocument accepts a full document, a bare array of blocks, or an
// empty/null value (which yields an empty document).
func ParseBlockDocument(raw json.RawMessage) (BlockDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return BlockDocument{}, nil
	}
	if trimmed[0] == '[' {
		var blocks []Block
		if err := json.Unmarshal(trimmed, &blocks); err != nil {
			return BlockDocument{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
		return BlockDocument{Blocks: blocks}, nil
	}
	var doc BlockDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return BlockDocument{}, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return doc, nil
}

// TextDocument builds a document of plain paragraphs.
func TextDocument(paragraphs ...string) BlockDocument {
	doc := BlockDocument{Blocks: make([]Block, 0, len(paragraphs))}
	for _, p := range paragraphs {
		data, _ := json.Marshal(ParagraphData{Text: p})
		doc.Blocks = append(doc.Blocks, Block{Type: BlockParagraph, Data: data})
	}
	return doc
}

// Validate checks that known block types carry their required fields.
// Unknown block types pass.
func (d BlockDocument) Validate() error {
	for i, b := range d.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.Type, err)
		}
	}
	return nil
}

func (b Block) Validate() error {
	if err := validation.Validate(b.Type, validation.Required); err != nil {
		return err
	}
	switch b.Type {
	case BlockHeader:
		var d HeaderData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d,
			validation.Field(&d.Text, validation.Required),
			validation.Field(&d.Level, validation.Min(1), validation.Max(6)),
		)
	case BlockParagraph:
		var d ParagraphData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d, validation.Field(&d.Text, validation.Required))
	case BlockList:
		var d ListData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d,
			validation.Field(&d.Style, validation.In("ordered", "unordered")),
			validation.Field(&d.Items, validation.Required),
		)
	case BlockQuote:
		var d QuoteData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d, validation.Field(&d.Text, validation.Required))
	case BlockImage:
		var d ImageData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d, validation.Field(&d.URL, validation.Required))
	case BlockCode:
		var d CodeData
		if err := b.decode(&d); err != nil {
			return err
		}
		return validation.ValidateStruct(&d, validation.Field(&d.Code, validation.Required))
	}
	return nil
}

// Header decodes the block data as a header. ok is false for other types.
func (b Block) Header() (d HeaderData, ok bool) {
	ok = b.Type == BlockHeader && b.decode(&d) == nil
	return d, ok
}

func (b Block) Paragraph() (d ParagraphData, ok bool) {
	ok = b.Type == BlockParagraph && b.decode(&d) == nil
	return d, ok
}

func (b Block) List() (d ListData, ok bool) {
	ok = b.Type == BlockList && b.decode(&d) == nil
	return d, ok
}

func (b Block) Quote() (d QuoteData, ok bool) {
	ok = b.Type == BlockQuote && b.decode(&d) == nil
	return d, ok
}

func (b Block) Image() (d ImageData, ok bool) {
	ok = b.Type == BlockImage && b.decode(&d) == nil
	return d, ok
}

func (b Block) Code() (d CodeData, ok bool) {
	ok = b.Type == BlockCode && b.decode(&d) == nil
	return d, ok
}

func (b Block) decode(v any) error {
	if len(b.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(b.Data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}
