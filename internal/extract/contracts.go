package extract

import (
	"context"
	"time"

	"github.com/brpayflow/boleto-tracker/internal/fields"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// FieldExtractor is Stage 2: text -> structured boleto fields
// (deterministic rules or a model).
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text, fileName string) (FieldsResult, error)
}

type FieldsResult struct {
	Extraction fields.Extraction
	Strategy   string // "rules" | "ai"
	ModelName  string // set when Strategy == "ai"
}
