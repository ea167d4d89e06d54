package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/fields"
)

// GeminiExtractor implements extract.FieldExtractor against the Gemini
// API. It receives acquired page text, never the source document.
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiExtractor(ctx context.Context, cfg common.ExtractConfig, logger *slog.Logger) (*GeminiExtractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiExtractor{client: client, model: cfg.GeminiModel, logger: logger}, nil
}

func (g *GeminiExtractor) ExtractFields(ctx context.Context, text, fileName string) (extract.FieldsResult, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: boletoPrompt + text},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return extract.FieldsResult{}, fmt.Errorf("generate content: %w", err)
	}
	rawText := resp.Text()
	if rawText == "" {
		return extract.FieldsResult{}, fmt.Errorf("empty response from model")
	}

	clean := cleanModelJSON(rawText)
	var x fields.Extraction
	if err := json.Unmarshal([]byte(clean), &x); err != nil {
		g.logger.Error("model returned unparseable json", "model", g.model, "error", err)
		return extract.FieldsResult{}, fmt.Errorf("unmarshal model response: %w", err)
	}
	x.FileName = fileName
	coerceModelOutput(&x)

	return extract.FieldsResult{
		Extraction: x,
		Strategy:   "ai",
		ModelName:  g.model,
	}, nil
}

// coerceModelOutput enforces the hard format rules the schema will
// check anyway, so a sloppy but recoverable answer is not rejected.
func coerceModelOutput(x *fields.Extraction) {
	if x.Barcode != nil {
		digits := keepDigits(*x.Barcode)
		if len(digits) == 47 || len(digits) == 48 {
			x.Barcode = &digits
		} else {
			x.Barcode = nil
		}
	}
	if x.Recipient != nil && strings.TrimSpace(*x.Recipient) == "" {
		x.Recipient = nil
	}
	if x.Drawee != nil && strings.TrimSpace(*x.Drawee) == "" {
		x.Drawee = nil
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
