package extract

import (
	"context"

	"github.com/brpayflow/boleto-tracker/internal/fields"
)

// RulesAdapter runs the deterministic regex engine as a FieldExtractor.
type RulesAdapter struct {
	engine *fields.Extractor
}

func NewRulesAdapter(opts fields.Options) *RulesAdapter {
	return &RulesAdapter{engine: fields.NewExtractor(opts)}
}

func (a *RulesAdapter) ExtractFields(_ context.Context, text, fileName string) (FieldsResult, error) {
	return FieldsResult{
		Extraction: a.engine.Extract(text, fileName),
		Strategy:   "rules",
	}, nil
}
