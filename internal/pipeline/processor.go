package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	parse "github.com/brpayflow/boleto-tracker/internal/pipeline/parsefields"
	"github.com/brpayflow/boleto-tracker/internal/pipeline/textextract"
)

// Processor coordinates text acquisition then field parse for a
// stored document.
type Processor struct {
	Logger *slog.Logger
	Text   *textextract.Pipeline
	Parse  *parse.Pipeline
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parse.Pipeline) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessFile acquires text for a fileID (creating an extract_job),
// then parses the fields and persists the boleto. Returns the jobID
// started by the text stage and, on success, the boleto ID.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	jobID, textRes, err := p.Text.Run(ctx, fileID)
	if err != nil {
		p.Logger.Error("processor.text.failed", "file_id", fileID, "err", err)
		return jobID, uuid.Nil, err
	}
	p.Logger.Info("processor.text.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", textRes.Method,
		"pages", textRes.Pages,
		"confidence", textRes.Confidence,
	)

	boletoID, err := p.Parse.Run(ctx, jobID)
	if err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, uuid.Nil, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID, "boleto_id", boletoID)
	return jobID, boletoID, nil
}
