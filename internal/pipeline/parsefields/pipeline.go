package parsefields

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

// Config holds behavior flags for the parse stage.
type Config struct {
	Strategy string // "rules" | "ai"
}

type Pipeline struct {
	Logger      *slog.Logger
	Cfg         Config
	JobsRepo    repository.ExtractJobRepository
	FilesRepo   repository.BoletoFileRepository
	BoletosRepo repository.BoletoRepository
	Extractor   extract.FieldExtractor
	// Fallback runs when the primary extractor errors. Wired to the
	// rules engine when the primary is a model.
	Fallback extract.FieldExtractor
}

func NewPipeline(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	files repository.BoletoFileRepository,
	boletos repository.BoletoRepository,
	fe extract.FieldExtractor,
	fallback extract.FieldExtractor,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "rules"
	}
	return &Pipeline{
		Logger:      logger,
		Cfg:         cfg,
		JobsRepo:    jobs,
		FilesRepo:   files,
		BoletosRepo: boletos,
		Extractor:   fe,
		Fallback:    fallback,
	}
}

// Run executes the field-parse stage for a job that already holds
// acquired text. Effects: writes extracted_json on the job, persists a
// boleto in TO_PAY, and links file -> boleto.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status != string(constants.JobStatusTextOK) || job.SourceText == nil {
		return uuid.Nil, fmt.Errorf("job not ready for parse: status=%s text_empty=%t", job.Status, job.SourceText == nil)
	}
	file, err := p.FilesRepo.GetByID(ctx, job.FileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load file: %w", err)
	}

	p.Logger.Info("parsefields.start",
		"job_id", job.ID, "file_id", file.ID,
		"strategy", p.Cfg.Strategy, "text_bytes", len(*job.SourceText),
	)

	res, err := p.Extractor.ExtractFields(ctx, *job.SourceText, file.Filename)
	if err != nil && p.Fallback != nil {
		p.Logger.Warn("primary extractor failed, falling back to rules", "job_id", job.ID, "error", err)
		res, err = p.Fallback.ExtractFields(ctx, *job.SourceText, file.Filename)
	}
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, err.Error())
		return uuid.Nil, fmt.Errorf("extract fields: %w", err)
	}

	x := res.Extraction
	if gateErr := fields.Gate(x); gateErr != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, gateErr.Key, gateErr.Detail)
		p.Logger.Warn("parsefields.rejected", "job_id", job.ID, "key", gateErr.Key)
		return uuid.Nil, gateErr
	}

	extractedJSON, err := fields.ValidateJSON(x)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, err.Error())
		return uuid.Nil, fmt.Errorf("validate extraction: %w", err)
	}

	boleto, err := p.BoletosRepo.Create(ctx, repository.CreateBoletoRequest{
		CompanyID:  file.CompanyID,
		Extraction: x,
	})
	if err != nil {
		if common.IsDuplicate(err) {
			_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgDuplicateBoleto, err.Error())
			p.Logger.Warn("parsefields.duplicate", "job_id", job.ID, "barcode", *x.Barcode)
			return uuid.Nil, err
		}
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, err.Error())
		return uuid.Nil, fmt.Errorf("persist boleto: %w", err)
	}

	// idempotent file -> boleto link
	if err := p.FilesRepo.SetBoletoID(ctx, file.ID, boleto.ID); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, fmt.Sprintf("link file->boleto: %v", err))
		return boleto.ID, err
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, extractedJSON, boleto.ID); err != nil {
		return boleto.ID, err
	}

	p.Logger.Info("parsefields.ok",
		"job_id", job.ID, "boleto_id", boleto.ID,
		"strategy", res.Strategy, "amount", boleto.Amount,
		"due_date", boleto.DueDate, "file", boleto.FileName,
	)
	return boleto.ID, nil
}
