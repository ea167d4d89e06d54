package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

type Pipeline struct {
	FilesRepo     repository.BoletoFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Strategy      string
	Log           *slog.Logger
}

func NewPipeline(files repository.BoletoFileRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, strategy string, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if strategy == "" {
		strategy = "rules"
	}
	return &Pipeline{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Strategy: strategy, Log: log}
}

// Run starts an extract_job, acquires text from the stored document,
// and persists it. The parse stage is NOT called here.
func (p *Pipeline) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.CompanyID, row.ID, format, p.Strategy)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	// acquisition tools read from disk; the stored bytes are the
	// source of truth, the original path may be long gone
	path, cleanup, err := materialize(row.SourcePath, row.FileExt, row.Content)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, err.Error())
		return job.ID, extract.TextExtractionResult{}, err
	}
	defer cleanup()

	res, err := p.TextExtractor.Extract(ctx, path)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, constants.MsgPdfProcessingError, err.Error())
		return job.ID, res, err
	}

	if err := p.JobsRepo.FinishTextSuccess(ctx, job.ID, res.Text, res.Confidence); err != nil {
		return job.ID, res, err
	}

	p.Log.Info("textextract.ok",
		"job_id", job.ID, "file_id", row.ID,
		"method", res.Method, "pages", res.Pages, "confidence", res.Confidence,
	)
	return job.ID, res, nil
}

// materialize returns a readable path for the document, writing the
// stored bytes to a temp file when the ingest path no longer exists.
func materialize(sourcePath, ext string, content []byte) (string, func(), error) {
	if _, err := os.Stat(sourcePath); err == nil {
		return sourcePath, func() {}, nil
	}
	f, err := os.CreateTemp("", "bt-src-*."+constants.NormalizeExt(ext))
	if err != nil {
		return "", nil, fmt.Errorf("materialize document: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", nil, fmt.Errorf("materialize document: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", nil, fmt.Errorf("materialize document: %w", err)
	}
	name := f.Name()
	return name, func() { _ = os.Remove(filepath.Clean(name)) }, nil
}
