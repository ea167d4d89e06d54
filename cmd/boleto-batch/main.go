package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/export"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/ingest"
	"github.com/brpayflow/boleto-tracker/internal/ocr"
	processor "github.com/brpayflow/boleto-tracker/internal/pipeline"
	"github.com/brpayflow/boleto-tracker/internal/pipeline/parsefields"
	"github.com/brpayflow/boleto-tracker/internal/pipeline/textextract"
	repo "github.com/brpayflow/boleto-tracker/internal/repository"
	"github.com/google/uuid"
)

// boleto-batch ingests a directory of payment slips into a local
// database, runs the extraction pipeline on each, and writes an XLSX
// summary. Useful for one-shot processing without the daemon.
func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir     = flag.String("dir", "", "directory with boleto documents (required)")
		out     = flag.String("out", "", "output XLSX path (defaults to <dir>/../boletos.xlsx)")
		company = flag.String("company", "batch", "company name to ingest under")
		fromStr = flag.String("from", "", "due-date window start YYYY-MM-DD")
		toStr   = flag.String("to", "", "due-date window end YYYY-MM-DD")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "error: --dir is required")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "boletos.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		t, err := time.Parse("2006-01-02", *fromStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &t
	}
	if *toStr != "" {
		t, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &t
	}

	dsn := os.Getenv("DB_URL")
	if *inmem || dsn == "" {
		dsn = "sqlite://file:boletos?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dsn,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	companiesRepo := repo.NewCompanyRepository(entc, logger)
	boletosRepo := repo.NewBoletoRepository(entc, logger)
	filesRepo := repo.NewBoletoFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	c, err := companiesRepo.Create(ctx, *company)
	if err != nil {
		logger.Error("create company", "name", *company, "error", err)
		os.Exit(1)
	}

	ocrCfg := common.LoadConfig().OCR
	textExtractor := extract.NewOCRAdapter(ocr.NewExtractor(ocr.Config{
		Pdftotext:     ocrCfg.Pdftotext,
		Pdftoppm:      ocrCfg.Pdftoppm,
		Tesseract:     ocrCfg.Tesseract,
		TesseractLang: ocrCfg.TesseractLang,
		DPI:           ocrCfg.DPI,
	}, logger), logger)
	textPipe := textextract.NewPipeline(filesRepo, jobsRepo, textExtractor, "rules", logger)
	parsePipe := parsefields.NewPipeline(logger, parsefields.Config{Strategy: "rules"},
		jobsRepo, filesRepo, boletosRepo, extract.NewRulesAdapter(fields.DefaultOptions()), nil)
	proc := processor.NewProcessor(logger, textPipe, parsePipe)

	ingestor := ingest.NewFSIngestor(companiesRepo, filesRepo, logger)
	results, stats, err := ingestor.IngestDirectory(ctx, c.ID, *dir, true)
	if err != nil {
		logger.Error("ingest directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("ingest done",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)

	var processed, failed int
	for _, r := range results {
		if r.Err != "" || r.Deduplicated || r.FileID == "" {
			continue
		}
		fileID, err := uuid.Parse(r.FileID)
		if err != nil {
			continue
		}
		if _, _, err := proc.ProcessFile(ctx, fileID); err != nil {
			logger.Warn("processing failed", "path", r.SourcePath, "error", err)
			failed++
			continue
		}
		processed++
	}
	logger.Info("processing done", "processed", processed, "failed", failed)

	xlsx, err := export.NewService(boletosRepo, logger).ExportBoletosXLSX(ctx, c.ID, "", from, to)
	if err != nil {
		logger.Error("export", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("write output", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d processed, %d failed)\n", *out, processed, failed)
}
