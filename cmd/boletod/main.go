package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	boletospb "github.com/brpayflow/boleto-tracker/gen/proto/boletos/v1"
	"github.com/brpayflow/boleto-tracker/internal/async"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/export"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/ingest"
	"github.com/brpayflow/boleto-tracker/internal/llm"
	"github.com/brpayflow/boleto-tracker/internal/ocr"
	processor "github.com/brpayflow/boleto-tracker/internal/pipeline"
	"github.com/brpayflow/boleto-tracker/internal/pipeline/parsefields"
	"github.com/brpayflow/boleto-tracker/internal/pipeline/textextract"
	repo "github.com/brpayflow/boleto-tracker/internal/repository"
	svc "github.com/brpayflow/boleto-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		os.Exit(1)
	}

	companiesRepo := repo.NewCompanyRepository(entc, logger)
	boletosRepo := repo.NewBoletoRepository(entc, logger)
	filesRepo := repo.NewBoletoFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	// Stage 1: document -> text
	textExtractor := extract.NewOCRAdapter(ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger), logger)
	textPipe := textextract.NewPipeline(filesRepo, jobsRepo, textExtractor, cfg.Extract.Strategy, logger)

	// Stage 2: text -> fields
	rules := extract.NewRulesAdapter(fields.Options{OCRSubstitution: cfg.Extract.OCRSubstitution})
	var fieldExtractor extract.FieldExtractor = rules
	var fallback extract.FieldExtractor
	if cfg.Extract.Strategy == "ai" {
		gemini, err := llm.NewGeminiExtractor(ctx, cfg.Extract, logger)
		if err != nil {
			logger.Error("failed to build gemini extractor", "error", err)
			os.Exit(1)
		}
		fieldExtractor = gemini
		fallback = rules
	}
	parsePipe := parsefields.NewPipeline(logger, parsefields.Config{Strategy: cfg.Extract.Strategy},
		jobsRepo, filesRepo, boletosRepo, fieldExtractor, fallback)

	proc := processor.NewProcessor(logger, textPipe, parsePipe)
	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(companiesRepo, filesRepo, logger)
	exporter := export.NewService(boletosRepo, logger)

	grpcServer := grpc.NewServer()
	boletosService := svc.NewBoletosService(companiesRepo, boletosRepo, exporter, logger)
	boletospb.RegisterBoletosServiceServer(grpcServer, boletosService)
	ingestionService := svc.NewIngestionService(ingestor, proc, companiesRepo, logger)
	boletospb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if len(cfg.Watcher.Roots) > 0 {
		companyID, err := uuid.Parse(cfg.Watcher.CompanyID)
		if err != nil {
			logger.Error("WATCH_COMPANY_ID must be a UUID", "value", cfg.Watcher.CompanyID)
			os.Exit(1)
		}
		go runWatcher(ctx, cfg.Watcher, companyID, ingestor, queue, logger)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("boletod listening", "addr", cfg.Server.GRPCAddr, "strategy", cfg.Extract.Strategy)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

// runWatcher ingests and processes documents dropped into the watched
// folders until ctx is cancelled.
func runWatcher(ctx context.Context, cfg common.WatcherConfig, companyID uuid.UUID, ingestor ingest.Ingestor, queue async.Queue, logger *slog.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Roots,
		InitialScan: true,
		Debounce:    cfg.Debounce,
	})
	if err != nil {
		logger.Error("watcher failed to start", "roots", cfg.Roots, "error", err)
		return
	}
	logger.Info("watcher started", "roots", cfg.Roots, "company_id", companyID)

	for {
		select {
		case <-ctx.Done():
			return
		case werr, ok := <-errCh:
			if ok && werr != nil {
				logger.Error("watcher error", "error", werr)
			}
		case path, ok := <-evCh:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, companyID, path)
			if err != nil {
				logger.Error("watcher ingest failed", "path", path, "error", err)
				continue
			}
			if r.Deduplicated {
				continue
			}
			fileID, err := uuid.Parse(r.FileID)
			if err != nil {
				continue
			}
			if err := queue.Enqueue(ctx, async.Job{FileID: fileID}); err != nil {
				logger.Error("enqueue failed", "file_id", r.FileID, "error", err)
			}
		}
	}
}
