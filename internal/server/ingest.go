package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	boletospb "github.com/brpayflow/boleto-tracker/gen/proto/boletos/v1"
	"github.com/brpayflow/boleto-tracker/internal/ingest"
	processor "github.com/brpayflow/boleto-tracker/internal/pipeline"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

type IngestionService struct {
	boletospb.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	companyRepo repository.CompanyRepository
	processor   *processor.Processor
	logger      *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, proc *processor.Processor, companies repository.CompanyRepository, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:    ing,
		processor:   proc,
		companyRepo: companies,
		logger:      logger,
	}
}

func (s *IngestionService) IngestFile(ctx context.Context, req *boletospb.IngestFileRequest) (*boletospb.IngestResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	if exists, _ := s.companyRepo.Exists(ctx, companyID); !exists {
		return nil, status.Error(codes.InvalidArgument, "company not found")
	}

	s.logger.Info("starting file ingest", "company_id", companyID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, companyID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "company_id", companyID, "file_id", r.FileID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResponse(r)
	fileUUID, _ := uuid.Parse(r.FileID)
	if _, boletoID, err := s.processor.ProcessFile(ctx, fileUUID); err != nil {
		s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", err)
		resp.Error = err.Error()
	} else {
		resp.BoletoId = boletoID.String()
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *boletospb.IngestDirectoryRequest) (*boletospb.IngestDirectoryResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	if exists, _ := s.companyRepo.Exists(ctx, companyID); !exists {
		return nil, status.Error(codes.InvalidArgument, "company not found")
	}

	s.logger.Info("starting directory ingest", "company_id", companyID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, companyID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"company_id", companyID, "scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed,
	)

	out := &boletospb.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*boletospb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toPBIngestResponse(r)
		// a duplicate document already went through the pipeline once;
		// re-running it would only produce a duplicateBoleto failure
		if r.Err == "" && !r.Deduplicated && r.FileID != "" {
			if fileUUID, err := uuid.Parse(r.FileID); err == nil {
				if _, boletoID, pErr := s.processor.ProcessFile(ctx, fileUUID); pErr != nil {
					s.logger.Error("pipeline.failed", "file_id", r.FileID, "err", pErr)
					item.Error = pErr.Error()
				} else {
					item.BoletoId = boletoID.String()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func toPBIngestResponse(r ingest.IngestionResult) *boletospb.IngestResponse {
	return &boletospb.IngestResponse{
		FileId:         r.FileID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
