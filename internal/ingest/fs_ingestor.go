package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

// FSIngestor reads documents from the local filesystem and stores the
// raw bytes; the sha256 of the content dedups re-ingests per company.
type FSIngestor struct {
	CompanyRepo repository.CompanyRepository
	FilesRepo   repository.BoletoFileRepository
	Logger      *slog.Logger
}

func NewFSIngestor(c repository.CompanyRepository, f repository.BoletoFileRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{CompanyRepo: c, FilesRepo: f, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, companyID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	exists, err := i.CompanyRepo.Exists(ctx, companyID)
	if err != nil {
		return out, fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return out, fmt.Errorf("company %s not found", companyID)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return out, fmt.Errorf("read: %w", err)
	}
	sum := sha256.Sum256(content)

	row, created, err := i.FilesRepo.UpsertByHash(ctx, repository.CreateFileRequest{
		CompanyID:   companyID,
		SourcePath:  abs,
		Filename:    filepath.Base(abs),
		FileExt:     ext,
		ContentHash: sum[:],
		Content:     content,
	})
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		FileID:       row.ID.String(),
		Deduplicated: !created,
		HashHex:      hex.EncodeToString(sum[:]),
		FileExt:      row.FileExt,
		UploadedAt:   row.UploadedAt,
	}
	i.Logger.Info("ingest.ok", "path", abs, "file_id", out.FileID, "dedup", out.Deduplicated)
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and
// calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	companyID uuid.UUID,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, companyID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}
