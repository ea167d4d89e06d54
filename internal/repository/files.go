package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/gen/ent"
	entfile "github.com/brpayflow/boleto-tracker/gen/ent/boletofile"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/utils"
)

// CreateFileRequest stores a source document alongside its sha256
// content hash, which is the per-company dedup key.
type CreateFileRequest struct {
	CompanyID   uuid.UUID
	SourcePath  string
	Filename    string
	FileExt     string
	ContentHash []byte
	Content     []byte
}

type BoletoFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BoletoFile, error)
	GetByCompanyAndHash(ctx context.Context, companyID uuid.UUID, hash []byte) (*entity.BoletoFile, error)
	Create(ctx context.Context, req CreateFileRequest) (*entity.BoletoFile, error)
	UpsertByHash(ctx context.Context, req CreateFileRequest) (*entity.BoletoFile, bool, error)
	SetBoletoID(ctx context.Context, fileID, boletoID uuid.UUID) error
}

type boletoFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBoletoFileRepository(entc *ent.Client, logger *slog.Logger) BoletoFileRepository {
	return &boletoFileRepo{ent: entc, logger: logger}
}

func (r *boletoFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.BoletoFile, error) {
	row, err := r.ent.BoletoFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("file %s: %w", id, common.ErrNotFound)
		}
		return nil, common.DatabaseError("get file", err)
	}
	return utils.ToBoletoFile(row), nil
}

func (r *boletoFileRepo) GetByCompanyAndHash(ctx context.Context, companyID uuid.UUID, hash []byte) (*entity.BoletoFile, error) {
	row, err := r.ent.BoletoFile.Query().
		Where(entfile.CompanyID(companyID), entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("file hash %x: %w", hash, common.ErrNotFound)
		}
		return nil, common.DatabaseError("get file by hash", err)
	}
	return utils.ToBoletoFile(row), nil
}

func (r *boletoFileRepo) Create(ctx context.Context, req CreateFileRequest) (*entity.BoletoFile, error) {
	row, err := r.ent.BoletoFile.Create().
		SetCompanyID(req.CompanyID).
		SetSourcePath(req.SourcePath).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetFileSize(len(req.Content)).
		SetContentHash(req.ContentHash).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("file %s already stored: %w", req.Filename, common.ErrDuplicate)
		}
		r.logger.Error("failed to store file", "filename", req.Filename, "error", err)
		return nil, common.DatabaseError("store file", err)
	}
	return utils.ToBoletoFile(row), nil
}

// UpsertByHash returns the existing row when the same bytes were
// already ingested for this company. The bool reports whether a new
// row was created.
func (r *boletoFileRepo) UpsertByHash(ctx context.Context, req CreateFileRequest) (*entity.BoletoFile, bool, error) {
	existing, err := r.GetByCompanyAndHash(ctx, req.CompanyID, req.ContentHash)
	if err == nil {
		return existing, false, nil
	}
	if !common.IsNotFound(err) {
		return nil, false, err
	}

	created, err := r.Create(ctx, req)
	if err != nil {
		if common.IsDuplicate(err) {
			// concurrent ingest of the same bytes; read the winner
			existing, err = r.GetByCompanyAndHash(ctx, req.CompanyID, req.ContentHash)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return created, true, nil
}

func (r *boletoFileRepo) SetBoletoID(ctx context.Context, fileID, boletoID uuid.UUID) error {
	err := r.ent.BoletoFile.UpdateOneID(fileID).SetBoletoID(boletoID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("file %s: %w", fileID, common.ErrNotFound)
		}
		return common.DatabaseError("link file to boleto", err)
	}
	return nil
}
