package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/gen/ent"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/utils"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, companyID, fileID uuid.UUID, format, strategy string) (*entity.ExtractJob, error)
	FinishTextSuccess(ctx context.Context, jobID uuid.UUID, sourceText string, confidence float32) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extractedJSON json.RawMessage, boletoID uuid.UUID) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, messageKey constants.MessageKey, detail string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error)
}

type extractJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, logger *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, logger: logger}
}

func (r *extractJobRepo) Start(ctx context.Context, companyID, fileID uuid.UUID, format, strategy string) (*entity.ExtractJob, error) {
	row, err := r.ent.ExtractJob.Create().
		SetCompanyID(companyID).
		SetFileID(fileID).
		SetFormat(format).
		SetStrategy(strategy).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start extract job", "file_id", fileID, "error", err)
		return nil, common.DatabaseError("start extract job", err)
	}
	return utils.ToExtractJob(row), nil
}

// FinishTextSuccess records the acquired page text. The job stays open
// for the parse stage, so finished_at is not set here.
func (r *extractJobRepo) FinishTextSuccess(ctx context.Context, jobID uuid.UUID, sourceText string, confidence float32) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusTextOK)).
		SetSourceText(sourceText).
		SetExtractionConfidence(confidence).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("extract job %s: %w", jobID, common.ErrNotFound)
		}
		return common.DatabaseError("finish text stage", err)
	}
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extractedJSON json.RawMessage, boletoID uuid.UUID) error {
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusParseOK)).
		SetExtractedJSON(extractedJSON).
		SetBoletoID(boletoID).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("extract job %s: %w", jobID, common.ErrNotFound)
		}
		return common.DatabaseError("finish parse stage", err)
	}
	return nil
}

// FinishFailure stores the stable message key first so clients can map
// it to a localized message, with the free-form detail after a colon.
func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, messageKey constants.MessageKey, detail string) error {
	msg := string(messageKey)
	if detail != "" {
		msg = msg + ": " + detail
	}
	err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(msg).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("extract job %s: %w", jobID, common.ErrNotFound)
		}
		return common.DatabaseError("finish job with failure", err)
	}
	return nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	row, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("extract job %s: %w", jobID, common.ErrNotFound)
		}
		return nil, common.DatabaseError("get extract job", err)
	}
	return utils.ToExtractJob(row), nil
}
