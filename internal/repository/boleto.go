package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/gen/ent"
	entboleto "github.com/brpayflow/boleto-tracker/gen/ent/boleto"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/utils"
)

// CreateBoletoRequest carries a gate-approved extraction into storage.
// Amount and Barcode must already be present; callers run fields.Gate
// before building one of these.
type CreateBoletoRequest struct {
	CompanyID  uuid.UUID
	Extraction fields.Extraction
}

// ListBoletosFilter narrows a per-company listing. Zero values mean
// "no constraint".
type ListBoletosFilter struct {
	Status  string
	DueFrom *time.Time
	DueTo   *time.Time
}

type BoletoRepository interface {
	Create(ctx context.Context, req CreateBoletoRequest) (*entity.Boleto, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Boleto, error)
	List(ctx context.Context, companyID uuid.UUID, filter ListBoletosFilter) ([]*entity.Boleto, error)
	ExistsByBarcode(ctx context.Context, companyID uuid.UUID, barcode string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Boleto, error)
	UpdateComments(ctx context.Context, id uuid.UUID, comments *string) (*entity.Boleto, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type boletoRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBoletoRepository(entc *ent.Client, logger *slog.Logger) BoletoRepository {
	return &boletoRepo{ent: entc, logger: logger}
}

func (r *boletoRepo) Create(ctx context.Context, req CreateBoletoRequest) (*entity.Boleto, error) {
	x := req.Extraction
	if x.Amount == nil || x.Barcode == nil {
		return nil, common.InvalidArgumentError("extraction is missing amount or barcode")
	}

	// dates are re-coerced strictly at the persistence boundary; a
	// lenient parse that survived extraction but names no real
	// calendar day is dropped here, not stored
	documentDate, err := parseOptionalDate(x.DocumentDate)
	if err != nil {
		r.logger.Warn("dropping invalid document date", "file", x.FileName, "value", *x.DocumentDate)
		documentDate = nil
	}
	dueDate, err := parseOptionalDate(x.DueDate)
	if err != nil {
		r.logger.Warn("dropping invalid due date", "file", x.FileName, "value", *x.DueDate)
		dueDate = nil
	}

	exists, err := r.ExistsByBarcode(ctx, req.CompanyID, *x.Barcode)
	if err != nil {
		return nil, common.DatabaseError("check duplicate barcode", err)
	}
	if exists {
		return nil, fmt.Errorf("boleto with barcode %s already registered: %w", *x.Barcode, common.ErrDuplicate)
	}

	create := r.ent.Boleto.Create().
		SetCompanyID(req.CompanyID).
		SetAmount(*x.Amount).
		SetBarcode(*x.Barcode).
		SetFileName(x.FileName).
		SetNillableRecipient(x.Recipient).
		SetNillableDrawee(x.Drawee).
		SetNillableDocumentDate(documentDate).
		SetNillableDueDate(dueDate).
		SetNillableDocumentAmount(x.DocumentAmount).
		SetNillableDiscount(x.Discount).
		SetNillableInterestAndFines(x.InterestAndFines).
		SetNillableGuideNumber(x.GuideNumber).
		SetNillablePixQrCodeText(x.PixQrCodeText)

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// lost the race to a concurrent ingest of the same slip
			return nil, fmt.Errorf("boleto with barcode %s already registered: %w", *x.Barcode, common.ErrDuplicate)
		}
		r.logger.Error("failed to create boleto", "file", x.FileName, "error", err)
		return nil, common.DatabaseError("create boleto", err)
	}
	return utils.ToBoleto(row), nil
}

func (r *boletoRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Boleto, error) {
	row, err := r.ent.Boleto.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("boleto %s: %w", id, common.ErrNotFound)
		}
		return nil, common.DatabaseError("get boleto", err)
	}
	return utils.ToBoleto(row), nil
}

func (r *boletoRepo) List(ctx context.Context, companyID uuid.UUID, filter ListBoletosFilter) ([]*entity.Boleto, error) {
	q := r.ent.Boleto.Query().
		Where(entboleto.CompanyID(companyID))

	if filter.Status != "" {
		q = q.Where(entboleto.Status(filter.Status))
	}
	if filter.DueFrom != nil {
		q = q.Where(entboleto.DueDateGTE(*filter.DueFrom))
	}
	if filter.DueTo != nil {
		q = q.Where(entboleto.DueDateLTE(*filter.DueTo))
	}

	rows, err := q.Order(entboleto.ByDueDate(), entboleto.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list boletos", "company_id", companyID, "error", err)
		return nil, common.DatabaseError("list boletos", err)
	}
	out := make([]*entity.Boleto, len(rows))
	for i, row := range rows {
		out[i] = utils.ToBoleto(row)
	}
	return out, nil
}

func (r *boletoRepo) ExistsByBarcode(ctx context.Context, companyID uuid.UUID, barcode string) (bool, error) {
	return r.ent.Boleto.Query().
		Where(entboleto.CompanyID(companyID), entboleto.Barcode(barcode)).
		Exist(ctx)
}

func (r *boletoRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Boleto, error) {
	if !constants.IsValidStatus(status) {
		return nil, common.InvalidArgumentError(fmt.Sprintf("invalid status %q", status))
	}
	row, err := r.ent.Boleto.UpdateOneID(id).SetStatus(status).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("boleto %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update boleto status", "id", id, "status", status, "error", err)
		return nil, common.DatabaseError("update boleto status", err)
	}
	return utils.ToBoleto(row), nil
}

func (r *boletoRepo) UpdateComments(ctx context.Context, id uuid.UUID, comments *string) (*entity.Boleto, error) {
	update := r.ent.Boleto.UpdateOneID(id)
	if comments == nil || *comments == "" {
		update = update.ClearComments()
	} else {
		update = update.SetComments(*comments)
	}
	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("boleto %s: %w", id, common.ErrNotFound)
		}
		return nil, common.DatabaseError("update boleto comments", err)
	}
	return utils.ToBoleto(row), nil
}

func (r *boletoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Boleto.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("boleto %s: %w", id, common.ErrNotFound)
		}
		return common.DatabaseError("delete boleto", err)
	}
	return nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := utils.ParseYMD(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
