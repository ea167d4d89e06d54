package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brpayflow/boleto-tracker/gen/ent"
	entcompany "github.com/brpayflow/boleto-tracker/gen/ent/company"
	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/utils"
)

type CompanyRepository interface {
	Create(ctx context.Context, name string) (*entity.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type companyRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(entc *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepo{ent: entc, logger: logger}
}

func (r *companyRepo) Create(ctx context.Context, name string) (*entity.Company, error) {
	row, err := r.ent.Company.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create company", "name", name, "error", err)
		return nil, err
	}
	return utils.ToCompany(row), nil
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row, err := r.ent.Company.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToCompany(row), nil
}

func (r *companyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.ent.Company.Query().Order(entcompany.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list companies", "error", err)
		return nil, err
	}
	out := make([]*entity.Company, len(rows))
	for i, row := range rows {
		out[i] = utils.ToCompany(row)
	}
	return out, nil
}

func (r *companyRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Company.Query().Where(entcompany.ID(id)).Exist(ctx)
}
