package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/brpayflow/boleto-tracker/constants"
	boletospb "github.com/brpayflow/boleto-tracker/gen/proto/boletos/v1"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/export"
	"github.com/brpayflow/boleto-tracker/internal/repository"
	"github.com/brpayflow/boleto-tracker/internal/utils"
)

type BoletosService struct {
	boletospb.UnimplementedBoletosServiceServer
	companyRepo repository.CompanyRepository
	boletoRepo  repository.BoletoRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewBoletosService(companies repository.CompanyRepository, boletos repository.BoletoRepository, exporter *export.Service, logger *slog.Logger) *BoletosService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BoletosService{
		companyRepo: companies,
		boletoRepo:  boletos,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *BoletosService) CreateCompany(ctx context.Context, req *boletospb.CreateCompanyRequest) (*boletospb.CreateCompanyResponse, error) {
	v := common.NewValidator().Field("name", req.GetName(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	c, err := s.companyRepo.Create(ctx, strings.TrimSpace(req.GetName()))
	if err != nil {
		s.logger.Error("create company failed", "name", req.GetName(), "error", err)
		return nil, status.Error(codes.Internal, "create company failed")
	}
	s.logger.Info("company created", "company_id", c.ID, "name", c.Name)
	return &boletospb.CreateCompanyResponse{Company: utils.ToPBCompany(c)}, nil
}

func (s *BoletosService) ListCompanies(ctx context.Context, _ *boletospb.ListCompaniesRequest) (*boletospb.ListCompaniesResponse, error) {
	cs, err := s.companyRepo.List(ctx)
	if err != nil {
		s.logger.Error("list companies failed", "error", err)
		return nil, status.Error(codes.Internal, "list companies failed")
	}
	out := make([]*boletospb.Company, 0, len(cs))
	for _, c := range cs {
		out = append(out, utils.ToPBCompany(c))
	}
	return &boletospb.ListCompaniesResponse{Companies: out}, nil
}

func (s *BoletosService) ListBoletos(ctx context.Context, req *boletospb.ListBoletosRequest) (*boletospb.ListBoletosResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}

	filter := repository.ListBoletosFilter{Status: strings.TrimSpace(req.GetStatus())}
	if filter.Status != "" && !constants.IsValidStatus(filter.Status) {
		return nil, status.Errorf(codes.InvalidArgument, "invalid status %q", filter.Status)
	}
	if filter.DueFrom, err = parseOptionalYMD(req.GetFromDate(), "from_date"); err != nil {
		return nil, err
	}
	if filter.DueTo, err = parseOptionalYMD(req.GetToDate(), "to_date"); err != nil {
		return nil, err
	}

	boletos, err := s.boletoRepo.List(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list boletos failed", "company_id", companyID, "error", err)
		return nil, status.Error(codes.Internal, "list boletos failed")
	}
	s.logger.Info("boletos listed", "company_id", companyID, "count", len(boletos))

	out := make([]*boletospb.Boleto, 0, len(boletos))
	for _, b := range boletos {
		out = append(out, utils.ToPBBoleto(b))
	}
	return &boletospb.ListBoletosResponse{Boletos: out}, nil
}

func (s *BoletosService) UpdateBoletoStatus(ctx context.Context, req *boletospb.UpdateBoletoStatusRequest) (*boletospb.UpdateBoletoStatusResponse, error) {
	boletoID, err := parseBoletoID(req.GetBoletoId())
	if err != nil {
		return nil, err
	}
	if !constants.IsValidStatus(req.GetStatus()) {
		return nil, status.Errorf(codes.InvalidArgument, "invalid status %q", req.GetStatus())
	}

	b, err := s.boletoRepo.UpdateStatus(ctx, boletoID, req.GetStatus())
	if err != nil {
		if common.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "boleto not found")
		}
		s.logger.Error("update boleto status failed", "boleto_id", boletoID, "error", err)
		return nil, status.Error(codes.Internal, "update boleto status failed")
	}
	s.logger.Info("boleto status updated", "boleto_id", boletoID, "status", b.Status)
	return &boletospb.UpdateBoletoStatusResponse{Boleto: utils.ToPBBoleto(b)}, nil
}

func (s *BoletosService) UpdateBoletoComments(ctx context.Context, req *boletospb.UpdateBoletoCommentsRequest) (*boletospb.UpdateBoletoCommentsResponse, error) {
	boletoID, err := parseBoletoID(req.GetBoletoId())
	if err != nil {
		return nil, err
	}

	var comments *string
	if c := req.GetComments(); c != "" {
		comments = &c
	}
	b, err := s.boletoRepo.UpdateComments(ctx, boletoID, comments)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "boleto not found")
		}
		s.logger.Error("update boleto comments failed", "boleto_id", boletoID, "error", err)
		return nil, status.Error(codes.Internal, "update boleto comments failed")
	}
	return &boletospb.UpdateBoletoCommentsResponse{Boleto: utils.ToPBBoleto(b)}, nil
}

func (s *BoletosService) DeleteBoleto(ctx context.Context, req *boletospb.DeleteBoletoRequest) (*boletospb.DeleteBoletoResponse, error) {
	boletoID, err := parseBoletoID(req.GetBoletoId())
	if err != nil {
		return nil, err
	}
	if err := s.boletoRepo.Delete(ctx, boletoID); err != nil {
		if common.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "boleto not found")
		}
		s.logger.Error("delete boleto failed", "boleto_id", boletoID, "error", err)
		return nil, status.Error(codes.Internal, "delete boleto failed")
	}
	s.logger.Info("boleto deleted", "boleto_id", boletoID)
	return &boletospb.DeleteBoletoResponse{}, nil
}

func parseCompanyID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "company_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}
	return id, nil
}

func parseBoletoID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "boleto_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "boleto_id must be a UUID")
	}
	return id, nil
}

func parseOptionalYMD(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(raw)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s invalid (YYYY-MM-DD): %v", field, err)
	}
	return &t, nil
}
