package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/brpayflow/boleto-tracker/constants"
	boletospb "github.com/brpayflow/boleto-tracker/gen/proto/boletos/v1"
)

func (s *BoletosService) ExportBoletos(ctx context.Context, req *boletospb.ExportBoletosRequest) (*boletospb.ExportBoletosResponse, error) {
	companyID, err := parseCompanyID(req.GetCompanyId())
	if err != nil {
		return nil, err
	}
	if st := req.GetStatus(); st != "" && !constants.IsValidStatus(st) {
		return nil, status.Errorf(codes.InvalidArgument, "invalid status %q", st)
	}
	from, err := parseOptionalYMD(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalYMD(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportBoletosXLSX(ctx, companyID, req.GetStatus(), from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "company_id", companyID, "err", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &boletospb.ExportBoletosResponse{Xlsx: xlsx}, nil
}
