package utils

import (
	"time"

	boletospb "github.com/brpayflow/boleto-tracker/gen/proto/boletos/v1"
	"github.com/brpayflow/boleto-tracker/internal/entity"
)

func ToPBCompany(c *entity.Company) *boletospb.Company {
	return &boletospb.Company{
		Id:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func ToPBBoleto(b *entity.Boleto) *boletospb.Boleto {
	out := &boletospb.Boleto{
		Id:               b.ID.String(),
		CompanyId:        b.CompanyID.String(),
		Recipient:        b.Recipient,
		Drawee:           b.Drawee,
		DocumentAmount:   b.DocumentAmount,
		Amount:           b.Amount,
		Discount:         b.Discount,
		InterestAndFines: b.InterestAndFines,
		Barcode:          b.Barcode,
		GuideNumber:      b.GuideNumber,
		PixQrCodeText:    b.PixQrCodeText,
		Status:           b.Status,
		FileName:         b.FileName,
		Comments:         b.Comments,
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.DocumentDate != nil {
		d := b.DocumentDate.Format("2006-01-02")
		out.DocumentDate = &d
	}
	if b.DueDate != nil {
		d := b.DueDate.Format("2006-01-02")
		out.DueDate = &d
	}
	return out
}
