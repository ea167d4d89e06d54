package utils

import (
	"time"

	"github.com/brpayflow/boleto-tracker/gen/ent"
	"github.com/brpayflow/boleto-tracker/internal/entity"
)

// ParseYMD parses an ISO date and strips the time to midnight UTC to
// match DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToCompany(e *ent.Company) *entity.Company {
	return &entity.Company{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToBoleto(e *ent.Boleto) *entity.Boleto {
	return &entity.Boleto{
		ID:               e.ID,
		CompanyID:        e.CompanyID,
		Recipient:        e.Recipient,
		Drawee:           e.Drawee,
		DocumentDate:     e.DocumentDate,
		DueDate:          e.DueDate,
		DocumentAmount:   e.DocumentAmount,
		Amount:           e.Amount,
		Discount:         e.Discount,
		InterestAndFines: e.InterestAndFines,
		Barcode:          e.Barcode,
		GuideNumber:      e.GuideNumber,
		PixQrCodeText:    e.PixQrCodeText,
		Status:           e.Status,
		FileName:         e.FileName,
		Comments:         e.Comments,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToBoletoFile(e *ent.BoletoFile) *entity.BoletoFile {
	return &entity.BoletoFile{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		BoletoID:    e.BoletoID,
		SourcePath:  e.SourcePath,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		ContentHash: e.ContentHash,
		Content:     e.Content,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		CompanyID:            e.CompanyID,
		BoletoID:             e.BoletoID,
		Format:               e.Format,
		Strategy:             e.Strategy,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		SourceText:           e.SourceText,
		ExtractedJSON:        e.ExtractedJSON,
	}
}
