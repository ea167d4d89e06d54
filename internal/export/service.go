package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/brpayflow/boleto-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	boletosRepo repository.BoletoRepository
	logger      *slog.Logger
}

func NewService(repo repository.BoletoRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{boletosRepo: repo, logger: logger}
}

// ExportBoletosXLSX returns an XLSX workbook (as bytes) for the given
// company and due-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all boletos for the company.
func (s *Service) ExportBoletosXLSX(ctx context.Context, companyID uuid.UUID, status string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	boletos, err := s.boletosRepo.List(ctx, companyID, repository.ListBoletosFilter{
		Status:  status,
		DueFrom: fromDate,
		DueTo:   toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query boletos: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Boletos"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Due Date",
		"Recipient",
		"Drawee",
		"Amount",
		"Document Amount",
		"Discount",
		"Interest/Fines",
		"Status",
		"Barcode",
		"Guide Number",
		"File",
		"Comments",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range boletos {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		writeDate := func(col int, t *time.Time) {
			if t != nil {
				write(col, t.Format("2006-01-02"))
			} else {
				write(col, "")
			}
		}
		writeFloat := func(col int, v *float64) {
			if v != nil {
				write(col, *v)
			} else {
				write(col, "")
			}
		}
		writeStr := func(col int, v *string) {
			if v != nil {
				write(col, *v)
			} else {
				write(col, "")
			}
		}

		writeDate(1, b.DueDate)
		writeStr(2, b.Recipient)
		writeStr(3, b.Drawee)
		write(4, b.Amount)
		writeFloat(5, b.DocumentAmount)
		writeFloat(6, b.Discount)
		writeFloat(7, b.InterestAndFines)
		write(8, b.Status)
		write(9, b.Barcode)
		writeStr(10, b.GuideNumber)
		write(11, b.FileName)
		writeStr(12, b.Comments)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // due date
	_ = f.SetColWidth(sheet, "B", "C", 34) // parties
	_ = f.SetColWidth(sheet, "D", "G", 14) // amounts
	_ = f.SetColWidth(sheet, "H", "H", 12) // status
	_ = f.SetColWidth(sheet, "I", "I", 52) // barcode
	_ = f.SetColWidth(sheet, "J", "J", 20) // guide
	_ = f.SetColWidth(sheet, "K", "K", 32) // file
	_ = f.SetColWidth(sheet, "L", "L", 40) // comments

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"company_id", companyID.String(),
		"rows", len(boletos),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
