package export

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

type fixedBoletos struct {
	rows       []*entity.Boleto
	lastFilter repository.ListBoletosFilter
}

func (f *fixedBoletos) Create(context.Context, repository.CreateBoletoRequest) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fixedBoletos) GetByID(context.Context, uuid.UUID) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fixedBoletos) List(_ context.Context, _ uuid.UUID, filter repository.ListBoletosFilter) ([]*entity.Boleto, error) {
	f.lastFilter = filter
	return f.rows, nil
}
func (f *fixedBoletos) ExistsByBarcode(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (f *fixedBoletos) UpdateStatus(context.Context, uuid.UUID, string) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fixedBoletos) UpdateComments(context.Context, uuid.UUID, *string) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fixedBoletos) Delete(context.Context, uuid.UUID) error { return nil }

func TestExportBoletosXLSX(t *testing.T) {
	due := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	recipient := "ENERGISA S.A."
	repo := &fixedBoletos{rows: []*entity.Boleto{
		{
			ID:        uuid.New(),
			DueDate:   &due,
			Recipient: &recipient,
			Amount:    68.14,
			Barcode:   "10499000091000000000710000000004185300000006814",
			Status:    "TO_PAY",
			FileName:  "conta-luz.pdf",
		},
	}}

	svc := NewService(repo, nil)
	out, err := svc.ExportBoletosXLSX(context.Background(), uuid.New(), "", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Boletos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Due Date", rows[0][0])
	assert.Equal(t, "2024-06-15", rows[1][0])
	assert.Equal(t, "ENERGISA S.A.", rows[1][1])
	assert.Equal(t, "TO_PAY", rows[1][7])
	assert.Equal(t, "10499000091000000000710000000004185300000006814", rows[1][8])
	assert.Equal(t, "conta-luz.pdf", rows[1][10])
}

func TestExportWindowDefaultsToToday(t *testing.T) {
	repo := &fixedBoletos{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	_, err := svc.ExportBoletosXLSX(context.Background(), uuid.New(), "PAID", &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.DueFrom)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.DueFrom)
	require.NotNil(t, repo.lastFilter.DueTo, "open to-date must be filled with today")
	assert.Equal(t, "PAID", repo.lastFilter.Status)
}
