package parsefields

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brpayflow/boleto-tracker/constants"
	"github.com/brpayflow/boleto-tracker/internal/common"
	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/extract"
	"github.com/brpayflow/boleto-tracker/internal/fields"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

const boletoText = `CEDENTE: ENERGISA SERGIPE - DISTRIBUIDORA DE ENERGIA S.A
Pagador: JOAO DA SILVA Vencimento
Data do Documento: 01/06/2024
Vencimento: 15/06/2024
Valor do Documento R$ 68,14
10499.00009 10000.000007 10000.000004 1 85300000006814`

type fakeJobs struct {
	jobs map[uuid.UUID]*entity.ExtractJob
}

func newFakeJobs() *fakeJobs { return &fakeJobs{jobs: map[uuid.UUID]*entity.ExtractJob{}} }

func (f *fakeJobs) Start(_ context.Context, companyID, fileID uuid.UUID, format, strategy string) (*entity.ExtractJob, error) {
	j := &entity.ExtractJob{ID: uuid.New(), CompanyID: companyID, FileID: fileID, Format: format, Strategy: strategy, Status: string(constants.JobStatusRunning)}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobs) FinishTextSuccess(_ context.Context, jobID uuid.UUID, text string, conf float32) error {
	j := f.jobs[jobID]
	j.Status = string(constants.JobStatusTextOK)
	j.SourceText = &text
	j.ExtractionConfidence = &conf
	return nil
}

func (f *fakeJobs) FinishParseSuccess(_ context.Context, jobID uuid.UUID, extractedJSON json.RawMessage, boletoID uuid.UUID) error {
	j := f.jobs[jobID]
	j.Status = string(constants.JobStatusParseOK)
	j.ExtractedJSON = extractedJSON
	j.BoletoID = &boletoID
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, jobID uuid.UUID, key constants.MessageKey, detail string) error {
	j := f.jobs[jobID]
	j.Status = string(constants.JobStatusFailed)
	msg := string(key)
	if detail != "" {
		msg += ": " + detail
	}
	j.ErrorMessage = &msg
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job not found")
	}
	cp := *j
	return &cp, nil
}

type fakeFiles struct {
	files map[uuid.UUID]*entity.BoletoFile
	links map[uuid.UUID]uuid.UUID
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{files: map[uuid.UUID]*entity.BoletoFile{}, links: map[uuid.UUID]uuid.UUID{}}
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.BoletoFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, fmt.Errorf("file not found")
	}
	return file, nil
}

func (f *fakeFiles) GetByCompanyAndHash(context.Context, uuid.UUID, []byte) (*entity.BoletoFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) Create(context.Context, repository.CreateFileRequest) (*entity.BoletoFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) UpsertByHash(context.Context, repository.CreateFileRequest) (*entity.BoletoFile, bool, error) {
	return nil, false, fmt.Errorf("not implemented")
}

func (f *fakeFiles) SetBoletoID(_ context.Context, fileID, boletoID uuid.UUID) error {
	f.links[fileID] = boletoID
	return nil
}

type fakeBoletos struct {
	created  []*entity.Boleto
	barcodes map[string]bool
}

func newFakeBoletos() *fakeBoletos { return &fakeBoletos{barcodes: map[string]bool{}} }

func (f *fakeBoletos) Create(_ context.Context, req repository.CreateBoletoRequest) (*entity.Boleto, error) {
	if f.barcodes[*req.Extraction.Barcode] {
		return nil, fmt.Errorf("barcode %s: %w", *req.Extraction.Barcode, common.ErrDuplicate)
	}
	f.barcodes[*req.Extraction.Barcode] = true
	b := &entity.Boleto{
		ID:        uuid.New(),
		CompanyID: req.CompanyID,
		Amount:    *req.Extraction.Amount,
		Barcode:   *req.Extraction.Barcode,
		Status:    string(constants.StatusToPay),
		FileName:  req.Extraction.FileName,
	}
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBoletos) GetByID(context.Context, uuid.UUID) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeBoletos) List(context.Context, uuid.UUID, repository.ListBoletosFilter) ([]*entity.Boleto, error) {
	return nil, nil
}

func (f *fakeBoletos) ExistsByBarcode(_ context.Context, _ uuid.UUID, barcode string) (bool, error) {
	return f.barcodes[barcode], nil
}

func (f *fakeBoletos) UpdateStatus(context.Context, uuid.UUID, string) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeBoletos) UpdateComments(context.Context, uuid.UUID, *string) (*entity.Boleto, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeBoletos) Delete(context.Context, uuid.UUID) error { return nil }

func setup(t *testing.T, text string) (*Pipeline, *fakeJobs, *fakeFiles, *fakeBoletos, uuid.UUID) {
	t.Helper()
	jobs := newFakeJobs()
	files := newFakeFiles()
	boletos := newFakeBoletos()

	companyID := uuid.New()
	file := &entity.BoletoFile{ID: uuid.New(), CompanyID: companyID, Filename: "conta-luz.pdf", FileExt: "pdf"}
	files.files[file.ID] = file

	job, err := jobs.Start(context.Background(), companyID, file.ID, constants.PDF, "rules")
	require.NoError(t, err)
	require.NoError(t, jobs.FinishTextSuccess(context.Background(), job.ID, text, 0.9))

	p := NewPipeline(nil, Config{Strategy: "rules"}, jobs, files, boletos,
		extract.NewRulesAdapter(fields.DefaultOptions()), nil)
	return p, jobs, files, boletos, job.ID
}

func TestRunPersistsBoleto(t *testing.T) {
	p, jobs, files, boletos, jobID := setup(t, boletoText)

	boletoID, err := p.Run(context.Background(), jobID)
	require.NoError(t, err)

	require.Len(t, boletos.created, 1)
	b := boletos.created[0]
	assert.Equal(t, boletoID, b.ID)
	assert.Equal(t, 68.14, b.Amount)
	assert.Equal(t, "10499000091000000000710000000004185300000006814", b.Barcode)
	assert.Equal(t, string(constants.StatusToPay), b.Status)
	assert.Equal(t, "conta-luz.pdf", b.FileName)

	job, err := jobs.GetByID(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusParseOK), job.Status)
	assert.NotEmpty(t, job.ExtractedJSON)
	require.NotNil(t, job.BoletoID)
	assert.Equal(t, boletoID, *job.BoletoID)

	// file linked to the persisted boleto
	var fileID uuid.UUID
	for id := range files.files {
		fileID = id
	}
	assert.Equal(t, boletoID, files.links[fileID])
}

func TestRunRejectsWhenBarcodeMissing(t *testing.T) {
	p, jobs, _, boletos, jobID := setup(t, "Valor do Documento R$ 68,14\nVencimento: 15/06/2024")

	_, err := p.Run(context.Background(), jobID)
	require.Error(t, err)
	var gateErr *fields.GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, constants.MsgBarcodeNotFound, gateErr.Key)

	assert.Empty(t, boletos.created)
	job, _ := jobs.GetByID(context.Background(), jobID)
	assert.Equal(t, string(constants.JobStatusFailed), job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, string(constants.MsgBarcodeNotFound))
}

func TestRunRejectsZeroAmount(t *testing.T) {
	text := "Valor Cobrado: 0,00\nValor do Documento 0,00\n10499.00009 10000.000007 10000.000004 1 85300000006814"
	p, jobs, _, _, jobID := setup(t, text)

	_, err := p.Run(context.Background(), jobID)
	require.Error(t, err)
	var gateErr *fields.GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, constants.MsgAmountIsZero, gateErr.Key)

	job, _ := jobs.GetByID(context.Background(), jobID)
	assert.Equal(t, string(constants.JobStatusFailed), job.Status)
}

func TestRunRejectsDuplicateBarcode(t *testing.T) {
	p, jobs, files, boletos, jobID := setup(t, boletoText)

	_, err := p.Run(context.Background(), jobID)
	require.NoError(t, err)
	require.Len(t, boletos.created, 1)

	// same document a second time, fresh job
	companyID := boletos.created[0].CompanyID
	file2 := &entity.BoletoFile{ID: uuid.New(), CompanyID: companyID, Filename: "conta-luz-copia.pdf", FileExt: "pdf"}
	files.files[file2.ID] = file2
	job2, err := jobs.Start(context.Background(), companyID, file2.ID, constants.PDF, "rules")
	require.NoError(t, err)
	require.NoError(t, jobs.FinishTextSuccess(context.Background(), job2.ID, boletoText, 0.9))

	_, err = p.Run(context.Background(), job2.ID)
	require.Error(t, err)
	assert.Len(t, boletos.created, 1)

	j2, _ := jobs.GetByID(context.Background(), job2.ID)
	assert.Equal(t, string(constants.JobStatusFailed), j2.Status)
	require.NotNil(t, j2.ErrorMessage)
	assert.Contains(t, *j2.ErrorMessage, string(constants.MsgDuplicateBoleto))
}

func TestRunRequiresAcquiredText(t *testing.T) {
	jobs := newFakeJobs()
	files := newFakeFiles()
	p := NewPipeline(nil, Config{}, jobs, files, newFakeBoletos(),
		extract.NewRulesAdapter(fields.DefaultOptions()), nil)

	job, err := jobs.Start(context.Background(), uuid.New(), uuid.New(), constants.PDF, "rules")
	require.NoError(t, err)

	// still RUNNING, no text
	_, err = p.Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}
