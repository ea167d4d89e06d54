package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brpayflow/boleto-tracker/internal/entity"
	"github.com/brpayflow/boleto-tracker/internal/repository"
)

type fakeCompanies struct{ known map[uuid.UUID]bool }

func (f *fakeCompanies) Create(context.Context, string) (*entity.Company, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeCompanies) GetByID(context.Context, uuid.UUID) (*entity.Company, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeCompanies) List(context.Context) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanies) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

type fakeFiles struct {
	byHash map[string]*entity.BoletoFile
}

func newFakeFiles() *fakeFiles { return &fakeFiles{byHash: map[string]*entity.BoletoFile{}} }

func (f *fakeFiles) GetByID(context.Context, uuid.UUID) (*entity.BoletoFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) GetByCompanyAndHash(_ context.Context, companyID uuid.UUID, hash []byte) (*entity.BoletoFile, error) {
	if row, ok := f.byHash[companyID.String()+hex.EncodeToString(hash)]; ok {
		return row, nil
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeFiles) Create(context.Context, repository.CreateFileRequest) (*entity.BoletoFile, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeFiles) UpsertByHash(_ context.Context, req repository.CreateFileRequest) (*entity.BoletoFile, bool, error) {
	key := req.CompanyID.String() + hex.EncodeToString(req.ContentHash)
	if row, ok := f.byHash[key]; ok {
		return row, false, nil
	}
	row := &entity.BoletoFile{
		ID:          uuid.New(),
		CompanyID:   req.CompanyID,
		SourcePath:  req.SourcePath,
		Filename:    req.Filename,
		FileExt:     req.FileExt,
		FileSize:    len(req.Content),
		ContentHash: req.ContentHash,
		Content:     req.Content,
		UploadedAt:  time.Now().UTC(),
	}
	f.byHash[key] = row
	return row, true, nil
}

func (f *fakeFiles) SetBoletoID(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestIngestPathStoresContentAndHash(t *testing.T) {
	dir := t.TempDir()
	data := []byte("%PDF-1.4 fake boleto body")
	path := writeFile(t, dir, "conta.pdf", data)

	companyID := uuid.New()
	ing := NewFSIngestor(&fakeCompanies{known: map[uuid.UUID]bool{companyID: true}}, newFakeFiles(), nil)

	res, err := ing.IngestPath(context.Background(), companyID, path)
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.Equal(t, "pdf", res.FileExt)
	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.FileID)
}

func TestIngestPathDedupsSameBytes(t *testing.T) {
	dir := t.TempDir()
	data := []byte("%PDF-1.4 same bytes")
	first := writeFile(t, dir, "original.pdf", data)
	second := writeFile(t, dir, "copia.pdf", data)

	companyID := uuid.New()
	ing := NewFSIngestor(&fakeCompanies{known: map[uuid.UUID]bool{companyID: true}}, newFakeFiles(), nil)

	r1, err := ing.IngestPath(context.Background(), companyID, first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), companyID, second)
	require.NoError(t, err)

	assert.False(t, r1.Deduplicated)
	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.FileID, r2.FileID)
}

func TestIngestPathRejectsUnknownCompany(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conta.pdf", []byte("x"))

	ing := NewFSIngestor(&fakeCompanies{known: map[uuid.UUID]bool{}}, newFakeFiles(), nil)
	_, err := ing.IngestPath(context.Background(), uuid.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nota.txt", []byte("texto"))

	companyID := uuid.New()
	ing := NewFSIngestor(&fakeCompanies{known: map[uuid.UUID]bool{companyID: true}}, newFakeFiles(), nil)
	_, err := ing.IngestPath(context.Background(), companyID, path)
	require.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", []byte("doc a"))
	writeFile(t, dir, "b.jpg", []byte("doc b"))
	writeFile(t, dir, "notas.txt", []byte("skip me"))
	writeFile(t, dir, ".escondido.pdf", []byte("hidden"))

	companyID := uuid.New()
	ing := NewFSIngestor(&fakeCompanies{known: map[uuid.UUID]bool{companyID: true}}, newFakeFiles(), nil)

	results, stats, err := ing.IngestDirectory(context.Background(), companyID, dir, true)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(&fakeCompanies{}, newFakeFiles(), nil)
	_, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "  ", false)
	require.Error(t, err)
}
