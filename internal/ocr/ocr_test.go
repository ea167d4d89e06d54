package ocr

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const slipText = `CEDENTE: ENERGISA S.A.
Vencimento: 15/06/2024
Valor do Documento R$ 68,14
10499.00009 10000.000007 10000.000004 1 85300000015000`

// stubRunner answers each binary with canned output.
type stubRunner struct {
	pdftotextOut string
	pdftotextErr error
	calls        []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	switch {
	case strings.Contains(name, "pdftotext"):
		return []byte(s.pdftotextOut), nil, s.pdftotextErr
	case strings.Contains(name, "pdftoppm"):
		return nil, []byte("no rasterizer in tests"), fmt.Errorf("pdftoppm unavailable")
	case strings.Contains(name, "tesseract"):
		return []byte(slipText), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected binary %s", name)
}

func TestExtractPDFUsesEmbeddedText(t *testing.T) {
	stub := &stubRunner{pdftotextOut: slipText}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "/in/boleto.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, "PDF", res.SourceType)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "Vencimento")
	// only pdftotext should have run
	assert.Equal(t, []string{"pdftotext"}, stub.calls)
}

func TestExtractPDFFallsBackOnWeakText(t *testing.T) {
	// short output with no digit runs forces the OCR path
	stub := &stubRunner{pdftotextOut: "  \n "}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	_, err := e.Extract(context.Background(), "/in/scan.pdf")
	// rasterizer is stubbed to fail, but it must have been attempted
	require.Error(t, err)
	assert.Contains(t, stub.calls, "pdftoppm")
}

func TestExtractImageRunsTesseract(t *testing.T) {
	stub := &stubRunner{}
	e := NewExtractor(Config{}, nil).WithRunner(stub)

	res, err := e.Extract(context.Background(), "/in/foto.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "IMAGE", res.SourceType)
	assert.Equal(t, "por", res.Language)
	assert.Contains(t, res.Text, "ENERGISA")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil).WithRunner(&stubRunner{})
	_, err := e.Extract(context.Background(), "/in/nota.docx")
	require.Error(t, err)
}

func TestWeakText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "empty", in: "", want: true},
		{name: "short", in: "pagina 1", want: true},
		{name: "long but no digits", in: strings.Repeat("texto sem numeros ", 10), want: true},
		{name: "slip text", in: slipText, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weakText(tt.in))
		})
	}
}

func TestHeuristicConfidence(t *testing.T) {
	full := heuristicConfidence(slipText)
	empty := heuristicConfidence("")
	assert.Greater(t, full, float32(0.7))
	assert.Equal(t, float32(0.2), empty)
}
