package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFullSlip(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	text := "Beneficiário: ACME LTDA\n" +
		"Vencimento: 15/06/2024\n" +
		"(=) Valor do Documento R$ 150,00\n" +
		"10000.00009 10000.000007 10000.000004 1 85300000015000"

	got := e.Extract(text, "acme-junho.pdf")

	require.NotNil(t, got.Recipient)
	assert.Equal(t, "ACME LTDA", *got.Recipient)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-06-15", *got.DueDate)
	require.NotNil(t, got.DocumentAmount)
	assert.InDelta(t, 150.00, *got.DocumentAmount, 1e-9)
	require.NotNil(t, got.Amount)
	assert.InDelta(t, 150.00, *got.Amount, 1e-9)
	require.NotNil(t, got.Barcode)
	assert.Regexp(t, `^\d{47,48}$`, *got.Barcode)
	assert.Equal(t, "acme-junho.pdf", got.FileName)
}

func TestExtractDiscountApplied(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	text := "(=) Valor do Documento R$ 200,00\n(=) Valor Cobrado R$ 180,00"
	got := e.Extract(text, "b.pdf")

	require.NotNil(t, got.Amount)
	require.NotNil(t, got.DocumentAmount)
	assert.InDelta(t, 180.00, *got.Amount, 1e-9)
	assert.InDelta(t, 200.00, *got.DocumentAmount, 1e-9)
}

func TestExtractNothingFound(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	got := e.Extract("um texto qualquer sem nenhum campo de boleto", "vazio.pdf")

	assert.Nil(t, got.Barcode)
	assert.Nil(t, got.PixQrCodeText)
	assert.Nil(t, got.Amount)
	assert.Nil(t, got.DocumentAmount)
	assert.Nil(t, got.Recipient)
	assert.Nil(t, got.Drawee)
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.DocumentDate)
	assert.Nil(t, got.GuideNumber)
	assert.Equal(t, "vazio.pdf", got.FileName)
}

func TestExtractPixPayload(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	payload := "000201" + strings.Repeat("26580014br.gov.bcb.pix01", 7)
	require.Greater(t, len(payload), 106)

	got := e.Extract("PIX copia e cola: "+payload+" obrigado", "pix.pdf")
	require.NotNil(t, got.PixQrCodeText)
	assert.Equal(t, payload, *got.PixQrCodeText)
}

func TestExtractPixPayloadTooShort(t *testing.T) {
	e := NewExtractor(DefaultOptions())
	got := e.Extract("000201abcdef", "pix.pdf")
	assert.Nil(t, got.PixQrCodeText)
}

func TestExtractEntities(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	t.Run("recipient stops at next section", func(t *testing.T) {
		text := "Cedente: BANCO EXEMPLO S.A.\nAgência/Código do Beneficiário 1234-5"
		got := e.Extract(text, "x.pdf")
		require.NotNil(t, got.Recipient)
		assert.Equal(t, "BANCO EXEMPLO S.A.", *got.Recipient)
	})

	t.Run("wrapped recipient joins lines", func(t *testing.T) {
		text := "Beneficiário: COMPANHIA DE SANEAMENTO\nBASICO LTDA\nVencimento 10/01/2025"
		got := e.Extract(text, "x.pdf")
		require.NotNil(t, got.Recipient)
		assert.Equal(t, "COMPANHIA DE SANEAMENTO / BASICO LTDA", *got.Recipient)
	})

	t.Run("drawee", func(t *testing.T) {
		text := "Pagador: JOÃO DA SILVA\nInstruções: não receber após o vencimento"
		got := e.Extract(text, "x.pdf")
		require.NotNil(t, got.Drawee)
		assert.Equal(t, "JOÃO DA SILVA", *got.Drawee)
	})

	t.Run("label without value", func(t *testing.T) {
		text := "Sacado: \nAutenticação Mecânica"
		got := e.Extract(text, "x.pdf")
		assert.Nil(t, got.Drawee)
	})
}

func TestExtractGuideNumber(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	t.Run("document number preferred", func(t *testing.T) {
		text := "Nº Documento 4411-2\nNosso Número 109/98765432-1"
		got := e.Extract(text, "x.pdf")
		require.NotNil(t, got.GuideNumber)
		assert.Equal(t, "4411-2", *got.GuideNumber)
	})

	t.Run("nosso numero fallback", func(t *testing.T) {
		text := "Nosso Número 109/98765432-1"
		got := e.Extract(text, "x.pdf")
		require.NotNil(t, got.GuideNumber)
		assert.Equal(t, "109/98765432-1", *got.GuideNumber)
	})

	t.Run("absent", func(t *testing.T) {
		got := e.Extract("sem identificador", "x.pdf")
		assert.Nil(t, got.GuideNumber)
	})
}

func TestExtractDates(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	text := "Data do Documento 01/05/2024 Vencimento 15/06/2024"
	got := e.Extract(text, "x.pdf")
	require.NotNil(t, got.DocumentDate)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-05-01", *got.DocumentDate)
	assert.Equal(t, "2024-06-15", *got.DueDate)
}

func TestExtractDatesMisreadSeparators(t *testing.T) {
	// "I" standing in for "/" must stay a separator under both
	// substitution regimes; turning it into a digit shifts every group
	// and produces a structurally valid but wrong date.
	text := "Vencimento 15I06I2024"

	for _, opts := range []Options{{OCRSubstitution: true}, {OCRSubstitution: false}} {
		got := NewExtractor(opts).Extract(text, "conta.pdf")
		require.NotNil(t, got.DueDate, "substitution=%v", opts.OCRSubstitution)
		assert.Equal(t, "2024-06-15", *got.DueDate, "substitution=%v", opts.OCRSubstitution)
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewExtractor(DefaultOptions())
	text := "Beneficiário: ACME LTDA\nVencimento: 15/06/2024\n(=) Valor do Documento R$ 150,00"
	a := e.Extract(text, "a.pdf")
	b := e.Extract(text, "a.pdf")
	assert.Equal(t, a, b)
}
