package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmountsFallback(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	t.Run("document amount only falls back", func(t *testing.T) {
		got := e.extractAmounts("(=) Valor do Documento R$ 150,00")
		require.NotNil(t, got.DocumentAmount)
		require.NotNil(t, got.Amount)
		assert.InDelta(t, 150.00, *got.DocumentAmount, 1e-9)
		assert.InDelta(t, 150.00, *got.Amount, 1e-9)
		assert.Nil(t, got.Discount)
		assert.Nil(t, got.InterestAndFines)
	})

	t.Run("charged amount wins when non-zero", func(t *testing.T) {
		got := e.extractAmounts("(=) Valor do Documento R$ 200,00\n(=) Valor Cobrado R$ 180,00")
		require.NotNil(t, got.Amount)
		require.NotNil(t, got.DocumentAmount)
		assert.InDelta(t, 180.00, *got.Amount, 1e-9)
		assert.InDelta(t, 200.00, *got.DocumentAmount, 1e-9)
	})

	t.Run("zero charged amount is overridden", func(t *testing.T) {
		got := e.extractAmounts("(=) Valor do Documento R$ 200,00\n(=) Valor Cobrado R$ 0,00")
		require.NotNil(t, got.Amount)
		assert.InDelta(t, 200.00, *got.Amount, 1e-9)
	})

	t.Run("nothing found", func(t *testing.T) {
		got := e.extractAmounts("sem valores aqui")
		assert.Nil(t, got.Amount)
		assert.Nil(t, got.DocumentAmount)
	})
}

func TestExtractAmountsLastMatchWins(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	// Templates repeat the label: a column header near the top and the
	// summary block near the bottom. The later value is authoritative.
	text := "Valor do Documento 1,00\ndemonstrativo\n(=) Valor do Documento R$ 341,09"
	got := e.extractAmounts(text)
	require.NotNil(t, got.DocumentAmount)
	assert.InDelta(t, 341.09, *got.DocumentAmount, 1e-9)
}

func TestExtractAmountsAdjustments(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	text := "(-) Desconto / Abatimento R$ 10,50\n(+) Juros / Multa R$ 2,30\n(=) Valor do Documento R$ 100,00"
	got := e.extractAmounts(text)
	require.NotNil(t, got.Discount)
	require.NotNil(t, got.InterestAndFines)
	assert.InDelta(t, 10.50, *got.Discount, 1e-9)
	assert.InDelta(t, 2.30, *got.InterestAndFines, 1e-9)
}

func TestExtractAmountsLabelVariants(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	t.Run("valor documento without do", func(t *testing.T) {
		got := e.extractAmounts("Valor Documento 68,14")
		require.NotNil(t, got.DocumentAmount)
		assert.InDelta(t, 68.14, *got.DocumentAmount, 1e-9)
	})

	t.Run("outros acrescimos", func(t *testing.T) {
		got := e.extractAmounts("Outros Acréscimos 1,25")
		require.NotNil(t, got.InterestAndFines)
		assert.InDelta(t, 1.25, *got.InterestAndFines, 1e-9)
	})

	t.Run("value on next line", func(t *testing.T) {
		got := e.extractAmounts("Valor do Documento\nR$ 99,90")
		require.NotNil(t, got.DocumentAmount)
		assert.InDelta(t, 99.90, *got.DocumentAmount, 1e-9)
	})
}
