package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brpayflow/boleto-tracker/constants"
)

func validExtraction() Extraction {
	return Extraction{
		Amount:   floatPtr(150.00),
		Barcode:  strPtr("10499000091000000000710000000004185300000015000"),
		FileName: "conta.pdf",
	}
}

func TestGate(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		assert.Nil(t, Gate(validExtraction()))
	})

	t.Run("missing amount", func(t *testing.T) {
		x := validExtraction()
		x.Amount = nil
		err := Gate(x)
		require.NotNil(t, err)
		assert.Equal(t, constants.MsgAmountNotFound, err.Key)
	})

	t.Run("zero amount", func(t *testing.T) {
		x := validExtraction()
		x.Amount = floatPtr(0)
		err := Gate(x)
		require.NotNil(t, err)
		assert.Equal(t, constants.MsgAmountIsZero, err.Key)
	})

	t.Run("missing barcode", func(t *testing.T) {
		x := validExtraction()
		x.Barcode = nil
		err := Gate(x)
		require.NotNil(t, err)
		assert.Equal(t, constants.MsgBarcodeNotFound, err.Key)
	})
}

func TestValidateJSON(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		b, err := ValidateJSON(validExtraction())
		require.NoError(t, err)
		assert.Contains(t, string(b), `"fileName":"conta.pdf"`)
	})

	t.Run("malformed barcode rejected", func(t *testing.T) {
		x := validExtraction()
		x.Barcode = strPtr("123")
		_, err := ValidateJSON(x)
		assert.Error(t, err)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		x := validExtraction()
		x.DueDate = strPtr("15/06/2024")
		_, err := ValidateJSON(x)
		assert.Error(t, err)
	})

	t.Run("nil fields accepted", func(t *testing.T) {
		_, err := ValidateJSON(Extraction{FileName: "x.pdf"})
		assert.NoError(t, err)
	})
}
