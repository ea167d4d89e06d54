package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brpayflow/boleto-tracker/internal/fields"
)

func stubExtraction(barcode, recipient *string) fields.Extraction {
	return fields.Extraction{Barcode: barcode, Recipient: recipient, FileName: "boleto.pdf"}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "raw json", in: `{"amount": 68.14}`, want: `{"amount": 68.14}`},
		{name: "json fence", in: "```json\n{\"amount\": 68.14}\n```", want: `{"amount": 68.14}`},
		{name: "bare fence", in: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "prose around object", in: "Here is the result:\n{\"a\": 1}\nHope that helps!", want: `{"a": 1}`},
		{name: "whitespace", in: "  {\"a\": 1}  ", want: `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanModelJSON(tt.in))
		})
	}
}

func TestCoerceModelOutput(t *testing.T) {
	barcode := "10499.00009 10000.000007 10000.000004 1 85300000015000"
	short := "12345"
	blank := "  "
	x := stubExtraction(&barcode, &blank)
	coerceModelOutput(&x)
	assert.Equal(t, "10499000091000000000710000000004185300000015000", *x.Barcode)
	assert.Nil(t, x.Recipient)

	y := stubExtraction(&short, nil)
	coerceModelOutput(&y)
	assert.Nil(t, y.Barcode)
}
