package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "collapses space runs", in: "Valor   do    Documento", want: "Valor do Documento"},
		{name: "collapses tabs", in: "a\t\tb \t c", want: "a b c"},
		{name: "preserves newlines", in: "linha um  \nlinha dois", want: "linha um \nlinha dois"},
		{name: "normalizes crlf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "trims document", in: "  \n texto \n  ", want: "texto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Beneficiário: ACME LTDA\nVencimento: 15/06/2024",
		"  a \t b\n\n c  ",
		"R$   1.234,56",
		"já\tnormalizado",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
