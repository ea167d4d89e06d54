package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBarcode(t *testing.T) {
	e := NewExtractor(DefaultOptions())

	tests := []struct {
		name string
		in   string
		want string // "" means nil
	}{
		{
			name: "segmented with dots",
			in:   "pague até o vencimento 10499.00009 10000.000007 10000.000004 1 85300000015000",
			want: "10499000091000000000710000000004185300000015000",
		},
		{
			name: "segmented without dots",
			in:   "1049900009 10000000007 10000000004 1 85300000015000",
			want: "10499000091000000000710000000004185300000015000",
		},
		{
			name: "segmented across newlines",
			in:   "10499.00009\n10000.000007\n10000.000004\n1\n85300000015000",
			want: "10499000091000000000710000000004185300000015000",
		},
		{
			name: "bare 47 digit run",
			in:   "linha digitável: 10499000091000000000710000000004185300000015000 fim",
			want: "10499000091000000000710000000004185300000015000",
		},
		{
			name: "bare 48 digit run",
			in:   strings.Repeat("8", 48),
			want: strings.Repeat("8", 48),
		},
		{
			name: "no barcode",
			in:   "documento sem linha digitável",
			want: "",
		},
		{
			name: "too short digit run",
			in:   "123456789012345678901234567890",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.extractBarcode(Normalize(tt.in))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Contains(t, []int{47, 48}, len(*got))
		})
	}
}

func TestExtractBarcodeCorruptedGroup(t *testing.T) {
	// "S" misread for "5" inside the first group. The candidate shapes
	// require digit runs, so a corrupted group never matches under either
	// substitution regime: the table never widens what can match.
	in := "104S9.00009 10000.000007 10000.000004 1 85300000015000"

	on := NewExtractor(Options{OCRSubstitution: true})
	assert.Nil(t, on.extractBarcode(in))

	off := NewExtractor(Options{OCRSubstitution: false})
	assert.Nil(t, off.extractBarcode(in))
}
