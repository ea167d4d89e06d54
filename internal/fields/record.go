package fields

// Extraction is the value object produced for one document. Every field
// except FileName is optional: a nil pointer means the source document
// did not yield that field, which is an expected outcome, not an error.
//
// JSON tags match the payload shape consumed by the board frontend.
type Extraction struct {
	Recipient        *string  `json:"recipient"`
	Drawee           *string  `json:"drawee"`
	DocumentDate     *string  `json:"documentDate"` // ISO YYYY-MM-DD
	DueDate          *string  `json:"dueDate"`      // ISO YYYY-MM-DD
	DocumentAmount   *float64 `json:"documentAmount"`
	Amount           *float64 `json:"amount"` // authoritative payable value
	Discount         *float64 `json:"discount"`
	InterestAndFines *float64 `json:"interestAndFines"`
	Barcode          *string  `json:"barcode"` // digits only, length 47 or 48
	GuideNumber      *string  `json:"guideNumber"`
	PixQrCodeText    *string  `json:"pixQrCodeText"`
	FileName         string   `json:"fileName"`
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
