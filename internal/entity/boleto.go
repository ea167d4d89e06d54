package entity

import (
	"time"

	"github.com/google/uuid"
)

// Boleto represents a payment slip for data transfer between layers.
// Optional extraction fields mirror the nullability of the source
// document: a nil pointer means the field was absent, not invalid.
type Boleto struct {
	ID               uuid.UUID  `json:"id"`
	CompanyID        uuid.UUID  `json:"company_id"`
	Recipient        *string    `json:"recipient,omitempty"`
	Drawee           *string    `json:"drawee,omitempty"`
	DocumentDate     *time.Time `json:"document_date,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	DocumentAmount   *float64   `json:"document_amount,omitempty"`
	Amount           float64    `json:"amount"`
	Discount         *float64   `json:"discount,omitempty"`
	InterestAndFines *float64   `json:"interest_and_fines,omitempty"`
	Barcode          string     `json:"barcode"`
	GuideNumber      *string    `json:"guide_number,omitempty"`
	PixQrCodeText    *string    `json:"pix_qr_code_text,omitempty"`
	Status           string     `json:"status"`
	FileName         string     `json:"file_name"`
	Comments         *string    `json:"comments,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
