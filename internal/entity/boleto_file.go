package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoletoFile represents a stored source document. Content bytes are
// omitted from JSON; fetch them explicitly when serving downloads.
type BoletoFile struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"company_id"`
	BoletoID    *uuid.UUID `json:"boleto_id,omitempty"`
	SourcePath  string     `json:"source_path"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	FileSize    int        `json:"file_size"`
	ContentHash []byte     `json:"content_hash"`
	Content     []byte     `json:"-"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
