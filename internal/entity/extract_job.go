package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extract job for data transfer between layers.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	FileID               uuid.UUID       `json:"file_id"`
	CompanyID            uuid.UUID       `json:"company_id"`
	BoletoID             *uuid.UUID      `json:"boleto_id,omitempty"`
	Format               string          `json:"format"`
	Strategy             string          `json:"strategy"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               string          `json:"status"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	SourceText           *string         `json:"source_text,omitempty"`
	ExtractedJSON        json.RawMessage `json:"extracted_json,omitempty"`
}
