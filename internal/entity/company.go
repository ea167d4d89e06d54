package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant for data transfer between layers.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
