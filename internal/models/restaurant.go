package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the owner's business profile. One per user.
type Restaurant struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Phone       string    `json:"phone"`
	CuisineType string    `json:"cuisine_type"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
