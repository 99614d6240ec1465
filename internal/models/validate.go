package models

import (
	"strings"

	"github.com/getmorediners/backend/internal/apperr"
)

// Row validators run at the store boundary so that half-populated rows
// never reach the filtering or drafting code.

func ValidateDiner(d Diner) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return &apperr.SchemaError{Table: "diners", Field: "name", Reason: "is empty"}
	case strings.TrimSpace(d.Email) == "":
		return &apperr.SchemaError{Table: "diners", Field: "email", Reason: "is empty"}
	case strings.TrimSpace(d.City) == "":
		return &apperr.SchemaError{Table: "diners", Field: "city", Reason: "is empty"}
	case !IsValidState(d.State):
		return &apperr.SchemaError{Table: "diners", Field: "state", Reason: "is not a US state code: " + d.State}
	case d.Interests == nil:
		return &apperr.SchemaError{Table: "diners", Field: "interests", Reason: "is null"}
	}
	return nil
}

func ValidateRestaurant(r Restaurant) error {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return &apperr.SchemaError{Table: "restaurants", Field: "name", Reason: "is empty"}
	case strings.TrimSpace(r.CuisineType) == "":
		return &apperr.SchemaError{Table: "restaurants", Field: "cuisine_type", Reason: "is empty"}
	case strings.TrimSpace(r.City) == "":
		return &apperr.SchemaError{Table: "restaurants", Field: "city", Reason: "is empty"}
	case !IsValidState(r.State):
		return &apperr.SchemaError{Table: "restaurants", Field: "state", Reason: "is not a US state code: " + r.State}
	}
	return nil
}

func ValidateCampaign(c Campaign) error {
	switch {
	case !IsValidCampaignStatus(c.Status):
		return &apperr.SchemaError{Table: "campaigns", Field: "status", Reason: "is unknown: " + c.Status}
	case c.Status == CampaignStatusSent && c.SentAt == nil:
		return &apperr.SchemaError{Table: "campaigns", Field: "sent_at", Reason: "is null for a sent campaign"}
	case c.TargetCount < 0:
		return &apperr.SchemaError{Table: "campaigns", Field: "target_count", Reason: "is negative"}
	}
	return nil
}
