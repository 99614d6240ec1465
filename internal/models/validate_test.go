package models

import (
	"errors"
	"testing"

	"github.com/getmorediners/backend/internal/apperr"
)

func TestValidateDiner(t *testing.T) {
	valid := Diner{Name: "Sarah", Email: "s@example.com", City: "Austin", State: "TX", Interests: []string{}}

	tests := []struct {
		name  string
		edit  func(d *Diner)
		field string
	}{
		{"valid", func(d *Diner) {}, ""},
		{"missing name", func(d *Diner) { d.Name = " " }, "name"},
		{"missing email", func(d *Diner) { d.Email = "" }, "email"},
		{"missing city", func(d *Diner) { d.City = "" }, "city"},
		{"bad state", func(d *Diner) { d.State = "XX" }, "state"},
		{"null interests", func(d *Diner) { d.Interests = nil }, "interests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.edit(&d)
			err := ValidateDiner(d)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var se *apperr.SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("expected SchemaError, got %v", err)
			}
			if se.Field != tt.field {
				t.Errorf("field = %q, want %q", se.Field, tt.field)
			}
		})
	}
}

func TestValidateCampaign(t *testing.T) {
	if err := ValidateCampaign(Campaign{Status: CampaignStatusDraft}); err != nil {
		t.Errorf("draft without sent_at should be valid: %v", err)
	}
	if err := ValidateCampaign(Campaign{Status: CampaignStatusSent}); err == nil {
		t.Error("sent campaign without sent_at should fail")
	}
	if err := ValidateCampaign(Campaign{Status: "archived"}); err == nil {
		t.Error("unknown status should fail")
	}
}
