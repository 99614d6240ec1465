package directory

import (
	"net/url"
	"strings"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
)

// StateAny is accepted in place of an empty state criterion.
const StateAny = "any"

// FilterCriteria narrows the diner directory. The zero value matches everyone.
type FilterCriteria struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Interests []string `json:"interests"`
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Name == "" && c.Email == "" && c.Phone == "" && c.City == "" &&
		c.stateCode() == "" && len(c.Interests) == 0
}

func (c FilterCriteria) stateCode() string {
	if strings.EqualFold(c.State, StateAny) {
		return ""
	}
	return c.State
}

// Validate rejects a state that is neither empty, "any" nor a US state code.
func (c FilterCriteria) Validate() error {
	if s := c.stateCode(); s != "" && !models.IsValidState(s) {
		return apperr.Invalid("state", "must be a US state code or \"any\"")
	}
	return nil
}

// Match reports whether d satisfies every active criterion.
func (c FilterCriteria) Match(d models.Diner) bool {
	if c.Name != "" && !containsFold(d.Name, c.Name) {
		return false
	}
	if c.Email != "" && !containsFold(d.Email, c.Email) {
		return false
	}
	if c.Phone != "" && (d.Phone == nil || !strings.Contains(*d.Phone, c.Phone)) {
		return false
	}
	if c.City != "" && !containsFold(d.City, c.City) {
		return false
	}
	if s := c.stateCode(); s != "" && d.State != s {
		return false
	}
	if len(c.Interests) > 0 {
		found := false
		for _, want := range c.Interests {
			if d.HasInterest(want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns the diners matching c, keeping their input order.
// It never mutates diners; with empty criteria it returns the input as is.
func Filter(diners []models.Diner, c FilterCriteria) []models.Diner {
	if c.IsEmpty() {
		return diners
	}
	out := make([]models.Diner, 0, len(diners))
	for _, d := range diners {
		if c.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// CriteriaFromQuery reads criteria from URL query values. Interests may be
// repeated or comma separated.
func CriteriaFromQuery(q url.Values) FilterCriteria {
	c := FilterCriteria{
		Name:  q.Get("name"),
		Email: q.Get("email"),
		Phone: q.Get("phone"),
		City:  q.Get("city"),
		State: q.Get("state"),
	}
	for _, raw := range q["interests"] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Interests = append(c.Interests, p)
			}
		}
	}
	return c
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
