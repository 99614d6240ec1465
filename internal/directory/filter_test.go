package directory

import (
	"net/url"
	"testing"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func diner(name, email, phone, city, state string, interests ...string) models.Diner {
	d := models.Diner{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		City:      city,
		State:     state,
		Interests: interests,
	}
	if phone != "" {
		d.Phone = strPtr(phone)
	}
	return d
}

func sampleDiners() []models.Diner {
	return []models.Diner{
		diner("Sarah Johnson", "sarah.johnson@email.com", "(512) 555-0191", "Austin", "TX", "Italian", "Fine Dining"),
		diner("Mike Chen", "mike.chen@email.com", "(555) 234-5678", "New York", "NY", "Chinese", "Quick Lunch"),
		diner("Emily Rodriguez", "emily.r@gmail.com", "", "Brooklyn", "NY", "Mexican", "Vegetarian"),
		diner("David Kim", "DKIM@Example.com", "(512) 555-0194", "Austin", "TX", "Korean", "BBQ"),
	}
}

func names(diners []models.Diner) []string {
	out := make([]string, len(diners))
	for i, d := range diners {
		out[i] = d.Name
	}
	return out
}

func TestFilter_ScenarioCity(t *testing.T) {
	diners := []models.Diner{
		diner("A", "a@x.com", "", "Austin", "TX", "Italian"),
		diner("B", "b@x.com", "", "Dallas", "TX", "Mexican"),
	}

	got := Filter(diners, FilterCriteria{City: "austin"})
	require.Len(t, got, 1)
	assert.Equal(t, diners[0].ID, got[0].ID)
}

func TestFilter_ScenarioInterestsOR(t *testing.T) {
	diners := []models.Diner{
		diner("A", "a@x.com", "", "Austin", "TX", "Italian"),
		diner("B", "b@x.com", "", "Dallas", "TX", "Mexican"),
	}

	got := Filter(diners, FilterCriteria{Interests: []string{"Italian", "Mexican"}})
	assert.Equal(t, []string{"A", "B"}, names(got))
}

func TestFilter_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{"empty matches all", FilterCriteria{}, []string{"Sarah Johnson", "Mike Chen", "Emily Rodriguez", "David Kim"}},
		{"state any matches all", FilterCriteria{State: "any"}, []string{"Sarah Johnson", "Mike Chen", "Emily Rodriguez", "David Kim"}},
		{"name case insensitive", FilterCriteria{Name: "CHEN"}, []string{"Mike Chen"}},
		{"email case insensitive", FilterCriteria{Email: "dkim@example"}, []string{"David Kim"}},
		{"phone raw substring", FilterCriteria{Phone: "(512)"}, []string{"Sarah Johnson", "David Kim"}},
		{"phone punctuation not normalized", FilterCriteria{Phone: "512555"}, nil},
		{"null phone never matches", FilterCriteria{Phone: "5"}, []string{"Sarah Johnson", "Mike Chen", "David Kim"}},
		{"city substring", FilterCriteria{City: "york"}, []string{"Mike Chen"}},
		{"state exact", FilterCriteria{State: "NY"}, []string{"Mike Chen", "Emily Rodriguez"}},
		{"state is case sensitive", FilterCriteria{State: "ny"}, nil},
		{"interests are exact tags", FilterCriteria{Interests: []string{"italian"}}, nil},
		{"AND across fields", FilterCriteria{State: "TX", Interests: []string{"BBQ", "Mexican"}}, []string{"David Kim"}},
		{"no match", FilterCriteria{City: "Austin", Name: "Mike"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleDiners(), tt.criteria)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_EmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	diners := sampleDiners()
	got := Filter(diners, FilterCriteria{})
	assert.Equal(t, diners, got)
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []FilterCriteria{
		{},
		{City: "a"},
		{Phone: "555", State: "TX"},
		{Interests: []string{"Italian", "Chinese", "Vegetarian"}},
	}
	for _, c := range criteria {
		once := Filter(sampleDiners(), c)
		twice := Filter(once, c)
		assert.Equal(t, names(once), names(twice))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	diners := sampleDiners()
	before := names(diners)
	_ = Filter(diners, FilterCriteria{State: "NY"})
	assert.Equal(t, before, names(diners))
}

func TestCriteriaValidate(t *testing.T) {
	assert.NoError(t, FilterCriteria{}.Validate())
	assert.NoError(t, FilterCriteria{State: "any"}.Validate())
	assert.NoError(t, FilterCriteria{State: "TX"}.Validate())

	err := FilterCriteria{State: "Texas"}.Validate()
	assert.True(t, apperr.IsValidation(err))
}

func TestCriteriaFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("city", "Austin")
	q.Set("state", "TX")
	q.Add("interests", "Italian, Wine")
	q.Add("interests", "Brunch")

	c := CriteriaFromQuery(q)
	assert.Equal(t, "Austin", c.City)
	assert.Equal(t, "TX", c.State)
	assert.Equal(t, []string{"Italian", "Wine", "Brunch"}, c.Interests)
}
