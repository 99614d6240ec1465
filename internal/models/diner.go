package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Diner is a prospective customer contact. Read-only to the campaign flow.
type Diner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Interests []string  `json:"interests"`
	CreatedAt time.Time `json:"created_at"`
}

func (d Diner) HasInterest(tag string) bool {
	for _, i := range d.Interests {
		if i == tag {
			return true
		}
	}
	return false
}

// DinerNameLess orders diners by name ignoring case, so "alice" sorts before
// "Zed" regardless of the database collation. Ties fall back to byte order.
func DinerNameLess(a, b Diner) bool {
	la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if la != lb {
		return la < lb
	}
	return a.Name < b.Name
}

// CommonInterests is the suggested interest vocabulary. Diners may carry
// tags outside of it.
var CommonInterests = []string{
	"Italian", "Chinese", "Mexican", "Japanese", "Thai", "Indian", "American",
	"Fine Dining", "Casual", "Fast Food", "Vegetarian", "Healthy",
	"Date Night", "Family Friendly", "Business Dining", "Takeout",
	"Pizza", "BBQ", "Seafood", "Steakhouse", "Brunch", "Coffee",
}
