package drafting

import (
	"fmt"
	"strings"

	"github.com/getmorediners/backend/internal/models"
)

const (
	fallbackCampaignName = "Special Promotion"
	fallbackSeed         = "special promotion"
)

// Fallback writes a draft from a fixed letter skeleton. It is a pure
// function of its inputs; tmpl may be nil for free-text requests.
func Fallback(profile *models.Restaurant, tmpl *Template) Draft {
	name := fallbackCampaignName
	seed := fallbackSeed
	if tmpl != nil {
		name = tmpl.Name
		seed = tmpl.PromptSeed
	}

	var b strings.Builder
	b.WriteString("Dear Food Lover,\n\n")
	fmt.Fprintf(&b, "We're excited to invite you to experience %s's %s!\n\n", profile.Name, seed)
	fmt.Fprintf(&b, "Located in the heart of %s, our %s restaurant is offering an exclusive deal just for our valued customers.\n\n",
		profile.City, strings.ToLower(profile.CuisineType))
	b.WriteString("✨ What's included:\n")
	fmt.Fprintf(&b, "• Exceptional %s cuisine\n", profile.CuisineType)
	b.WriteString("• Warm, welcoming atmosphere\n")
	b.WriteString("• Special promotional pricing\n")
	b.WriteString("• Memorable dining experience\n\n")
	b.WriteString("This limited-time offer won't last long, so make your reservation today!\n\n")
	fmt.Fprintf(&b, "Call us or visit our restaurant in %s, %s.\n\n", profile.City, profile.State)
	b.WriteString("We can't wait to serve you!\n\n")
	b.WriteString("Best regards,\n")
	fmt.Fprintf(&b, "The %s Team\n\n", profile.Name)
	b.WriteString("P.S. Don't forget to bring your friends and family!")

	return Draft{
		Name:         name,
		Subject:      fmt.Sprintf("🍽️ Exclusive %s at %s!", name, profile.Name),
		EmailContent: b.String(),
		SMSContent: fmt.Sprintf("🍽️ %s: Special %s now! Visit us in %s today. Limited time only! Reserve now!",
			profile.Name, strings.ToLower(name), profile.City),
		Source: SourceFallback,
	}
}
