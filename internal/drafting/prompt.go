package drafting

import (
	"fmt"
	"strings"

	"github.com/getmorediners/backend/internal/models"
)

const (
	defaultPromptText  = "special dining promotion"
	defaultDescription = "A great local restaurant"

	emailInstruction = "Write a compelling email marketing message (200-300 words) with a catchy subject line. Format as JSON with 'subject' and 'content' fields."
	smsInstruction   = "Write a short SMS message (under 160 characters) that's punchy and drives immediate action."
)

// Request selects what to write about. Prompt wins over TemplateName when both are set.
type Request struct {
	TemplateName string `json:"template"`
	Prompt       string `json:"prompt"`
}

// PromptInput is what a Generator receives for one generation cycle.
type PromptInput struct {
	System string
	Email  string
	SMS    string
}

func promptText(req Request, tmpl *Template) string {
	if p := strings.TrimSpace(req.Prompt); p != "" {
		return p
	}
	if tmpl != nil {
		return tmpl.PromptSeed
	}
	return defaultPromptText
}

func buildPrompt(profile *models.Restaurant, text string) PromptInput {
	description := defaultDescription
	if profile.Description != nil && strings.TrimSpace(*profile.Description) != "" {
		description = *profile.Description
	}

	system := fmt.Sprintf(`You are a marketing expert for restaurants. Create compelling marketing content that drives customer action.

Restaurant Details:
- Name: %s
- Cuisine: %s
- Location: %s, %s
- Description: %s

Create content for: %s

Make it engaging, specific to the restaurant, and include a clear call-to-action.`,
		profile.Name, profile.CuisineType, profile.City, profile.State, description, text)

	return PromptInput{System: system, Email: emailInstruction, SMS: smsInstruction}
}
