package drafting

import "context"

// EmailCopy is the structured result of an email generation call.
type EmailCopy struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Generator is an external text-generation service.
type Generator interface {
	Name() string
	GenerateEmail(ctx context.Context, in PromptInput) (EmailCopy, error)
	GenerateSMS(ctx context.Context, in PromptInput) (string, error)
}
