package drafting

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiGenerator uses the Google GenAI SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, log: log}, nil
}

func (g *GeminiGenerator) Name() string { return "gemini" }

func (g *GeminiGenerator) GenerateEmail(ctx context.Context, in PromptInput) (EmailCopy, error) {
	text, err := g.generate(ctx, in.System, in.Email, emailMaxTokens, "application/json")
	if err != nil {
		return EmailCopy{}, err
	}
	return parseEmailCopy(text)
}

func (g *GeminiGenerator) GenerateSMS(ctx context.Context, in PromptInput) (string, error) {
	return g.generate(ctx, in.System, in.SMS, smsMaxTokens, "")
}

func (g *GeminiGenerator) generate(ctx context.Context, system, user string, maxTokens int32, mime string) (string, error) {
	temperature := float32(generationTemperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   maxTokens,
		ResponseMIMEType:  mime,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(user, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("empty candidate text")
	}
	return b.String(), nil
}
