package drafting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-3.5-turbo"

	generationTemperature = 0.8
	emailMaxTokens        = 400
	smsMaxTokens          = 100
)

// OpenAIGenerator talks to an OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOpenAIGenerator(baseURL, apiKey, model string, log *zap.Logger) (*OpenAIGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		// no client timeout: the caller's context bounds the call
		httpClient: &http.Client{},
		log:        log,
	}, nil
}

func (g *OpenAIGenerator) Name() string { return "openai" }

func (g *OpenAIGenerator) GenerateEmail(ctx context.Context, in PromptInput) (EmailCopy, error) {
	content, err := g.callChat(ctx, chatRequest{
		Model:          g.model,
		Temperature:    generationTemperature,
		MaxTokens:      emailMaxTokens,
		ResponseFormat: map[string]string{"type": "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: in.System},
			{Role: "user", Content: in.Email},
		},
	})
	if err != nil {
		return EmailCopy{}, err
	}
	return parseEmailCopy(content)
}

func (g *OpenAIGenerator) GenerateSMS(ctx context.Context, in PromptInput) (string, error) {
	return g.callChat(ctx, chatRequest{
		Model:       g.model,
		Temperature: generationTemperature,
		MaxTokens:   smsMaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: in.System},
			{Role: "user", Content: in.SMS},
		},
	})
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Temperature    float32           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Messages       []chatMessage     `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGenerator) callChat(ctx context.Context, body chatRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai response missing content")
	}
	return parsed.Choices[0].Message.Content, nil
}

// parseEmailCopy accepts the JSON object, optionally wrapped in a markdown fence.
func parseEmailCopy(raw string) (EmailCopy, error) {
	var out EmailCopy
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &out); err != nil {
		return EmailCopy{}, fmt.Errorf("malformed email json: %w", err)
	}
	if strings.TrimSpace(out.Content) == "" {
		return EmailCopy{}, fmt.Errorf("email json has no content")
	}
	return out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
