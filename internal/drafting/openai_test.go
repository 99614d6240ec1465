package drafting

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatServer(t *testing.T, handle func(req chatRequest) (int, string)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		status, body := handle(req)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func chatBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]string{"role": "assistant", "content": content}}},
	})
	return string(b)
}

func TestOpenAIGenerator_Email(t *testing.T) {
	server := newChatServer(t, func(req chatRequest) (int, string) {
		assert.Equal(t, DefaultOpenAIModel, req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])
		assert.Equal(t, emailMaxTokens, req.MaxTokens)
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
		}
		return http.StatusOK, chatBody("```json\n{\"subject\":\"Hi\",\"content\":\"Come by\"}\n```")
	})

	gen, err := NewOpenAIGenerator(server.URL, "test-key", "", zap.NewNop())
	require.NoError(t, err)

	out, err := gen.GenerateEmail(context.Background(), PromptInput{System: "sys", Email: "email"})
	require.NoError(t, err)
	assert.Equal(t, EmailCopy{Subject: "Hi", Content: "Come by"}, out)
}

func TestOpenAIGenerator_SMS(t *testing.T) {
	server := newChatServer(t, func(req chatRequest) (int, string) {
		assert.Nil(t, req.ResponseFormat)
		assert.Equal(t, smsMaxTokens, req.MaxTokens)
		return http.StatusOK, chatBody("Tacos tonight!")
	})

	gen, err := NewOpenAIGenerator(server.URL, "test-key", "gpt-4o-mini", zap.NewNop())
	require.NoError(t, err)

	out, err := gen.GenerateSMS(context.Background(), PromptInput{System: "sys", SMS: "sms"})
	require.NoError(t, err)
	assert.Equal(t, "Tacos tonight!", out)
}

func TestOpenAIGenerator_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"quota", http.StatusTooManyRequests, `{"error":{"message":"quota"}}`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
		{"malformed email json", http.StatusOK, chatBody("Subject: Hi")},
		{"email without content", http.StatusOK, chatBody(`{"subject":"Hi"}`)},
		{"not json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newChatServer(t, func(chatRequest) (int, string) { return tt.status, tt.body })
			gen, err := NewOpenAIGenerator(server.URL, "test-key", "", zap.NewNop())
			require.NoError(t, err)

			_, err = gen.GenerateEmail(context.Background(), PromptInput{})
			assert.Error(t, err)
		})
	}
}

func TestOpenAIGenerator_RequiresKey(t *testing.T) {
	_, err := NewOpenAIGenerator("", " ", "", zap.NewNop())
	assert.Error(t, err)
}

func TestOpenAIOutageFallsBack(t *testing.T) {
	server := newChatServer(t, func(chatRequest) (int, string) {
		return http.StatusInternalServerError, "boom"
	})
	gen, err := NewOpenAIGenerator(server.URL, "test-key", "", zap.NewNop())
	require.NoError(t, err)

	b := NewBuilder(ExternalService{Generator: gen}, zap.NewNop())
	d, err := b.Generate(context.Background(), bellaVista(), Request{TemplateName: "Happy Hour Special"})
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, d.Source)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(` {"a":1} `))
}
