package drafting

import (
	"context"
	"testing"

	"github.com/getmorediners/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSelectStrategy(t *testing.T) {
	log := zap.NewNop()

	t.Run("no key is local", func(t *testing.T) {
		s := SelectStrategy(context.Background(), &config.Config{TextGenProvider: config.ProviderOpenAI}, log)
		assert.IsType(t, LocalFallback{}, s)
	})

	t.Run("gemini without key is local", func(t *testing.T) {
		s := SelectStrategy(context.Background(), &config.Config{
			TextGenProvider: config.ProviderGemini,
			OpenAIAPIKey:    "ignored",
		}, log)
		assert.IsType(t, LocalFallback{}, s)
	})

	t.Run("openai key is external", func(t *testing.T) {
		s := SelectStrategy(context.Background(), &config.Config{
			TextGenProvider: config.ProviderOpenAI,
			OpenAIAPIKey:    "sk-test",
		}, log)
		ext, ok := s.(ExternalService)
		require.True(t, ok)
		assert.Equal(t, "openai", ext.Generator.Name())
	})
}

func TestFlattenHTML_PlainTextUntouched(t *testing.T) {
	in := "Dear friend,\n\n• Wine <3 pasta"
	assert.Equal(t, in, flattenHTML(in))
}
