package drafting

import (
	"context"

	"github.com/getmorediners/backend/internal/config"
	"go.uber.org/zap"
)

// Strategy is either ExternalService or LocalFallback. It is chosen once at
// startup and never re-evaluated per request.
type Strategy interface {
	strategy()
}

// ExternalService calls a text-generation provider and falls back locally on error.
type ExternalService struct {
	Generator Generator
}

// LocalFallback always uses the built-in letter templates.
type LocalFallback struct{}

func (ExternalService) strategy() {}
func (LocalFallback) strategy()   {}

// SelectStrategy picks the generation path from configuration. A missing
// credential is a supported setup and yields LocalFallback without error.
func SelectStrategy(ctx context.Context, cfg *config.Config, log *zap.Logger) Strategy {
	switch cfg.TextGenProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			break
		}
		gen, err := NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			log.Error("gemini generator unavailable, using local templates", zap.Error(err))
			break
		}
		log.Info("campaign drafting via gemini", zap.String("model", gen.model))
		return ExternalService{Generator: gen}
	default:
		if cfg.OpenAIAPIKey == "" {
			break
		}
		gen, err := NewOpenAIGenerator(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
		if err != nil {
			log.Error("openai generator unavailable, using local templates", zap.Error(err))
			break
		}
		log.Info("campaign drafting via openai", zap.String("model", gen.model))
		return ExternalService{Generator: gen}
	}

	log.Info("campaign drafting via local templates")
	return LocalFallback{}
}
