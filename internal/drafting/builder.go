package drafting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"go.uber.org/zap"
)

// Draft sources
const (
	SourceExternal = "external"
	SourceFallback = "fallback"
)

const freeTextCampaignName = "AI Generated Campaign"

// Draft is generated campaign copy, not yet persisted.
type Draft struct {
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	EmailContent string `json:"email_content"`
	SMSContent   string `json:"sms_content"`
	Source       string `json:"source"`
}

type Builder struct {
	strategy Strategy
	log      *zap.Logger
}

func NewBuilder(strategy Strategy, log *zap.Logger) *Builder {
	if strategy == nil {
		strategy = LocalFallback{}
	}
	return &Builder{strategy: strategy, log: log}
}

// Generate writes subject, email and SMS copy for the restaurant.
// External failures are logged and answered with Fallback; the caller
// only sees validation and profile errors.
func (b *Builder) Generate(ctx context.Context, profile *models.Restaurant, req Request) (Draft, error) {
	if profile == nil {
		return Draft{}, apperr.ErrProfileMissing
	}

	tmpl, err := resolveTemplate(req)
	if err != nil {
		return Draft{}, err
	}

	switch s := b.strategy.(type) {
	case ExternalService:
		draft, err := b.generateExternal(ctx, s.Generator, profile, req, tmpl)
		if err == nil {
			return draft, nil
		}
		b.log.Warn("campaign generation failed, using local template",
			zap.String("restaurant", profile.Name),
			zap.Error(err),
		)
	}
	return Fallback(profile, tmpl), nil
}

func resolveTemplate(req Request) (*Template, error) {
	name := strings.TrimSpace(req.TemplateName)
	if name == "" {
		if strings.TrimSpace(req.Prompt) == "" {
			return nil, apperr.Invalid("template", "choose a template or describe your campaign")
		}
		return nil, nil
	}
	t, ok := FindTemplate(name)
	if !ok {
		return nil, apperr.Invalid("template", fmt.Sprintf("unknown template %q", name))
	}
	return &t, nil
}

func (b *Builder) generateExternal(ctx context.Context, gen Generator, profile *models.Restaurant, req Request, tmpl *Template) (Draft, error) {
	in := buildPrompt(profile, promptText(req, tmpl))

	email, err := gen.GenerateEmail(ctx, in)
	if err != nil {
		return Draft{}, &apperr.GenerationError{Provider: gen.Name(), Err: err}
	}
	sms, err := gen.GenerateSMS(ctx, in)
	if err != nil {
		return Draft{}, &apperr.GenerationError{Provider: gen.Name(), Err: err}
	}

	name := freeTextCampaignName
	if tmpl != nil {
		name = tmpl.Name
	}
	subject := strings.TrimSpace(email.Subject)
	if subject == "" {
		subject = "Special Offer from " + profile.Name
	}

	body := flattenHTML(strings.TrimSpace(email.Content))
	if body == "" {
		return Draft{}, &apperr.GenerationError{Provider: gen.Name(), Err: errors.New("email body is empty after normalisation")}
	}
	text := strings.TrimSpace(strings.Trim(strings.TrimSpace(sms), `"`))
	if text == "" {
		return Draft{}, &apperr.GenerationError{Provider: gen.Name(), Err: errors.New("sms text is empty after normalisation")}
	}

	return Draft{
		Name:         name,
		Subject:      subject,
		EmailContent: body,
		SMSContent:   text,
		Source:       SourceExternal,
	}, nil
}
