package services

import (
	"context"
	"strings"
	"time"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/events"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaveCampaignInput is a draft as edited by the owner. TargetCount nil
// means the size of the current selection.
type SaveCampaignInput struct {
	Name         string
	Subject      string
	EmailContent string
	SMSContent   string
	TargetCount  *int
}

// Validate rejects drafts missing a name, subject or email body.
func (in SaveCampaignInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return apperr.Invalid("name", "is required")
	case strings.TrimSpace(in.Subject) == "":
		return apperr.Invalid("subject", "is required")
	case strings.TrimSpace(in.EmailContent) == "":
		return apperr.Invalid("email_content", "is required")
	case in.TargetCount != nil && *in.TargetCount < 0:
		return apperr.Invalid("target_count", "must not be negative")
	}
	return nil
}

type CampaignService struct {
	ds          datasource.DataSource
	restaurants *RestaurantService
	builder     *drafting.Builder
	selections  *SelectionService
	publisher   events.Publisher
	audit       auditor
	log         *zap.Logger
	now         func() time.Time
}

func NewCampaignService(
	ds datasource.DataSource,
	restaurants *RestaurantService,
	builder *drafting.Builder,
	selections *SelectionService,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		ds:          ds,
		restaurants: restaurants,
		builder:     builder,
		selections:  selections,
		publisher:   publisher,
		audit:       auditor{ds: ds, log: log},
		log:         log,
		now:         time.Now,
	}
}

// Generate drafts copy for the owner's restaurant. It never fails because
// of the text generation service.
func (s *CampaignService) Generate(ctx context.Context, userID uuid.UUID, req drafting.Request) (drafting.Draft, error) {
	profile, err := s.restaurants.profile(ctx, userID)
	if err != nil {
		return drafting.Draft{}, err
	}
	return s.builder.Generate(ctx, profile, req)
}

// Save validates the draft before touching storage, then persists it and
// clears the selection it was built for.
func (s *CampaignService) Save(ctx context.Context, userID uuid.UUID, in SaveCampaignInput) (*models.Campaign, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.restaurants.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target int
	if in.TargetCount != nil {
		target = *in.TargetCount
	} else {
		n, err := s.selections.Count(ctx, userID)
		if err != nil {
			s.log.Warn("selection unavailable, target count is zero", zap.Error(err))
		}
		target = n
	}

	c := &models.Campaign{
		RestaurantID: profile.ID,
		Name:         strings.TrimSpace(in.Name),
		Subject:      strings.TrimSpace(in.Subject),
		EmailContent: in.EmailContent,
		SMSContent:   optional(in.SMSContent),
		TargetCount:  target,
		Status:       models.CampaignStatusDraft,
	}
	if err := s.ds.InsertCampaign(ctx, c); err != nil {
		s.log.Error("save campaign failed", zap.String("restaurant_id", profile.ID.String()), zap.Error(err))
		return nil, apperr.Persistence("save campaign", err)
	}

	if err := s.selections.Clear(ctx, userID); err != nil {
		s.log.Warn("selection not cleared after save", zap.Error(err))
	}
	s.audit.record(ctx, userID, models.AuditCampaignCreated, "campaign", c.ID, map[string]any{"target_count": c.TargetCount})
	s.publish(ctx, events.NewCampaignEvent(events.EventCampaignCreated, userID, c.ID, c.Status))

	s.log.Info("campaign saved",
		zap.String("campaign_id", c.ID.String()),
		zap.Int("target_count", c.TargetCount),
	)
	return c, nil
}

// Send marks a draft as sent. No message is delivered.
func (s *CampaignService) Send(ctx context.Context, userID, campaignID uuid.UUID) (*models.Campaign, error) {
	c, err := s.owned(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if !models.IsValidCampaignTransition(c.Status, models.CampaignStatusSent) {
		return nil, apperr.ErrInvalidTransition
	}

	sentAt := s.now().UTC()
	if err := s.ds.UpdateCampaignStatus(ctx, c.ID, c.Status, models.CampaignStatusSent, &sentAt); err != nil {
		s.log.Error("send campaign failed", zap.String("campaign_id", c.ID.String()), zap.Error(err))
		return nil, apperr.Persistence("send campaign", err)
	}
	c.Status = models.CampaignStatusSent
	c.SentAt = &sentAt

	s.audit.record(ctx, userID, models.AuditCampaignSent, "campaign", c.ID, nil)
	s.publish(ctx, events.NewCampaignEvent(events.EventCampaignSent, userID, c.ID, c.Status))
	return c, nil
}

func (s *CampaignService) Get(ctx context.Context, userID, campaignID uuid.UUID) (*models.Campaign, error) {
	return s.owned(ctx, userID, campaignID)
}

// List returns the owner's campaigns, newest first.
func (s *CampaignService) List(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	profile, err := s.restaurants.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.ds.ListCampaigns(ctx, profile.ID)
	if err != nil {
		return nil, apperr.Persistence("list campaigns", err)
	}
	return campaigns, nil
}

func (s *CampaignService) Delete(ctx context.Context, userID, campaignID uuid.UUID) error {
	c, err := s.owned(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if err := s.ds.DeleteCampaign(ctx, c.ID); err != nil {
		s.log.Error("delete campaign failed", zap.String("campaign_id", c.ID.String()), zap.Error(err))
		return apperr.Persistence("delete campaign", err)
	}

	s.audit.record(ctx, userID, models.AuditCampaignDeleted, "campaign", c.ID, map[string]any{"name": c.Name})
	s.publish(ctx, events.NewCampaignEvent(events.EventCampaignDeleted, userID, c.ID, c.Status))
	return nil
}

func (s *CampaignService) Stats(ctx context.Context, userID uuid.UUID) (models.CampaignStats, error) {
	campaigns, err := s.List(ctx, userID)
	if err != nil {
		return models.CampaignStats{}, err
	}
	return models.SummarizeCampaigns(campaigns, s.now()), nil
}

// owned loads a campaign and hides it unless it belongs to the owner's
// restaurant.
func (s *CampaignService) owned(ctx context.Context, userID, campaignID uuid.UUID) (*models.Campaign, error) {
	profile, err := s.restaurants.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	c, err := s.ds.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, apperr.Persistence("load campaign", err)
	}
	if c.RestaurantID != profile.ID {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

func (s *CampaignService) publish(ctx context.Context, ev events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamCampaign, ev); err != nil {
		s.log.Warn("publish campaign event failed", zap.String("type", ev.Type), zap.Error(err))
	}
}
