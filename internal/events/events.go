package events

import (
	"context"

	"github.com/google/uuid"
)

// StreamCampaign carries campaign lifecycle events for the websocket hub.
const StreamCampaign = "events:campaign"

// Event types
const (
	EventCampaignCreated = "campaign_created"
	EventCampaignSent    = "campaign_sent"
	EventCampaignDeleted = "campaign_deleted"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// UserID returns the owner the event is addressed to.
func (e Event) UserID() (uuid.UUID, bool) {
	s, ok := e.Payload["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	return id, err == nil
}

// NewCampaignEvent builds an event addressed to the campaign's owner.
func NewCampaignEvent(eventType string, ownerID, campaignID uuid.UUID, status string) Event {
	return Event{
		Type: eventType,
		Payload: map[string]any{
			"user_id":     ownerID.String(),
			"campaign_id": campaignID.String(),
			"status":      status,
		},
	}
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
