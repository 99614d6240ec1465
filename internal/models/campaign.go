package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft = "draft"
	CampaignStatusSent  = "sent"
)

// SMSSoftLimit is advisory only. Content longer than this is still stored.
const SMSSoftLimit = 160

// Valid state transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft: {CampaignStatusSent},
	CampaignStatusSent:  {},
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidCampaignStatus(status string) bool {
	_, ok := ValidCampaignTransitions[status]
	return ok
}

type Campaign struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	EmailContent string     `json:"email_content"`
	SMSContent   *string    `json:"sms_content,omitempty"`
	TargetCount  int        `json:"target_count"`
	Status       string     `json:"status"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CampaignStats is the summary shown above the campaign history.
type CampaignStats struct {
	Total              int `json:"total_campaigns"`
	Drafts             int `json:"draft_campaigns"`
	Sent               int `json:"sent_campaigns"`
	TotalReach         int `json:"total_reach"`
	CampaignsThisMonth int `json:"campaigns_this_month"`
}

// SummarizeCampaigns counts campaigns by status. Reach only counts sent ones.
func SummarizeCampaigns(campaigns []Campaign, now time.Time) CampaignStats {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var st CampaignStats
	st.Total = len(campaigns)
	for _, c := range campaigns {
		switch c.Status {
		case CampaignStatusDraft:
			st.Drafts++
		case CampaignStatusSent:
			st.Sent++
			st.TotalReach += c.TargetCount
		}
		if !c.CreatedAt.Before(monthStart) {
			st.CampaignsThisMonth++
		}
	}
	return st
}
