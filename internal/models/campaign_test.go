package models

import (
	"testing"
	"time"
)

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{CampaignStatusDraft, CampaignStatusSent, true},

		{CampaignStatusSent, CampaignStatusDraft, false},
		{CampaignStatusSent, CampaignStatusSent, false},
		{CampaignStatusDraft, CampaignStatusDraft, false},
		{"nonexistent", CampaignStatusSent, false},
		{CampaignStatusDraft, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestSentIsTerminal(t *testing.T) {
	if len(ValidCampaignTransitions[CampaignStatusSent]) != 0 {
		t.Errorf("sent should have no transitions, got %v", ValidCampaignTransitions[CampaignStatusSent])
	}
}

func TestSummarizeCampaigns(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	sentAt := now.Add(-time.Hour)
	campaigns := []Campaign{
		{Status: CampaignStatusSent, TargetCount: 234, SentAt: &sentAt, CreatedAt: time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)},
		{Status: CampaignStatusSent, TargetCount: 156, SentAt: &sentAt, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Status: CampaignStatusDraft, TargetCount: 189, CreatedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	st := SummarizeCampaigns(campaigns, now)
	if st.Total != 3 || st.Sent != 2 || st.Drafts != 1 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if st.TotalReach != 390 {
		t.Errorf("TotalReach = %d, want 390", st.TotalReach)
	}
	if st.CampaignsThisMonth != 2 {
		t.Errorf("CampaignsThisMonth = %d, want 2", st.CampaignsThisMonth)
	}
}
