package services

import (
	"context"
	"testing"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/events"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() SaveCampaignInput {
	return SaveCampaignInput{
		Name:         "Happy Hour Special",
		Subject:      "Cheers from Bella Vista",
		EmailContent: "Join us for happy hour.",
		SMSContent:   "Happy hour at Bella Vista!",
	}
}

func TestCampaignService_SaveValidationMakesNoStoreCall(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*SaveCampaignInput)
		field string
	}{
		{"empty subject", func(in *SaveCampaignInput) { in.Subject = "" }, "subject"},
		{"blank name", func(in *SaveCampaignInput) { in.Name = "   " }, "name"},
		{"empty email", func(in *SaveCampaignInput) { in.EmailContent = "" }, "email_content"},
		{"negative target", func(in *SaveCampaignInput) { n := -1; in.TargetCount = &n }, "target_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			in := validDraft()
			tt.edit(&in)

			_, err := env.campaigns.Save(context.Background(), datasource.DemoUserID, in)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Empty(t, env.ds.Calls())
		})
	}
}

func TestCampaignService_SaveDefaultsTargetToSelection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	uid := datasource.DemoUserID

	_, err := env.selections.SelectAll(ctx, uid, directory.FilterCriteria{Interests: []string{"Wine"}})
	require.NoError(t, err)

	c, err := env.campaigns.Save(ctx, uid, validDraft())
	require.NoError(t, err)
	assert.Equal(t, 4, c.TargetCount)
	assert.Equal(t, models.CampaignStatusDraft, c.Status)
	assert.Nil(t, c.SentAt)
	require.NotNil(t, c.SMSContent)

	n, _ := env.selections.Count(ctx, uid)
	assert.Equal(t, 0, n, "selection is consumed by the saved draft")
	assert.Equal(t, []string{events.EventCampaignCreated}, env.publisher.Types())

	activity, err := NewActivityService(env.ds).List(ctx, uid, 10)
	require.NoError(t, err)
	require.NotEmpty(t, activity)
	assert.Equal(t, models.AuditCampaignCreated, activity[0].Action)
}

func TestCampaignService_SaveExplicitTarget(t *testing.T) {
	env := newTestEnv()
	in := validDraft()
	n := 0
	in.TargetCount = &n
	in.SMSContent = "  "

	c, err := env.campaigns.Save(context.Background(), datasource.DemoUserID, in)
	require.NoError(t, err)
	assert.Equal(t, 0, c.TargetCount)
	assert.Nil(t, c.SMSContent)
}

func TestCampaignService_SavePersistenceErrorIsVerbatim(t *testing.T) {
	env := newTestEnv()
	env.ds.failInsert = true

	_, err := env.campaigns.Save(context.Background(), datasource.DemoUserID, validDraft())
	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, env.publisher.Types())
}

func TestCampaignService_ProfileMissing(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, user, err := env.auth.SignUp(ctx, SignUpInput{Email: "new@owner.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = env.campaigns.Generate(ctx, user.ID, drafting.Request{TemplateName: "Happy Hour Special"})
	assert.ErrorIs(t, err, apperr.ErrProfileMissing)

	_, err = env.campaigns.Save(ctx, user.ID, validDraft())
	assert.ErrorIs(t, err, apperr.ErrProfileMissing)

	_, err = env.campaigns.List(ctx, user.ID)
	assert.ErrorIs(t, err, apperr.ErrProfileMissing)
}

func TestCampaignService_GenerateUsesProfile(t *testing.T) {
	env := newTestEnv()

	draft, err := env.campaigns.Generate(context.Background(), datasource.DemoUserID, drafting.Request{TemplateName: "Happy Hour Special"})
	require.NoError(t, err)
	assert.Equal(t, drafting.SourceFallback, draft.Source)
	assert.Contains(t, draft.EmailContent, "Bella Vista Italian")
	assert.Contains(t, draft.EmailContent, "Austin")
	assert.Contains(t, draft.SMSContent, "Bella Vista Italian")
}

func TestCampaignService_SendOnlyFromDraft(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	uid := datasource.DemoUserID

	c, err := env.campaigns.Save(ctx, uid, validDraft())
	require.NoError(t, err)

	sent, err := env.campaigns.Send(ctx, uid, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusSent, sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, 2024, sent.SentAt.Year())

	_, err = env.campaigns.Send(ctx, uid, c.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	assert.Equal(t, []string{events.EventCampaignCreated, events.EventCampaignSent}, env.publisher.Types())
}

func TestCampaignService_OtherOwnersCampaignIsHidden(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	c, err := env.campaigns.Save(ctx, datasource.DemoUserID, validDraft())
	require.NoError(t, err)

	_, other, err := env.auth.SignUp(ctx, SignUpInput{Email: "rival@owner.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = env.restaurant.Save(ctx, other.ID, RestaurantInput{
		Name: "Taco Town", Address: "1 Main St", City: "Dallas", State: "tx",
		Zip: "75201", Phone: "(214) 555-0100", CuisineType: "Mexican",
	})
	require.NoError(t, err)

	_, err = env.campaigns.Get(ctx, other.ID, c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, env.campaigns.Delete(ctx, other.ID, c.ID), apperr.ErrNotFound)

	_, err = env.campaigns.Get(ctx, datasource.DemoUserID, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCampaignService_DeleteAndStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	uid := datasource.DemoUserID

	st, err := env.campaigns.Stats(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStats{Total: 3, Drafts: 1, Sent: 2, TotalReach: 390, CampaignsThisMonth: 1}, st)

	list, err := env.campaigns.List(ctx, uid)
	require.NoError(t, err)
	require.NoError(t, env.campaigns.Delete(ctx, uid, list[0].ID))

	st, err = env.campaigns.Stats(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 0, st.Drafts)
}
