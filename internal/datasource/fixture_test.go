package datasource

import (
	"context"
	"testing"
	"time"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var _ DataSource = (*Fixture)(nil)
var _ DataSource = (*Live)(nil)

func TestNewFixture_Seed(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	user, err := f.GetUserByEmail(ctx, "DEMO@getmorediners.com")
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(DemoUserPassword)))

	rest, err := f.FetchRestaurantProfile(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, "Bella Vista Italian", rest.Name)
	assert.NoError(t, models.ValidateRestaurant(*rest))

	diners, err := f.ListDiners(ctx)
	require.NoError(t, err)
	require.Len(t, diners, 10)
	assert.Equal(t, "Amanda Davis", diners[0].Name)
	for _, d := range diners {
		assert.NoError(t, models.ValidateDiner(d), d.Name)
	}

	campaigns, err := f.ListCampaigns(ctx, DemoRestaurantID)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	assert.Equal(t, "Spring Menu Launch", campaigns[0].Name)
	st := models.SummarizeCampaigns(campaigns, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 390, st.TotalReach)
	assert.Equal(t, 1, st.CampaignsThisMonth)
}

func TestFixture_DemoIDsAreStable(t *testing.T) {
	a, b := NewFixture(), NewFixture()
	da, _ := a.ListDiners(context.Background())
	db, _ := b.ListDiners(context.Background())
	assert.Equal(t, da[0].ID, db[0].ID)
}

func TestFixture_ListDinersReturnsCopies(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	diners, _ := f.ListDiners(ctx)
	diners[0].Interests[0] = "Mutated"

	again, _ := f.ListDiners(ctx)
	assert.NotEqual(t, "Mutated", again[0].Interests[0])
}

func TestFixture_CreateUserRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	err := f.CreateUser(ctx, &models.User{Email: DemoUserEmail, PasswordHash: "x"})
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)

	u := &models.User{Email: "New@Example.com", PasswordHash: "x"}
	require.NoError(t, f.CreateUser(ctx, u))
	assert.Equal(t, "new@example.com", u.Email)

	_, err = f.FetchRestaurantProfile(ctx, u.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFixture_UpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	rest, err := f.FetchRestaurantProfile(ctx, DemoUserID)
	require.NoError(t, err)
	rest.Name = "Bella Vista Trattoria"
	rest.ID = uuid.Nil
	require.NoError(t, f.UpsertRestaurantProfile(ctx, rest))
	assert.Equal(t, DemoRestaurantID, rest.ID)

	got, _ := f.FetchRestaurantProfile(ctx, DemoUserID)
	assert.Equal(t, "Bella Vista Trattoria", got.Name)
}

func TestFixture_CampaignLifecycle(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	c := &models.Campaign{
		RestaurantID: DemoRestaurantID,
		Name:         "Happy Hour Special",
		Subject:      "Cheers",
		EmailContent: "Body",
		TargetCount:  3,
		Status:       models.CampaignStatusDraft,
	}
	require.NoError(t, f.InsertCampaign(ctx, c))

	list, _ := f.ListCampaigns(ctx, DemoRestaurantID)
	require.Len(t, list, 4)
	assert.Equal(t, c.ID, list[0].ID)

	now := time.Now()
	require.NoError(t, f.UpdateCampaignStatus(ctx, c.ID, models.CampaignStatusDraft, models.CampaignStatusSent, &now))
	err := f.UpdateCampaignStatus(ctx, c.ID, models.CampaignStatusDraft, models.CampaignStatusSent, &now)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	got, err := f.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusSent, got.Status)
	assert.NotNil(t, got.SentAt)

	require.NoError(t, f.DeleteCampaign(ctx, c.ID))
	assert.ErrorIs(t, f.DeleteCampaign(ctx, c.ID), apperr.ErrNotFound)
}

func TestFixture_InsertDinersValidates(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()

	err := f.InsertDiners(ctx, []models.Diner{{Name: "X", Email: "x@y.z", City: "Austin", State: "ZZ", Interests: []string{}}})
	var se *apperr.SchemaError
	assert.ErrorAs(t, err, &se)

	n, _ := f.CountDiners(ctx)
	assert.Equal(t, 10, n)
}

func TestFixture_AuditNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := NewFixture()
	uid := DemoUserID

	require.NoError(t, f.LogAudit(ctx, models.AuditLog{ActorUserID: &uid, ActorType: "user", Action: models.AuditProfileSaved, EntityType: "restaurant"}))
	require.NoError(t, f.LogAudit(ctx, models.AuditLog{ActorUserID: &uid, ActorType: "user", Action: models.AuditCampaignCreated, EntityType: "campaign"}))

	entries, err := f.ListAudit(ctx, uid, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditCampaignCreated, entries[0].Action)
}
