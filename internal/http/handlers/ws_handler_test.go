package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/getmorediners/backend/internal/auth"
	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/events"
	"github.com/getmorediners/backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHub(t *testing.T) (*WSHub, *events.MemoryBus, *services.MemoryTokenRevoker) {
	t.Helper()
	bus := events.NewMemoryBus()
	revoker := services.NewMemoryTokenRevoker()
	cfg := &config.Config{JWTSecret: "ws-secret", JWTExpiration: time.Hour}
	return NewWSHub(cfg, bus, revoker, zap.NewNop()), bus, revoker
}

func TestWSHub_DispatchWithoutSockets(t *testing.T) {
	hub, bus, _ := newTestHub(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, hub.Start(ctx))

	owner := uuid.New()
	event := events.NewCampaignEvent(events.EventCampaignSent, owner, uuid.New(), "sent")
	assert.NoError(t, bus.Publish(ctx, events.StreamCampaign, event))
	assert.Equal(t, 0, hub.Connections(owner))
	assert.Equal(t, 0, hub.SendToUser(owner, event))
}

func TestWSHub_DispatchDropsOwnerlessEvent(t *testing.T) {
	hub, _, _ := newTestHub(t)
	assert.NotPanics(t, func() {
		hub.dispatch(events.Event{Type: events.EventCampaignCreated, Payload: map[string]any{"user_id": 42}})
	})
}

func TestWSHub_Authenticate(t *testing.T) {
	hub, _, revoker := newTestHub(t)
	userID := uuid.New()
	token, err := auth.GenerateJWT("ws-secret", userID, "owner@example.com", time.Hour)
	require.NoError(t, err)

	claims, reason := hub.authenticate(token)
	require.NotNil(t, claims)
	assert.Empty(t, reason)
	assert.Equal(t, userID, claims.UserID)

	_, reason = hub.authenticate("")
	assert.Equal(t, "missing token", reason)

	_, reason = hub.authenticate("not-a-jwt")
	assert.Equal(t, "invalid token", reason)

	require.NoError(t, revoker.Revoke(context.Background(), claims.TokenID(), time.Hour))
	claims, reason = hub.authenticate(token)
	assert.Nil(t, claims)
	assert.Equal(t, "session has ended", reason)
}
