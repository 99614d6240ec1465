package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/getmorediners/backend/internal/config"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/getmorediners/backend/internal/drafting"
	"github.com/getmorediners/backend/internal/events"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("connection refused")

// recordingSource counts every call that reaches storage and can be told
// to fail campaign writes.
type recordingSource struct {
	*datasource.Fixture

	mu          sync.Mutex
	calls       []string
	failInsert  bool
	failListing bool
}

func newRecordingSource() *recordingSource {
	return &recordingSource{Fixture: datasource.NewFixture()}
}

func (r *recordingSource) record(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, op)
}

func (r *recordingSource) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recordingSource) FetchRestaurantProfile(ctx context.Context, ownerID uuid.UUID) (*models.Restaurant, error) {
	r.record("FetchRestaurantProfile")
	return r.Fixture.FetchRestaurantProfile(ctx, ownerID)
}

func (r *recordingSource) ListDiners(ctx context.Context) ([]models.Diner, error) {
	r.record("ListDiners")
	if r.failListing {
		return nil, errStoreDown
	}
	return r.Fixture.ListDiners(ctx)
}

func (r *recordingSource) InsertCampaign(ctx context.Context, c *models.Campaign) error {
	r.record("InsertCampaign")
	if r.failInsert {
		return errStoreDown
	}
	return r.Fixture.InsertCampaign(ctx, c)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

type testEnv struct {
	ds         *recordingSource
	publisher  *recordingPublisher
	selections *SelectionService
	restaurant *RestaurantService
	campaigns  *CampaignService
	auth       *AuthService
	revoker    *MemoryTokenRevoker
}

func newTestEnv() *testEnv {
	log := zap.NewNop()
	ds := newRecordingSource()
	pub := &recordingPublisher{}
	dir := directory.New(ds, log)
	selections := NewSelectionService(NewMemorySelectionStore(), dir, log)
	restaurants := NewRestaurantService(ds, log)
	builder := drafting.NewBuilder(drafting.LocalFallback{}, log)
	campaigns := NewCampaignService(ds, restaurants, builder, selections, pub, log)
	campaigns.now = func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) }
	revoker := NewMemoryTokenRevoker()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiration: time.Hour}

	return &testEnv{
		ds:         ds,
		publisher:  pub,
		selections: selections,
		restaurant: restaurants,
		campaigns:  campaigns,
		auth:       NewAuthService(ds, revoker, selections, cfg, log),
		revoker:    revoker,
	}
}
