package datasource

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Demo account served in demo mode.
const (
	DemoUserEmail    = "demo@getmorediners.com"
	DemoUserPassword = "demo1234"
)

// Fixture is an in-memory DataSource. Writes are kept for the life of the
// process so a demo session behaves like a real one.
type Fixture struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]models.User
	restaurants map[uuid.UUID]models.Restaurant // by owner
	diners      []models.Diner
	campaigns   map[uuid.UUID]models.Campaign
	audit       []models.AuditLog
	now         func() time.Time
}

// NewFixture returns a store seeded with the demo account, its restaurant,
// three past campaigns and ten diners.
func NewFixture() *Fixture {
	f := &Fixture{
		users:       make(map[uuid.UUID]models.User),
		restaurants: make(map[uuid.UUID]models.Restaurant),
		campaigns:   make(map[uuid.UUID]models.Campaign),
		now:         time.Now,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	user := demoUser()
	user.PasswordHash = string(hash)
	f.users[user.ID] = user

	rest := demoRestaurant()
	f.restaurants[rest.UserID] = rest
	for _, c := range demoCampaigns() {
		f.campaigns[c.ID] = c
	}
	f.diners = demoDiners()
	return f
}

func (f *Fixture) CreateUser(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(u.Email)
	for _, existing := range f.users {
		if existing.Email == email {
			return apperr.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	u.Email = email
	u.CreatedAt = f.now()
	f.users[u.ID] = *u
	return nil
}

func (f *Fixture) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	email = strings.ToLower(email)
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *Fixture) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &u, nil
}

func (f *Fixture) FetchRestaurantProfile(_ context.Context, ownerID uuid.UUID) (*models.Restaurant, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	r, ok := f.restaurants[ownerID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &r, nil
}

func (f *Fixture) UpsertRestaurantProfile(_ context.Context, r *models.Restaurant) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.restaurants[r.UserID]; ok {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
	} else {
		r.ID = uuid.New()
		r.CreatedAt = f.now()
	}
	f.restaurants[r.UserID] = *r
	return nil
}

func (f *Fixture) ListDiners(_ context.Context) ([]models.Diner, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]models.Diner, len(f.diners))
	for i, d := range f.diners {
		d.Interests = append([]string{}, d.Interests...)
		out[i] = d
	}
	sort.SliceStable(out, func(i, j int) bool { return models.DinerNameLess(out[i], out[j]) })
	return out, nil
}

func (f *Fixture) InsertDiners(_ context.Context, diners []models.Diner) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range diners {
		if err := models.ValidateDiner(diners[i]); err != nil {
			return err
		}
	}
	for i := range diners {
		diners[i].ID = uuid.New()
		diners[i].CreatedAt = f.now()
		f.diners = append(f.diners, diners[i])
	}
	return nil
}

func (f *Fixture) CountDiners(_ context.Context) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.diners), nil
}

func (f *Fixture) InsertCampaign(_ context.Context, c *models.Campaign) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c.ID = uuid.New()
	c.CreatedAt = f.now()
	f.campaigns[c.ID] = *c
	return nil
}

func (f *Fixture) GetCampaign(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &c, nil
}

func (f *Fixture) UpdateCampaignStatus(_ context.Context, id uuid.UUID, from, to string, sentAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.campaigns[id]
	if !ok {
		return apperr.ErrNotFound
	}
	if c.Status != from {
		return apperr.ErrInvalidTransition
	}
	c.Status = to
	c.SentAt = sentAt
	f.campaigns[id] = c
	return nil
}

func (f *Fixture) ListCampaigns(_ context.Context, restaurantID uuid.UUID) ([]models.Campaign, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := []models.Campaign{}
	for _, c := range f.campaigns {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *Fixture) DeleteCampaign(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.campaigns[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.campaigns, id)
	return nil
}

func (f *Fixture) LogAudit(_ context.Context, entry models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry.ID = uuid.New()
	entry.CreatedAt = f.now()
	f.audit = append(f.audit, entry)
	return nil
}

func (f *Fixture) ListAudit(_ context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	out := []models.AuditLog{}
	for i := len(f.audit) - 1; i >= 0 && len(out) < limit; i-- {
		e := f.audit[i]
		if e.ActorUserID != nil && *e.ActorUserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *Fixture) Ping(context.Context) error { return nil }
