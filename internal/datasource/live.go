package datasource

import (
	"context"
	"time"

	"github.com/getmorediners/backend/internal/models"
	"github.com/getmorediners/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Live reads and writes postgres through the repositories.
type Live struct {
	pool        *pgxpool.Pool
	users       *repositories.UserRepo
	restaurants *repositories.RestaurantRepo
	diners      *repositories.DinerRepo
	campaigns   *repositories.CampaignRepo
	audit       *repositories.AuditRepo
}

func NewLive(pool *pgxpool.Pool) *Live {
	return &Live{
		pool:        pool,
		users:       repositories.NewUserRepo(pool),
		restaurants: repositories.NewRestaurantRepo(pool),
		diners:      repositories.NewDinerRepo(pool),
		campaigns:   repositories.NewCampaignRepo(pool),
		audit:       repositories.NewAuditRepo(pool),
	}
}

func (l *Live) CreateUser(ctx context.Context, u *models.User) error {
	return l.users.Create(ctx, u)
}

func (l *Live) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return l.users.GetByEmail(ctx, email)
}

func (l *Live) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return l.users.GetByID(ctx, id)
}

func (l *Live) FetchRestaurantProfile(ctx context.Context, ownerID uuid.UUID) (*models.Restaurant, error) {
	return l.restaurants.GetByUserID(ctx, ownerID)
}

func (l *Live) UpsertRestaurantProfile(ctx context.Context, r *models.Restaurant) error {
	return l.restaurants.Upsert(ctx, r)
}

func (l *Live) ListDiners(ctx context.Context) ([]models.Diner, error) {
	return l.diners.List(ctx)
}

func (l *Live) InsertDiners(ctx context.Context, diners []models.Diner) error {
	return l.diners.InsertBatch(ctx, diners)
}

func (l *Live) CountDiners(ctx context.Context) (int, error) {
	return l.diners.Count(ctx)
}

func (l *Live) InsertCampaign(ctx context.Context, c *models.Campaign) error {
	return l.campaigns.Create(ctx, c)
}

func (l *Live) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return l.campaigns.GetByID(ctx, id)
}

func (l *Live) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, from, to string, sentAt *time.Time) error {
	return l.campaigns.UpdateStatus(ctx, id, from, to, sentAt)
}

func (l *Live) ListCampaigns(ctx context.Context, restaurantID uuid.UUID) ([]models.Campaign, error) {
	return l.campaigns.ListByRestaurant(ctx, restaurantID)
}

func (l *Live) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	return l.campaigns.Delete(ctx, id)
}

func (l *Live) LogAudit(ctx context.Context, entry models.AuditLog) error {
	return l.audit.Log(ctx, entry)
}

func (l *Live) ListAudit(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error) {
	return l.audit.ListByActor(ctx, userID, limit)
}

func (l *Live) Ping(ctx context.Context) error {
	return l.pool.Ping(ctx)
}

// TableCounts reports the row count of each table, for smoke checks.
func (l *Live) TableCounts(ctx context.Context) (map[string]int, error) {
	counters := map[string]func(context.Context) (int, error){
		"users":       l.users.Count,
		"restaurants": l.restaurants.Count,
		"diners":      l.diners.Count,
		"campaigns":   l.campaigns.Count,
	}
	out := make(map[string]int, len(counters))
	for table, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return nil, err
		}
		out[table] = n
	}
	return out, nil
}
