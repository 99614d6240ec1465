// Package datasource is the single seam between the services and storage.
// Exactly one implementation is chosen at startup: Live over postgres, or
// Fixture serving canned demo data from memory.
package datasource

import (
	"context"
	"time"

	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
)

type DataSource interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FetchRestaurantProfile returns apperr.ErrNotFound when the owner has
	// not set up a profile yet.
	FetchRestaurantProfile(ctx context.Context, ownerID uuid.UUID) (*models.Restaurant, error)
	UpsertRestaurantProfile(ctx context.Context, r *models.Restaurant) error

	ListDiners(ctx context.Context) ([]models.Diner, error)
	InsertDiners(ctx context.Context, diners []models.Diner) error
	CountDiners(ctx context.Context) (int, error)

	InsertCampaign(ctx context.Context, c *models.Campaign) error
	GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	// UpdateCampaignStatus moves a campaign from one status to another and
	// returns apperr.ErrInvalidTransition if it is no longer in from.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, from, to string, sentAt *time.Time) error
	ListCampaigns(ctx context.Context, restaurantID uuid.UUID) ([]models.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	LogAudit(ctx context.Context, entry models.AuditLog) error
	ListAudit(ctx context.Context, userID uuid.UUID, limit int) ([]models.AuditLog, error)

	Ping(ctx context.Context) error
}
