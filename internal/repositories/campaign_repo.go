package repositories

import (
	"context"
	"time"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `id, restaurant_id, name, subject, email_content, sms_content, target_count, status, sent_at, created_at`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Subject, &c.EmailContent,
		&c.SMSContent, &c.TargetCount, &c.Status, &c.SentAt, &c.CreatedAt); err != nil {
		return nil, err
	}
	if err := models.ValidateCampaign(c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (restaurant_id, name, subject, email_content, sms_content, target_count, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, c.RestaurantID, c.Name, c.Subject, c.EmailContent, c.SMSContent,
		c.TargetCount, c.Status, c.SentAt,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE id = $1
	`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// UpdateStatus only moves a campaign that is still in fromStatus, so two
// concurrent sends cannot both succeed.
func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, sentAt *time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, sent_at = $2
		WHERE id = $3 AND status = $4
	`, toStatus, sentAt, id, fromStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrInvalidTransition
	}
	return nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// ListByRestaurant returns the restaurant's campaigns, newest first.
func (r *CampaignRepo) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}
