package repositories

import (
	"context"

	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepo struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepo(pool *pgxpool.Pool) *RestaurantRepo {
	return &RestaurantRepo{pool: pool}
}

const restaurantColumns = `id, user_id, name, address, city, state, zip, phone, cuisine_type, description, created_at`

func (r *RestaurantRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Restaurant, error) {
	var rest models.Restaurant
	err := r.pool.QueryRow(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants WHERE user_id = $1
	`, userID).Scan(&rest.ID, &rest.UserID, &rest.Name, &rest.Address, &rest.City, &rest.State,
		&rest.Zip, &rest.Phone, &rest.CuisineType, &rest.Description, &rest.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	if err := models.ValidateRestaurant(rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

// Upsert creates the owner's profile or replaces every editable field of it.
func (r *RestaurantRepo) Upsert(ctx context.Context, rest *models.Restaurant) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO restaurants (user_id, name, address, city, state, zip, phone, cuisine_type, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			zip = EXCLUDED.zip,
			phone = EXCLUDED.phone,
			cuisine_type = EXCLUDED.cuisine_type,
			description = EXCLUDED.description
		RETURNING id, created_at
	`, rest.UserID, rest.Name, rest.Address, rest.City, rest.State, rest.Zip, rest.Phone,
		rest.CuisineType, rest.Description,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *RestaurantRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM restaurants`).Scan(&n)
	return n, err
}
