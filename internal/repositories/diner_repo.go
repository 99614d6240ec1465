package repositories

import (
	"context"

	"github.com/getmorediners/backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DinerRepo struct {
	pool *pgxpool.Pool
}

func NewDinerRepo(pool *pgxpool.Pool) *DinerRepo {
	return &DinerRepo{pool: pool}
}

// List returns every diner ordered by name. A row that fails validation
// aborts the whole read.
func (r *DinerRepo) List(ctx context.Context) ([]models.Diner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, city, state, interests, created_at
		FROM diners ORDER BY lower(name), name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	diners := []models.Diner{}
	for rows.Next() {
		var d models.Diner
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.City, &d.State, &d.Interests, &d.CreatedAt); err != nil {
			return nil, err
		}
		if d.Interests == nil {
			d.Interests = []string{}
		}
		if err := models.ValidateDiner(d); err != nil {
			return nil, err
		}
		diners = append(diners, d)
	}
	return diners, rows.Err()
}

// InsertBatch writes all diners in one transaction and fills their ids.
func (r *DinerRepo) InsertBatch(ctx context.Context, diners []models.Diner) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, d := range diners {
		interests := d.Interests
		if interests == nil {
			interests = []string{}
		}
		batch.Queue(`
			INSERT INTO diners (name, email, phone, city, state, interests)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, d.Name, d.Email, d.Phone, d.City, d.State, interests)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range diners {
		if err := br.QueryRow().Scan(&diners[i].ID, &diners[i].CreatedAt); err != nil {
			br.Close()
			return err
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *DinerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM diners`).Scan(&n)
	return n, err
}
