package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

type RestaurantRepository struct {
	db *sqlx.DB
}

func NewRestaurantRepository(db *sqlx.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// Create inserts the restaurant and fills in the generated id.
func (r *RestaurantRepository) Create(ctx context.Context, res *model.Restaurant) error {
	const insertQuery = `
		INSERT INTO restaurants
			(restaurantname, address, phone, scheduler, city, webpage, short_desc, nit, menu, logo, userid, pet_friendly)
		VALUES
			(:restaurantname, :address, :phone, :scheduler, :city, :webpage, :short_desc, :nit, :menu, :logo, :userid, :pet_friendly)
		RETURNING restaurantid
	`
	rows, err := r.db.NamedQueryContext(ctx, insertQuery, res)
	if err != nil {
		return fmt.Errorf("RestaurantRepository.Create: %w", apperr.FromStore(err))
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&res.RestaurantID); err != nil {
			return fmt.Errorf("RestaurantRepository.Create: %w", err)
		}
	}
	return rows.Err()
}

// GetByID loads one restaurant.
func (r *RestaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	var res model.Restaurant
	err := r.db.GetContext(ctx, &res, `SELECT * FROM restaurants WHERE restaurantid = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("RestaurantRepository.GetByID: %w", apperr.FromStore(err))
	}
	return &res, nil
}

// Update rewrites the mutable fields and returns the updated row. Mutations
// are keyed by id only; names are not unique.
func (r *RestaurantRepository) Update(ctx context.Context, res *model.Restaurant) (*model.Restaurant, error) {
	const updateQuery = `
		UPDATE restaurants SET
			restaurantname = :restaurantname,
			address        = :address,
			phone          = :phone,
			scheduler      = :scheduler,
			city           = :city,
			webpage        = :webpage,
			short_desc     = :short_desc,
			pet_friendly   = :pet_friendly,
			updated_at     = now()
		WHERE restaurantid = :restaurantid
		RETURNING *
	`
	rows, err := r.db.NamedQueryContext(ctx, updateQuery, res)
	if err != nil {
		return nil, fmt.Errorf("RestaurantRepository.Update: %w", apperr.FromStore(err))
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, fmt.Errorf("RestaurantRepository.Update: %w", apperr.NotFoundf("restaurant %d", res.RestaurantID))
	}
	var updated model.Restaurant
	if err := rows.StructScan(&updated); err != nil {
		return nil, fmt.Errorf("RestaurantRepository.Update: %w", err)
	}
	return &updated, rows.Err()
}

// UpdateLogo stores the image reference returned by the upload collaborator.
func (r *RestaurantRepository) UpdateLogo(ctx context.Context, id int64, ref string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE restaurants SET logo = $1, updated_at = now() WHERE restaurantid = $2`, ref, id)
	if err != nil {
		return fmt.Errorf("RestaurantRepository.UpdateLogo: %w", apperr.FromStore(err))
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("RestaurantRepository.UpdateLogo: %w", apperr.NotFoundf("restaurant %d", id))
	}
	return nil
}

// Delete removes the restaurant by id.
func (r *RestaurantRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE restaurantid = $1`, id)
	if err != nil {
		return fmt.Errorf("RestaurantRepository.Delete: %w", apperr.FromStore(err))
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("RestaurantRepository.Delete: %w", apperr.NotFoundf("restaurant %d", id))
	}
	return nil
}

// Exists reports whether a restaurant id is present.
func (r *RestaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	const q = `SELECT COUNT(1) FROM restaurants WHERE restaurantid = $1`
	if err := r.db.GetContext(ctx, &count, q, id); err != nil {
		return false, fmt.Errorf("RestaurantRepository.Exists: %w", err)
	}
	return count > 0, nil
}
