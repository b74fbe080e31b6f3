package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Toggle flips the favorite relation and reports the resulting state. The
// delete runs first; when it removed nothing we insert, and the unique
// (userid, restaurantid) key plus ON CONFLICT DO NOTHING keeps two racing
// toggles from double-inserting.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, restaurantID int64) (liked bool, err error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE userid = $1 AND restaurantid = $2`, userID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("FavoriteRepository.Toggle: delete: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return false, nil
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO favorites (userid, restaurantid) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("FavoriteRepository.Toggle: insert: %w", err)
	}
	return true, nil
}

// IsFavorite reports whether the pair exists.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	var count int
	const q = `SELECT COUNT(1) FROM favorites WHERE userid = $1 AND restaurantid = $2`
	if err := r.db.GetContext(ctx, &count, q, userID, restaurantID); err != nil {
		return false, fmt.Errorf("FavoriteRepository.IsFavorite: %w", err)
	}
	return count > 0, nil
}
