package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user and fills in the generated id. A duplicate email
// surfaces as apperr.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	const insertQuery = `
		INSERT INTO users (username, phone, useremail, city, usergender, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING userid
	`
	err := r.db.QueryRowxContext(ctx, insertQuery,
		u.Username, u.Phone, u.UserEmail, u.City, u.Gender, u.Password,
	).Scan(&u.UserID)
	if err != nil {
		return fmt.Errorf("UserRepository.Create: %w", apperr.FromStore(err))
	}
	return nil
}

// GetByEmail loads a user plus the id of the restaurant they own, if any.
// The owned restaurant rides along because the login response needs it.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, *int64, error) {
	const selectQuery = `
		SELECT u.userid, u.username, u.useremail, u.phone, u.city, u.usergender, u.password,
		       r.restaurantid AS owned_restaurantid
		FROM users u
		LEFT JOIN restaurants r ON r.userid = u.userid
		WHERE u.useremail = $1
	`
	var row struct {
		model.User
		OwnedRestaurantID *int64 `db:"owned_restaurantid"`
	}
	if err := r.db.GetContext(ctx, &row, selectQuery, email); err != nil {
		return nil, nil, fmt.Errorf("UserRepository.GetByEmail: %w", apperr.FromStore(err))
	}
	return &row.User, row.OwnedRestaurantID, nil
}

// GetByID loads a user and the id of their owned restaurant, if any.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, *int64, error) {
	const selectQuery = `
		SELECT u.userid, u.username, u.useremail, u.phone, u.city, u.usergender, u.password,
		       r.restaurantid AS owned_restaurantid
		FROM users u
		LEFT JOIN restaurants r ON r.userid = u.userid
		WHERE u.userid = $1
	`
	var row struct {
		model.User
		OwnedRestaurantID *int64 `db:"owned_restaurantid"`
	}
	if err := r.db.GetContext(ctx, &row, selectQuery, id); err != nil {
		return nil, nil, fmt.Errorf("UserRepository.GetByID: %w", apperr.FromStore(err))
	}
	return &row.User, row.OwnedRestaurantID, nil
}

// UpdatePassword replaces the stored hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password = $1 WHERE userid = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("UserRepository.UpdatePassword: %w", apperr.FromStore(err))
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("UserRepository.UpdatePassword: %w", apperr.NotFoundf("user %d", id))
	}
	return nil
}
