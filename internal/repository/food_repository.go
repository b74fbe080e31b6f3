package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

type FoodRepository struct {
	db *sqlx.DB
}

func NewFoodRepository(db *sqlx.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// Create inserts a dish and fills in the generated id.
func (r *FoodRepository) Create(ctx context.Context, f *model.Food) error {
	const insertQuery = `
		INSERT INTO food (restaurantid, foodname, foodtype, foodcategory, price, description, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING foodid
	`
	err := r.db.QueryRowxContext(ctx, insertQuery,
		f.RestaurantID, f.FoodName, f.FoodType, f.FoodCategory, f.Price, f.Description, f.Image,
	).Scan(&f.FoodID)
	if err != nil {
		return fmt.Errorf("FoodRepository.Create: %w", apperr.FromStore(err))
	}
	return nil
}

// Update rewrites a dish's mutable fields, keyed by id.
func (r *FoodRepository) Update(ctx context.Context, f *model.Food) error {
	const updateQuery = `
		UPDATE food SET
			foodname     = :foodname,
			foodtype     = :foodtype,
			foodcategory = :foodcategory,
			price        = :price,
			description  = :description
		WHERE foodid = :foodid
	`
	result, err := r.db.NamedExecContext(ctx, updateQuery, f)
	if err != nil {
		return fmt.Errorf("FoodRepository.Update: %w", apperr.FromStore(err))
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("FoodRepository.Update: %w", apperr.NotFoundf("food %d", f.FoodID))
	}
	return nil
}

// ListNames returns every dish name in the catalog.
func (r *FoodRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT foodname FROM food ORDER BY foodname`); err != nil {
		return nil, fmt.Errorf("FoodRepository.ListNames: %w", err)
	}
	return names, nil
}

// ListByRestaurant returns the dishes of one restaurant.
func (r *FoodRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Food, error) {
	var food []model.Food
	err := r.db.SelectContext(ctx, &food,
		`SELECT * FROM food WHERE restaurantid = $1 ORDER BY foodid`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("FoodRepository.ListByRestaurant: %w", err)
	}
	return food, nil
}

// IDsByRestaurant returns the dish ids belonging to one restaurant. The
// survey service uses it to reject per-dish ratings that point at another
// restaurant's menu.
func (r *FoodRepository) IDsByRestaurant(ctx context.Context, restaurantID int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids,
		`SELECT foodid FROM food WHERE restaurantid = $1`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("FoodRepository.IDsByRestaurant: %w", err)
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ListRated returns a restaurant's dishes with their average dish rating
// (whole stars) and rating count. Unrated dishes still appear, with a nil
// average.
func (r *FoodRepository) ListRated(ctx context.Context, restaurantID int64) ([]model.RatedFood, error) {
	const selectQuery = `
		SELECT f.foodid, f.restaurantid, f.foodname, f.foodtype, f.foodcategory,
		       f.price, f.description, f.image,
		       ROUND(AVG(fr.foodrating), 0)::float8 AS foodratings,
		       COUNT(fr.foodrating)                 AS foodsurveys
		FROM food f
		LEFT JOIN foodratings fr ON fr.foodid = f.foodid
		WHERE f.restaurantid = $1
		GROUP BY f.foodid
		ORDER BY f.foodid
	`
	var rated []model.RatedFood
	if err := r.db.SelectContext(ctx, &rated, selectQuery, restaurantID); err != nil {
		return nil, fmt.Errorf("FoodRepository.ListRated: %w", err)
	}
	return rated, nil
}
