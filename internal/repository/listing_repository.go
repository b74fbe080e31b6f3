package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/deoc136/eatsopinion-server/internal/model"
)

// ListingRow is one restaurant with the raw aggregates the ranker needs:
// favorite membership for the requesting user, distinct dish names and
// categories, unrounded dimension averages, price extrema and survey
// count. Ranking, rounding and search filtering happen in the service.
type ListingRow struct {
	model.Restaurant
	IsFavorite         bool            `db:"is_favorite"`
	FoodNames          pq.StringArray  `db:"food_names"`
	FoodCategories     pq.StringArray  `db:"food_categories"`
	AvgFood            sql.NullFloat64 `db:"avg_food"`
	AvgService         sql.NullFloat64 `db:"avg_service"`
	AvgEnvironment     sql.NullFloat64 `db:"avg_environment"`
	MinPrice           sql.NullFloat64 `db:"min_price"`
	MaxPrice           sql.NullFloat64 `db:"max_price"`
	AvgMainCoursePrice sql.NullFloat64 `db:"avg_main_course_price"`
	TotalSurveys       int             `db:"total_surveys"`
}

type ListingRepository struct {
	db *sqlx.DB
}

func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// mainCourseType marks dishes counted into avg_main_course_price.
const mainCourseType = "main course"

// ListAll returns every restaurant annotated with its aggregates. userID
// is nil for anonymous browsing, which makes is_favorite false everywhere.
func (r *ListingRepository) ListAll(ctx context.Context, userID *int64) ([]ListingRow, error) {
	const selectQuery = `
		SELECT r.restaurantid, r.restaurantname, r.address, r.phone, r.scheduler, r.city,
		       r.webpage, r.short_desc, r.nit, r.menu, r.logo, r.userid, r.pet_friendly, r.updated_at,
		       EXISTS (
		           SELECT 1 FROM favorites fav
		           WHERE fav.restaurantid = r.restaurantid AND fav.userid = $1::bigint
		       ) AS is_favorite,
		       COALESCE((
		           SELECT array_agg(DISTINCT f.foodname)
		           FROM food f WHERE f.restaurantid = r.restaurantid
		       ), '{}') AS food_names,
		       COALESCE((
		           SELECT array_agg(DISTINCT f.foodcategory)
		           FROM food f WHERE f.restaurantid = r.restaurantid AND f.foodcategory IS NOT NULL
		       ), '{}') AS food_categories,
		       (SELECT AVG(s.ratingfood)        FROM surveys s WHERE s.restaurantid = r.restaurantid) AS avg_food,
		       (SELECT AVG(s.ratingservice)     FROM surveys s WHERE s.restaurantid = r.restaurantid) AS avg_service,
		       (SELECT AVG(s.ratingenvironment) FROM surveys s WHERE s.restaurantid = r.restaurantid) AS avg_environment,
		       (SELECT MIN(f.price) FROM food f WHERE f.restaurantid = r.restaurantid) AS min_price,
		       (SELECT MAX(f.price) FROM food f WHERE f.restaurantid = r.restaurantid) AS max_price,
		       (SELECT AVG(f.price) FROM food f
		        WHERE f.restaurantid = r.restaurantid AND LOWER(f.foodtype) = $2) AS avg_main_course_price,
		       (SELECT COUNT(*) FROM surveys s WHERE s.restaurantid = r.restaurantid) AS total_surveys
		FROM restaurants r
		ORDER BY r.restaurantid
	`
	var rows []ListingRow
	if err := r.db.SelectContext(ctx, &rows, selectQuery, userID, mainCourseType); err != nil {
		return nil, fmt.Errorf("ListingRepository.ListAll: %w", err)
	}
	return rows, nil
}
