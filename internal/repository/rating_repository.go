package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// RatingAggregate carries the unrounded per-dimension means for one
// restaurant (or one day of one restaurant). A dimension is invalid when
// no survey in range rated it.
type RatingAggregate struct {
	AvgFood        sql.NullFloat64 `db:"avg_food"`
	AvgService     sql.NullFloat64 `db:"avg_service"`
	AvgEnvironment sql.NullFloat64 `db:"avg_environment"`
	TotalSurveys   int             `db:"total_surveys"`
}

// DailyRatingAggregate is one calendar day's aggregate.
type DailyRatingAggregate struct {
	Day time.Time `db:"day"`
	RatingAggregate
}

// FoodRatingAggregate is the average dish rating for one dish.
type FoodRatingAggregate struct {
	FoodID    int64   `db:"foodid"`
	AvgRating float64 `db:"avg_rating"`
	Count     int     `db:"rating_count"`
}

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// dateRangePredicate appends inclusive created_at bounds to a query. The
// end bound is passed already pushed to the following midnight, so the
// comparison is strict. User input never reaches the query text.
func dateRangePredicate(query string, args []interface{}, column string, start, end *time.Time) (string, []interface{}) {
	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND %s >= $%d", column, len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND %s < $%d", column, len(args))
	}
	return query, args
}

// Aggregate computes the per-dimension means and survey count for one
// restaurant over an optional date range. Zero matching surveys is not an
// error: the averages come back invalid and the count zero.
func (r *RatingRepository) Aggregate(ctx context.Context, restaurantID int64, start, end *time.Time) (*RatingAggregate, error) {
	query := `
		SELECT AVG(ratingfood)        AS avg_food,
		       AVG(ratingservice)     AS avg_service,
		       AVG(ratingenvironment) AS avg_environment,
		       COUNT(surveyid)        AS total_surveys
		FROM surveys
		WHERE restaurantid = $1`
	args := []interface{}{restaurantID}
	query, args = dateRangePredicate(query, args, "created_at", start, end)

	var agg RatingAggregate
	if err := r.db.GetContext(ctx, &agg, query, args...); err != nil {
		return nil, fmt.Errorf("RatingRepository.Aggregate: %w", err)
	}
	return &agg, nil
}

// AggregateDaily groups the same means by calendar date, ascending.
func (r *RatingRepository) AggregateDaily(ctx context.Context, restaurantID int64, start, end *time.Time) ([]DailyRatingAggregate, error) {
	query := `
		SELECT DATE(created_at)       AS day,
		       AVG(ratingfood)        AS avg_food,
		       AVG(ratingservice)     AS avg_service,
		       AVG(ratingenvironment) AS avg_environment,
		       COUNT(surveyid)        AS total_surveys
		FROM surveys
		WHERE restaurantid = $1`
	args := []interface{}{restaurantID}
	query, args = dateRangePredicate(query, args, "created_at", start, end)
	query += " GROUP BY DATE(created_at) ORDER BY day"

	var rows []DailyRatingAggregate
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("RatingRepository.AggregateDaily: %w", err)
	}
	return rows, nil
}

// AggregatePerFood computes average dish rating and rating count per dish
// of one restaurant. The date range applies to the parent survey's
// timestamp; dish ratings carry none of their own.
func (r *RatingRepository) AggregatePerFood(ctx context.Context, restaurantID int64, start, end *time.Time) ([]FoodRatingAggregate, error) {
	query := `
		SELECT fr.foodid,
		       AVG(fr.foodrating) AS avg_rating,
		       COUNT(fr.foodrating) AS rating_count
		FROM foodratings fr
		JOIN surveys s ON s.surveyid = fr.surveyid
		WHERE s.restaurantid = $1`
	args := []interface{}{restaurantID}
	query, args = dateRangePredicate(query, args, "s.created_at", start, end)
	query += " GROUP BY fr.foodid ORDER BY fr.foodid"

	var rows []FoodRatingAggregate
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("RatingRepository.AggregatePerFood: %w", err)
	}
	return rows, nil
}
