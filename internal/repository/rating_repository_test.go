package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRangePredicate(t *testing.T) {
	base := "SELECT 1 FROM surveys WHERE restaurantid = $1"
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	query, args := dateRangePredicate(base, []interface{}{int64(1)}, "created_at", nil, nil)
	assert.Equal(t, base, query)
	assert.Len(t, args, 1)

	query, args = dateRangePredicate(base, []interface{}{int64(1)}, "created_at", &start, &end)
	assert.Equal(t, base+" AND created_at >= $2 AND created_at < $3", query)
	assert.Equal(t, []interface{}{int64(1), start, end}, args)

	query, args = dateRangePredicate(base, []interface{}{int64(1)}, "created_at", &start, nil)
	assert.Equal(t, base+" AND created_at >= $2", query)
	assert.Len(t, args, 2)

	query, args = dateRangePredicate(base, []interface{}{int64(1)}, "s.created_at", nil, &end)
	assert.Equal(t, base+" AND s.created_at < $2", query)
	assert.Equal(t, []interface{}{int64(1), end}, args)
}

func TestAggregateWithoutBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	rows := sqlmock.NewRows([]string{"avg_food", "avg_service", "avg_environment", "total_surveys"}).
		AddRow(4.5, 5.0, 3.5, 2)
	mock.ExpectQuery("FROM surveys").WithArgs(int64(1)).WillReturnRows(rows)

	agg, err := repo.Aggregate(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.True(t, agg.AvgFood.Valid)
	assert.InDelta(t, 4.5, agg.AvgFood.Float64, 1e-9)
	assert.Equal(t, 2, agg.TotalSurveys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateNoSurveys(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	rows := sqlmock.NewRows([]string{"avg_food", "avg_service", "avg_environment", "total_surveys"}).
		AddRow(nil, nil, nil, 0)
	mock.ExpectQuery("FROM surveys").WithArgs(int64(1)).WillReturnRows(rows)

	agg, err := repo.Aggregate(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	assert.False(t, agg.AvgFood.Valid)
	assert.False(t, agg.AvgService.Valid)
	assert.False(t, agg.AvgEnvironment.Valid)
	assert.Equal(t, 0, agg.TotalSurveys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateBindsDateBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"avg_food", "avg_service", "avg_environment", "total_surveys"}).
		AddRow(4.0, 4.0, 4.0, 1)
	mock.ExpectQuery("created_at >= \\$2 AND created_at < \\$3").
		WithArgs(int64(1), start, end).
		WillReturnRows(rows)

	_, err := repo.Aggregate(context.Background(), 1, &start, &end)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregatePerFoodGroupsByDish(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingRepository(db)

	rows := sqlmock.NewRows([]string{"foodid", "avg_rating", "rating_count"}).
		AddRow(int64(10), 4.333333, 3).
		AddRow(int64(11), 2.0, 1)
	mock.ExpectQuery("FROM foodratings").WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.AggregatePerFood(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].FoodID)
	assert.InDelta(t, 4.333333, got[0].AvgRating, 1e-9)
	assert.Equal(t, 3, got[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
