package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deoc136/eatsopinion-server/internal/model"
)

func TestCreateWithRatingsCommitsEverything(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSurveyRepository(db)

	created := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO surveys").
		WillReturnRows(sqlmock.NewRows([]string{"surveyid", "created_at"}).AddRow(int64(31), created))
	mock.ExpectQuery("INSERT INTO foodratings").
		WillReturnRows(sqlmock.NewRows([]string{"foodratingid"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO foodratings").
		WillReturnRows(sqlmock.NewRows([]string{"foodratingid"}).AddRow(int64(101)))
	mock.ExpectCommit()

	rating := 4
	survey := &model.Survey{RestaurantID: 1, RatingFood: &rating}
	ratings := []model.FoodRating{
		{FoodID: 10, FoodRating: 5},
		{FoodID: 11, FoodRating: 3},
	}
	require.NoError(t, repo.CreateWithRatings(context.Background(), survey, ratings))

	assert.Equal(t, int64(31), survey.SurveyID)
	assert.Equal(t, created, survey.CreatedAt)
	// Every rating row is tied to the new survey and got its own id.
	assert.Equal(t, int64(31), ratings[0].SurveyID)
	assert.Equal(t, int64(100), ratings[0].FoodRatingID)
	assert.Equal(t, int64(101), ratings[1].FoodRatingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithRatingsRollsBackOnRatingFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSurveyRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO surveys").
		WillReturnRows(sqlmock.NewRows([]string{"surveyid", "created_at"}).AddRow(int64(31), time.Now()))
	mock.ExpectQuery("INSERT INTO foodratings").
		WillReturnRows(sqlmock.NewRows([]string{"foodratingid"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO foodratings").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	survey := &model.Survey{RestaurantID: 1}
	ratings := []model.FoodRating{
		{FoodID: 10, FoodRating: 5},
		{FoodID: 11, FoodRating: 3},
	}
	err := repo.CreateWithRatings(context.Background(), survey, ratings)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRestaurantNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSurveyRepository(db)

	newer := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"surveyid", "restaurantid", "userid", "ratingfood", "ratingservice", "ratingenvironment",
		"foodcomment", "servicecomment", "environmentcomment", "created_at",
	}).
		AddRow(int64(2), int64(1), nil, 5, nil, nil, nil, nil, nil, newer).
		AddRow(int64(1), int64(1), nil, 3, 4, 4, "rico", nil, nil, older)
	mock.ExpectQuery("FROM surveys").WithArgs(int64(1)).WillReturnRows(rows)

	surveys, err := repo.ListByRestaurant(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, int64(2), surveys[0].SurveyID)
	assert.True(t, surveys[0].CreatedAt.After(surveys[1].CreatedAt))
	assert.Nil(t, surveys[0].RatingService)
	require.NotNil(t, surveys[1].FoodComment)
	assert.Equal(t, "rico", *surveys[1].FoodComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
