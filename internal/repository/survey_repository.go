package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

type SurveyRepository struct {
	db *sqlx.DB
}

func NewSurveyRepository(db *sqlx.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// CreateWithRatings inserts one survey plus its per-dish ratings in a
// single transaction. Either the survey row and all N rating rows commit,
// or none do.
func (r *SurveyRepository) CreateWithRatings(ctx context.Context, survey *model.Survey, ratings []model.FoodRating) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SurveyRepository.CreateWithRatings: begin: %w", err)
	}
	defer tx.Rollback()

	const insertSurvey = `
		INSERT INTO surveys
			(restaurantid, userid, ratingfood, ratingservice, ratingenvironment,
			 foodcomment, servicecomment, environmentcomment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING surveyid, created_at
	`
	err = tx.QueryRowxContext(ctx, insertSurvey,
		survey.RestaurantID, survey.UserID,
		survey.RatingFood, survey.RatingService, survey.RatingEnvironment,
		survey.FoodComment, survey.ServiceComment, survey.EnvironmentComment,
	).Scan(&survey.SurveyID, &survey.CreatedAt)
	if err != nil {
		return fmt.Errorf("SurveyRepository.CreateWithRatings: insert survey: %w", apperr.FromStore(err))
	}

	const insertRating = `
		INSERT INTO foodratings (surveyid, foodid, foodrating, foodcomment)
		VALUES ($1, $2, $3, $4)
		RETURNING foodratingid
	`
	for i := range ratings {
		rating := &ratings[i]
		rating.SurveyID = survey.SurveyID
		err := tx.QueryRowxContext(ctx, insertRating,
			rating.SurveyID, rating.FoodID, rating.FoodRating, rating.FoodComment,
		).Scan(&rating.FoodRatingID)
		if err != nil {
			return fmt.Errorf("SurveyRepository.CreateWithRatings: insert rating: %w", apperr.FromStore(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SurveyRepository.CreateWithRatings: commit: %w", err)
	}
	return nil
}

// ListByRestaurant returns a restaurant's surveys, newest first.
func (r *SurveyRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Survey, error) {
	const selectQuery = `
		SELECT surveyid, restaurantid, userid, ratingfood, ratingservice, ratingenvironment,
		       foodcomment, servicecomment, environmentcomment, created_at
		FROM surveys
		WHERE restaurantid = $1
		ORDER BY created_at DESC
	`
	var surveys []model.Survey
	if err := r.db.SelectContext(ctx, &surveys, selectQuery, restaurantID); err != nil {
		return nil, fmt.Errorf("SurveyRepository.ListByRestaurant: %w", err)
	}
	return surveys, nil
}
