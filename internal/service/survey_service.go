package service

import (
	"context"
	"fmt"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/model"
)

// SurveyStore persists surveys with their per-dish ratings atomically.
type SurveyStore interface {
	CreateWithRatings(ctx context.Context, survey *model.Survey, ratings []model.FoodRating) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Survey, error)
}

// FoodCatalog answers which dishes belong to a restaurant.
type FoodCatalog interface {
	IDsByRestaurant(ctx context.Context, restaurantID int64) (map[int64]bool, error)
}

// RestaurantChecker verifies a restaurant id exists.
type RestaurantChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// SurveyService validates and stores survey submissions.
type SurveyService struct {
	surveys     SurveyStore
	food        FoodCatalog
	restaurants RestaurantChecker
}

func NewSurveyService(surveys SurveyStore, food FoodCatalog, restaurants RestaurantChecker) *SurveyService {
	return &SurveyService{surveys: surveys, food: food, restaurants: restaurants}
}

// Submit validates the whole submission before anything is written, then
// commits the survey row and all N dish ratings in one transaction: after
// a submission either one survey and N dish ratings exist, or nothing
// does.
func (s *SurveyService) Submit(ctx context.Context, survey *model.Survey, ratings []model.FoodRating) error {
	exists, err := s.restaurants.Exists(ctx, survey.RestaurantID)
	if err != nil {
		return fmt.Errorf("SurveyService.Submit: checking restaurant: %w", err)
	}
	if !exists {
		return apperr.NotFoundf("restaurant %d", survey.RestaurantID)
	}

	for _, rating := range []*int{survey.RatingFood, survey.RatingService, survey.RatingEnvironment} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return apperr.Validationf("ratings must be between 1 and 5")
		}
	}

	if len(ratings) > 0 {
		// Every rated dish must be on the surveyed restaurant's menu.
		menu, err := s.food.IDsByRestaurant(ctx, survey.RestaurantID)
		if err != nil {
			return fmt.Errorf("SurveyService.Submit: loading menu: %w", err)
		}
		for _, rating := range ratings {
			if !menu[rating.FoodID] {
				return apperr.Validationf("food %d does not belong to restaurant %d", rating.FoodID, survey.RestaurantID)
			}
			if rating.FoodRating < 1 || rating.FoodRating > 5 {
				return apperr.Validationf("ratings must be between 1 and 5")
			}
		}
	}

	if err := s.surveys.CreateWithRatings(ctx, survey, ratings); err != nil {
		return fmt.Errorf("SurveyService.Submit: %w", err)
	}
	return nil
}

// ListByRestaurant returns a restaurant's surveys, newest first.
func (s *SurveyService) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Survey, error) {
	surveys, err := s.surveys.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("SurveyService.ListByRestaurant: %w", err)
	}
	return surveys, nil
}
