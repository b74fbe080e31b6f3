package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/deoc136/eatsopinion-server/internal/apperr"
	"github.com/deoc136/eatsopinion-server/internal/repository"
)

// RatingStore provides the raw survey aggregates.
type RatingStore interface {
	Aggregate(ctx context.Context, restaurantID int64, start, end *time.Time) (*repository.RatingAggregate, error)
	AggregateDaily(ctx context.Context, restaurantID int64, start, end *time.Time) ([]repository.DailyRatingAggregate, error)
	AggregatePerFood(ctx context.Context, restaurantID int64, start, end *time.Time) ([]repository.FoodRatingAggregate, error)
}

// RatingSummary is the per-restaurant average block. Averages are nil when
// no survey in range rated the dimension. That is "no data", not an error.
type RatingSummary struct {
	AverageRatingFood        *float64 `json:"AverageRatingFood"`
	AverageRatingService     *float64 `json:"AverageRatingService"`
	AverageRatingEnvironment *float64 `json:"AverageRatingEnvironment"`
	OverallAverage           *float64 `json:"OverallAverage"`
	TotalSurveys             int      `json:"TotalSurveys"`
}

// DailyRating is one calendar day of the report, with the response keys
// the original web client expects.
type DailyRating struct {
	CreatedAt      string   `json:"created_at"`
	AvgFood        *float64 `json:"avg_comida"`
	AvgService     *float64 `json:"avg_servicio"`
	AvgEnvironment *float64 `json:"avg_entorno"`
	SurveyCount    int      `json:"cant_encuestas"`
}

// FoodRatingReport is the per-dish average block.
type FoodRatingReport struct {
	FoodID        int64   `json:"foodid"`
	AverageRating float64 `json:"averageRating"`
	RatingCount   int     `json:"ratingCount"`
}

type RatingService struct {
	ratings RatingStore
}

func NewRatingService(ratings RatingStore) *RatingService {
	return &RatingService{ratings: ratings}
}

const dateLayout = "2006-01-02"

// parseDateRange turns optional YYYY-MM-DD bounds into timestamps. The
// range is inclusive, so the end bound comes back pushed to the following
// midnight for a strict less-than comparison.
func parseDateRange(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, nil, apperr.Validationf("startDate must be YYYY-MM-DD")
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return nil, nil, apperr.Validationf("endDate must be YYYY-MM-DD")
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	return start, end, nil
}

// Summary computes the three per-dimension averages (one decimal), the
// overall average and the survey count for a restaurant over an optional
// date range.
func (s *RatingService) Summary(ctx context.Context, restaurantID int64, startStr, endStr string) (*RatingSummary, error) {
	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	agg, err := s.ratings.Aggregate(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("RatingService.Summary: %w", err)
	}
	return &RatingSummary{
		AverageRatingFood:        roundedPtr(agg.AvgFood),
		AverageRatingService:     roundedPtr(agg.AvgService),
		AverageRatingEnvironment: roundedPtr(agg.AvgEnvironment),
		OverallAverage:           overallAverage(agg.AvgFood, agg.AvgService, agg.AvgEnvironment),
		TotalSurveys:             agg.TotalSurveys,
	}, nil
}

// Daily computes one aggregate row per calendar date, ascending.
func (s *RatingService) Daily(ctx context.Context, restaurantID int64, startStr, endStr string) ([]DailyRating, error) {
	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	rows, err := s.ratings.AggregateDaily(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("RatingService.Daily: %w", err)
	}
	report := make([]DailyRating, 0, len(rows))
	for _, row := range rows {
		report = append(report, DailyRating{
			CreatedAt:      row.Day.Format(dateLayout),
			AvgFood:        roundedPtr(row.AvgFood),
			AvgService:     roundedPtr(row.AvgService),
			AvgEnvironment: roundedPtr(row.AvgEnvironment),
			SurveyCount:    row.TotalSurveys,
		})
	}
	return report, nil
}

// PerFood computes the per-dish averages. The date bounds must be supplied
// together; a single bound is rejected rather than silently ignored.
func (s *RatingService) PerFood(ctx context.Context, restaurantID int64, startStr, endStr string) ([]FoodRatingReport, error) {
	if (startStr == "") != (endStr == "") {
		return nil, apperr.Validationf("startDate and endDate must be supplied together")
	}
	start, end, err := parseDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	rows, err := s.ratings.AggregatePerFood(ctx, restaurantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("RatingService.PerFood: %w", err)
	}
	report := make([]FoodRatingReport, 0, len(rows))
	for _, row := range rows {
		report = append(report, FoodRatingReport{
			FoodID:        row.FoodID,
			AverageRating: round1(row.AvgRating),
			RatingCount:   row.Count,
		})
	}
	return report, nil
}

// overallAverage is the mean of the three unrounded dimension means,
// rounded once at the end. It is defined only when all three dimensions
// have data, matching how the original report treated missing dimensions.
func overallAverage(food, service, environment sql.NullFloat64) *float64 {
	if !food.Valid || !service.Valid || !environment.Valid {
		return nil
	}
	overall := round1((food.Float64 + service.Float64 + environment.Float64) / 3)
	return &overall
}

func roundedPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	rounded := round1(v.Float64)
	return &rounded
}

func nullToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
