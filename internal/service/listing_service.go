package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/deoc136/eatsopinion-server/internal/model"
	"github.com/deoc136/eatsopinion-server/internal/repository"
	"github.com/deoc136/eatsopinion-server/internal/search"
)

// ListingStore provides the raw per-restaurant aggregate rows.
type ListingStore interface {
	ListAll(ctx context.Context, userID *int64) ([]repository.ListingRow, error)
}

// ListingService turns aggregate rows into the ranked, filtered listing.
type ListingService struct {
	listings ListingStore
}

func NewListingService(listings ListingStore) *ListingService {
	return &ListingService{listings: listings}
}

// List returns every restaurant matching the search string, ranked by
// overall average descending. Matching is a case- and accent-insensitive
// substring test against the restaurant name, any dish name and the short
// description; an empty query matches everything. Restaurants without any
// rating data sort after every rated one; ties break on restaurant id
// ascending so the order is deterministic.
func (s *ListingService) List(ctx context.Context, userID *int64, query string) ([]model.Listing, error) {
	rows, err := s.listings.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ListingService.List: %w", err)
	}

	query = strings.TrimSpace(query)
	listings := make([]model.Listing, 0, len(rows))
	for _, row := range rows {
		if !matchesQuery(row, query) {
			continue
		}
		listings = append(listings, buildListing(row))
	}

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i].OverallAverage, listings[j].OverallAverage
		switch {
		case a != nil && b != nil && *a != *b:
			return *a > *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		default:
			return listings[i].RestaurantID < listings[j].RestaurantID
		}
	})
	return listings, nil
}

func matchesQuery(row repository.ListingRow, query string) bool {
	if query == "" {
		return true
	}
	if search.Contains(row.RestaurantName, query) {
		return true
	}
	for _, name := range row.FoodNames {
		if search.Contains(name, query) {
			return true
		}
	}
	return row.ShortDesc != nil && search.Contains(*row.ShortDesc, query)
}

func buildListing(row repository.ListingRow) model.Listing {
	return model.Listing{
		Restaurant:         row.Restaurant,
		IsFavorite:         row.IsFavorite,
		FoodNames:          joinSorted(row.FoodNames),
		FoodCategories:     joinSorted(row.FoodCategories),
		OverallAverage:     overallAverage(row.AvgFood, row.AvgService, row.AvgEnvironment),
		MinPrice:           nullToPtr(row.MinPrice),
		MaxPrice:           nullToPtr(row.MaxPrice),
		AvgMainCoursePrice: nullToPtr(row.AvgMainCoursePrice),
		TotalSurveys:       row.TotalSurveys,
	}
}

// joinSorted dedups and comma-joins in lexical order, so two runs over the
// same catalog always render the same string.
func joinSorted(values []string) string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	sort.Strings(unique)
	return strings.Join(unique, ",")
}

// round1 rounds to one decimal place, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
