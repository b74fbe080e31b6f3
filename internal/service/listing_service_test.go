package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deoc136/eatsopinion-server/internal/repository"
)

type fakeListingStore struct {
	rows   []repository.ListingRow
	userID *int64
}

func (f *fakeListingStore) ListAll(ctx context.Context, userID *int64) ([]repository.ListingRow, error) {
	f.userID = userID
	return f.rows, nil
}

func listingRow(id int64, name string, avg float64) repository.ListingRow {
	row := repository.ListingRow{}
	row.RestaurantID = id
	row.RestaurantName = name
	row.AvgFood = sql.NullFloat64{Float64: avg, Valid: true}
	row.AvgService = sql.NullFloat64{Float64: avg, Valid: true}
	row.AvgEnvironment = sql.NullFloat64{Float64: avg, Valid: true}
	return row
}

func unratedRow(id int64, name string) repository.ListingRow {
	row := repository.ListingRow{}
	row.RestaurantID = id
	row.RestaurantName = name
	return row
}

func TestListRanksByOverallAverageDescending(t *testing.T) {
	store := &fakeListingStore{rows: []repository.ListingRow{
		listingRow(1, "Mediocre", 3.0),
		listingRow(2, "Great", 4.8),
		unratedRow(3, "Brand New"),
		listingRow(4, "Fine", 4.0),
	}}
	svc := NewListingService(store)

	got, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Great", got[0].RestaurantName)
	assert.Equal(t, "Fine", got[1].RestaurantName)
	assert.Equal(t, "Mediocre", got[2].RestaurantName)
	// Never-rated restaurants come last, not first.
	assert.Equal(t, "Brand New", got[3].RestaurantName)
	assert.Nil(t, got[3].OverallAverage)
}

func TestListTieBreaksOnRestaurantID(t *testing.T) {
	store := &fakeListingStore{rows: []repository.ListingRow{
		listingRow(9, "Second", 4.0),
		listingRow(2, "First", 4.0),
		unratedRow(8, "Unrated B"),
		unratedRow(5, "Unrated A"),
	}}
	svc := NewListingService(store)

	got, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, int64(2), got[0].RestaurantID)
	assert.Equal(t, int64(9), got[1].RestaurantID)
	assert.Equal(t, int64(5), got[2].RestaurantID)
	assert.Equal(t, int64(8), got[3].RestaurantID)
}

func TestListFiltersAccentInsensitively(t *testing.T) {
	desc := "Tapas y vinos"
	withDesc := unratedRow(3, "Rincón")
	withDesc.ShortDesc = &desc

	withFood := unratedRow(2, "La Esquina")
	withFood.FoodNames = []string{"Arepa", "Bandeja Paisa"}

	store := &fakeListingStore{rows: []repository.ListingRow{
		unratedRow(1, "Café Central"),
		withFood,
		withDesc,
	}}
	svc := NewListingService(store)

	tests := []struct {
		query string
		want  []string
	}{
		{"cafe", []string{"Café Central"}},
		{"  CAFÉ  ", []string{"Café Central"}},
		{"bandeja", []string{"La Esquina"}},
		{"vinos", []string{"Rincón"}},
		{"xyz123", nil},
		{"", []string{"Café Central", "La Esquina", "Rincón"}},
	}
	for _, tt := range tests {
		got, err := svc.List(context.Background(), nil, tt.query)
		require.NoError(t, err, "query %q", tt.query)
		names := make([]string, 0, len(got))
		for _, l := range got {
			names = append(names, l.RestaurantName)
		}
		assert.ElementsMatch(t, tt.want, names, "query %q", tt.query)
	}
}

func TestListComputesOverallAverage(t *testing.T) {
	row := unratedRow(1, "Rated")
	row.AvgFood = sql.NullFloat64{Float64: 4.5, Valid: true}
	row.AvgService = sql.NullFloat64{Float64: 5, Valid: true}
	row.AvgEnvironment = sql.NullFloat64{Float64: 3.5, Valid: true}
	row.TotalSurveys = 2

	partial := unratedRow(2, "Partial")
	partial.AvgFood = sql.NullFloat64{Float64: 4, Valid: true}

	store := &fakeListingStore{rows: []repository.ListingRow{row, partial}}
	svc := NewListingService(store)

	got, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].OverallAverage)
	assert.InDelta(t, 4.3, *got[0].OverallAverage, 1e-9)
	assert.Equal(t, 2, got[0].TotalSurveys)

	// One rated dimension is not enough for an overall figure.
	assert.Nil(t, got[1].OverallAverage)
}

func TestListJoinsCatalogSortedAndDeduped(t *testing.T) {
	row := unratedRow(1, "Deli")
	row.FoodNames = []string{"Tacos", "Arepa", "Tacos", ""}
	row.FoodCategories = []string{"mexican", "colombian", "mexican"}

	store := &fakeListingStore{rows: []repository.ListingRow{row}}
	svc := NewListingService(store)

	got, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Arepa,Tacos", got[0].FoodNames)
	assert.Equal(t, "colombian,mexican", got[0].FoodCategories)
}

func TestListPassesUserIDThroughAndKeepsFavoriteFlag(t *testing.T) {
	fav := unratedRow(1, "Liked")
	fav.IsFavorite = true

	store := &fakeListingStore{rows: []repository.ListingRow{fav, unratedRow(2, "Other")}}
	svc := NewListingService(store)

	userID := int64(42)
	got, err := svc.List(context.Background(), &userID, "")
	require.NoError(t, err)

	require.NotNil(t, store.userID)
	assert.Equal(t, int64(42), *store.userID)
	assert.True(t, got[0].IsFavorite)
	assert.False(t, got[1].IsFavorite)
}

func TestListIdenticalInputsGiveIdenticalOrder(t *testing.T) {
	store := &fakeListingStore{rows: []repository.ListingRow{
		listingRow(3, "C", 4.0),
		listingRow(1, "A", 4.0),
		listingRow(2, "B", 4.0),
	}}
	svc := NewListingService(store)

	first, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	second, err := svc.List(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
