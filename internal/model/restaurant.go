package model

import "time"

// Restaurant is one listed restaurant. UserID links to the owning account
// when the restaurant was registered by a user.
type Restaurant struct {
	RestaurantID   int64     `db:"restaurantid" json:"restaurantid"`
	RestaurantName string    `db:"restaurantname" json:"restaurantname"`
	Address        *string   `db:"address" json:"address"`
	Phone          *string   `db:"phone" json:"phone"`
	Scheduler      *string   `db:"scheduler" json:"scheduler"`
	City           *string   `db:"city" json:"city"`
	Webpage        *string   `db:"webpage" json:"webpage"`
	ShortDesc      *string   `db:"short_desc" json:"short_desc"`
	NIT            *string   `db:"nit" json:"nit"`
	Menu           *string   `db:"menu" json:"menu"`
	Logo           *string   `db:"logo" json:"logo"`
	UserID         *int64    `db:"userid" json:"userid"`
	PetFriendly    bool      `db:"pet_friendly" json:"pet_friendly"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Listing is a restaurant enriched with aggregated rating, favorite and
// catalog summary data for display.
type Listing struct {
	Restaurant
	IsFavorite         bool     `json:"isFavorite"`
	FoodCategories     string   `json:"foodCategories"`
	FoodNames          string   `json:"foodNames"`
	OverallAverage     *float64 `json:"overallAverage"`
	MinPrice           *float64 `json:"minPrice"`
	MaxPrice           *float64 `json:"maxPrice"`
	AvgMainCoursePrice *float64 `json:"avgMainCoursePrice"`
	TotalSurveys       int      `json:"totalSurveys"`
}
