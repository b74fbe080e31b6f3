package model

// Food is one dish on a restaurant's menu.
type Food struct {
	FoodID       int64   `db:"foodid" json:"foodid"`
	RestaurantID int64   `db:"restaurantid" json:"restaurantid"`
	FoodName     string  `db:"foodname" json:"foodname"`
	FoodType     *string `db:"foodtype" json:"foodtype"`
	FoodCategory *string `db:"foodcategory" json:"foodcategory"`
	Price        float64 `db:"price" json:"price"`
	Description  *string `db:"description" json:"description"`
	Image        *string `db:"image" json:"image"`
}

// RatedFood is a dish annotated with its average dish rating and the
// number of ratings it has received. Rating is nil when nobody has rated
// the dish yet.
type RatedFood struct {
	Food
	FoodRatings *float64 `db:"foodratings" json:"foodratings"`
	FoodSurveys int      `db:"foodsurveys" json:"foodsurveys"`
}
