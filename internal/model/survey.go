package model

import "time"

// Survey is one submitted review of a restaurant: three dimension ratings
// with free-text comments, plus zero or more per-dish ratings. Ratings are
// on a 1..5 scale and each dimension may be left blank.
type Survey struct {
	SurveyID           int64     `db:"surveyid" json:"surveyid"`
	RestaurantID       int64     `db:"restaurantid" json:"restaurantid"`
	UserID             *int64    `db:"userid" json:"userid"`
	RatingFood         *int      `db:"ratingfood" json:"ratingfood"`
	RatingService      *int      `db:"ratingservice" json:"ratingservice"`
	RatingEnvironment  *int      `db:"ratingenvironment" json:"ratingenvironment"`
	FoodComment        *string   `db:"foodcomment" json:"foodcomment"`
	ServiceComment     *string   `db:"servicecomment" json:"servicecomment"`
	EnvironmentComment *string   `db:"environmentcomment" json:"environmentcomment"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// FoodRating is a dish-level rating tied to one survey and one dish.
type FoodRating struct {
	FoodRatingID int64   `db:"foodratingid" json:"foodratingid"`
	SurveyID     int64   `db:"surveyid" json:"surveyid"`
	FoodID       int64   `db:"foodid" json:"foodid"`
	FoodRating   int     `db:"foodrating" json:"foodrating"`
	FoodComment  *string `db:"foodcomment" json:"foodcomment"`
}

// Favorite is a user-restaurant "like". Existence of the pair means liked;
// the pair is unique.
type Favorite struct {
	UserID       int64 `db:"userid" json:"userid"`
	RestaurantID int64 `db:"restaurantid" json:"restaurantid"`
}
