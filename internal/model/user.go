package model

// User is an account record. Password holds the bcrypt hash, never the
// plain credential, and is excluded from JSON output.
type User struct {
	UserID    int64   `db:"userid" json:"userid"`
	Username  string  `db:"username" json:"username"`
	UserEmail string  `db:"useremail" json:"useremail"`
	Phone     *string `db:"phone" json:"phone"`
	City      *string `db:"city" json:"city"`
	Gender    *string `db:"usergender" json:"usergender"`
	Password  string  `db:"password" json:"-"`
}

// Identity is the authenticated caller threaded through a request. It is
// populated once by the session middleware; RestaurantID is set when the
// user owns a restaurant.
type Identity struct {
	UserID       int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RestaurantID *int64 `json:"restaurantid"`
}
