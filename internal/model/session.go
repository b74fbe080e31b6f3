package model

import "time"

// Session is a durable login session. The row outlives the process, so a
// restart does not log anyone out; deleting the row revokes the token.
type Session struct {
	SessionID string    `db:"sessionid" json:"sessionid"`
	UserID    int64     `db:"userid" json:"userid"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
