package models

import "time"

// Session links an opaque token to an account. The same token value is
// stored in the client cookie and in the sessions table; a row is valid
// only while ExpiresAt is in the future.
type Session struct {
	Token     string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
