package entity

import "time"

// Credential is one stored website login. Password is an opaque string the
// client encrypted before sending; the server never interprets it.
type Credential struct {
	ID        int64
	UserID    int64
	Website   string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
