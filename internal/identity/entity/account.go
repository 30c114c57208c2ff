package entity

import "time"

// Account is a vault user.
//
// Password holds the bcrypt hash, never the plaintext. RecoveryEmail is empty
// until the user saves one.
type Account struct {
	ID               int64
	Email            string
	Password         string
	RecoveryEmail    string
	TwoFactorEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
