package entity

import "time"

// User is a registered account as stored in the database. Password holds the
// bcrypt digest, never the plaintext.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
