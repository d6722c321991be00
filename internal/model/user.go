// File: internal/model/user.go
package model

import "time"

// User is a row of the users table. PasswordHash never holds plaintext;
// it is set from the hasher's output before the row is inserted.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"password_hash"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Sanitized returns a copy with the password hash cleared, the shape every
// operation except delete hands back to callers.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
