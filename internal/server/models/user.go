// Package models contains the persisted record types shared by
// repositories, services, and the HTTP layer.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password; the plaintext is never stored. The JSON mapping deliberately
// omits the hash so a User can be returned to clients as-is.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
