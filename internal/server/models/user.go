package models

import "time"

// User is an account in the user directory. Email is unique and doubles as
// the access token subject.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash []byte
	CreatedAt    time.Time
}
