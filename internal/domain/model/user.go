package model

import "time"

// User represents a registered account holder.
// PasswordHash is an internal credential and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser carries the fields of an account creation request. Password is
// the raw credential; it is hashed before anything is persisted.
type NewUser struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}
