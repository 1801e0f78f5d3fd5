package domain

import "time"

// User represents a registered account
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

// UpdateUserInput holds profile changes together with the password re-check
type UpdateUserInput struct {
	Name            string
	Email           string
	Password        string // empty keeps the current password
	CurrentPassword string
}
