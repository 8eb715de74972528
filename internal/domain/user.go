package domain

import "time"

// User is a registered account. PasswordHash never leaves the process.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a sparse update: nil means "no change".
type UserPatch struct {
	Name         *string
	Surname      *string
	Email        *string
	PasswordHash *string
}
