package models

import (
	"time"
)

// User mirrors the users table. Email carries the unique index that backstops
// the check-then-insert race at registration.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Surname   string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	Password  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}
