package models

import (
	"time"
)

type RulesCategory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

type RulesContent struct {
	ID         int64         `gorm:"primaryKey;autoIncrement"`
	CategoryID int64         `gorm:"not null;index"`
	Category   RulesCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
	Title      string        `gorm:"type:text;not null"`
	Content    string        `gorm:"type:text"`
	CreatedAt  time.Time     `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt  time.Time     `gorm:"not null;default:now()"`
}
