package models

import (
	"time"
)

type DrivingLesson struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"not null"`
	IsLocked    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}

type LessonContent struct {
	ID              int64         `gorm:"primaryKey;autoIncrement"`
	DrivingLessonID int64         `gorm:"not null;index"`
	DrivingLesson   DrivingLesson `gorm:"constraint:OnDelete:CASCADE;"`
	Title           string        `gorm:"type:text;not null"`
	Content         string        `gorm:"type:text;not null"`
	Order           int           `gorm:"column:order;not null"`
	CreatedAt       time.Time     `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt       time.Time     `gorm:"not null;default:now()"`
}

type VideoTutorial struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text"`
	Duration     string    `gorm:"type:text;not null"`
	VideoURL     string    `gorm:"type:text;not null"`
	ThumbnailURL string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}
