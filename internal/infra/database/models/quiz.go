package models

import (
	"time"
)

type Quiz struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	Title             string    `gorm:"type:text;not null"`
	Description       string    `gorm:"type:text"`
	Difficulty        string    `gorm:"type:text;not null"`
	NumberOfQuestions int       `gorm:"not null"`
	BestScore         string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt         time.Time `gorm:"not null;default:now()"`
}

type Question struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	QuizID       int64     `gorm:"not null;index"`
	Quiz         Quiz      `gorm:"constraint:OnDelete:CASCADE;"`
	QuestionText string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt    time.Time `gorm:"not null;default:now()"`
}

type Answer struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	QuestionID int64     `gorm:"not null;index"`
	Question   Question  `gorm:"constraint:OnDelete:CASCADE;"`
	AnswerText string    `gorm:"type:text;not null"`
	IsCorrect  bool      `gorm:"not null;default:false"`
	ImageURL   *string   `gorm:"type:text"`
	Order      int       `gorm:"column:order;not null;default:0"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt  time.Time `gorm:"not null;default:now()"`
}

type UserQuizResult struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	UserID               int64     `gorm:"not null;index"`
	User                 User      `gorm:"constraint:OnDelete:CASCADE;"`
	QuizID               int64     `gorm:"not null;index"`
	Quiz                 Quiz      `gorm:"constraint:OnDelete:CASCADE;"`
	Score                int       `gorm:"not null"`
	CorrectAnswerCount   int       `gorm:"not null"`
	IncorrectAnswerCount int       `gorm:"not null"`
	CompletedAt          time.Time `gorm:"not null"`
	CreatedAt            time.Time `gorm:"->;<-:create;not null;default:now()"`
	UpdatedAt            time.Time `gorm:"not null;default:now()"`
}
