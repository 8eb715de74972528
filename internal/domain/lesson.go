package domain

import "time"

// DrivingLesson is one unit of the practical course.
type DrivingLesson struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	IsLocked    bool      `json:"is_locked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DrivingLessonPatch struct {
	Title       *string
	Description *string
	Duration    *int
	IsLocked    *bool
}

// LessonContent is an ordered section of a driving lesson.
type LessonContent struct {
	ID              int64     `json:"id"`
	DrivingLessonID int64     `json:"driving_lesson_id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LessonContentPatch struct {
	DrivingLessonID *int64
	Title           *string
	Content         *string
	Order           *int
}
