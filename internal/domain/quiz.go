package domain

import "time"

// Quiz is a theory test grouping a set of questions.
type Quiz struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Difficulty        string    `json:"difficulty"` // Easy, Medium, Hard
	NumberOfQuestions int       `json:"number_of_questions"`
	BestScore         string    `json:"best_score"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type QuizPatch struct {
	Title             *string
	Description       *string
	Difficulty        *string
	NumberOfQuestions *int
	BestScore         *string
}

type Question struct {
	ID           int64     `json:"id"`
	QuizID       int64     `json:"quiz_id"`
	QuestionText string    `json:"question_text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type QuestionPatch struct {
	QuizID       *int64
	QuestionText *string
}

type Answer struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	AnswerText string    `json:"answer_text"`
	IsCorrect  bool      `json:"is_correct"`
	ImageURL   *string   `json:"image_url"`
	Order      int       `json:"order"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AnswerPatch struct {
	QuestionID *int64
	AnswerText *string
	IsCorrect  *bool
	ImageURL   *string
	Order      *int
	IsActive   *bool
}

// QuizResult records one completed quiz attempt.
type QuizResult struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"user_id"`
	QuizID               int64     `json:"quiz_id"`
	Score                int       `json:"score"`
	CorrectAnswerCount   int       `json:"correct_answer_count"`
	IncorrectAnswerCount int       `json:"incorrect_answer_count"`
	CompletedAt          time.Time `json:"completed_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type QuizResultPatch struct {
	Score                *int
	CorrectAnswerCount   *int
	IncorrectAnswerCount *int
	CompletedAt          *time.Time
}
