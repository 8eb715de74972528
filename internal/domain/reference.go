package domain

import "time"

// VideoTutorial is a hosted lesson recording.
type VideoTutorial struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     string    `json:"duration"` // display string, e.g. "12:30"
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VideoTutorialPatch struct {
	Title        *string
	Description  *string
	Duration     *string
	VideoURL     *string
	ThumbnailURL *string
}

// RulesCategory groups road-rules reference articles.
type RulesCategory struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RulesCategoryPatch struct {
	Title *string
}

type RulesContent struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"category_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RulesContentPatch struct {
	CategoryID *int64
	Title      *string
	Content    *string
}
