package usecase

import (
	"context"

	"github.com/drives-academy/academy-api/internal/domain"
)

// LessonRepository defines storage operations for driving lessons and their
// ordered contents.
type LessonRepository interface {
	CreateLesson(ctx context.Context, l domain.DrivingLesson) (domain.DrivingLesson, error)
	ListLessons(ctx context.Context) ([]domain.DrivingLesson, error)
	GetLesson(ctx context.Context, id int64) (domain.DrivingLesson, error)
	UpdateLesson(ctx context.Context, id int64, patch domain.DrivingLessonPatch) (domain.DrivingLesson, error)
	DeleteLesson(ctx context.Context, id int64) error

	CreateContent(ctx context.Context, c domain.LessonContent) (domain.LessonContent, error)
	ListContents(ctx context.Context) ([]domain.LessonContent, error)
	GetContent(ctx context.Context, id int64) (domain.LessonContent, error)
	UpdateContent(ctx context.Context, id int64, patch domain.LessonContentPatch) (domain.LessonContent, error)
	DeleteContent(ctx context.Context, id int64) error
}

// QuizRepository defines storage operations for quizzes.
type QuizRepository interface {
	Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error)
	List(ctx context.Context) ([]domain.Quiz, error)
	Get(ctx context.Context, id int64) (domain.Quiz, error)
	Update(ctx context.Context, id int64, patch domain.QuizPatch) (domain.Quiz, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionRepository defines storage operations for quiz questions.
type QuestionRepository interface {
	Create(ctx context.Context, q domain.Question) (domain.Question, error)
	List(ctx context.Context) ([]domain.Question, error)
	ListByQuiz(ctx context.Context, quizID int64) ([]domain.Question, error)
	Get(ctx context.Context, id int64) (domain.Question, error)
	Update(ctx context.Context, id int64, patch domain.QuestionPatch) (domain.Question, error)
	Delete(ctx context.Context, id int64) error
}

// AnswerRepository defines storage operations for question answers.
type AnswerRepository interface {
	Create(ctx context.Context, a domain.Answer) (domain.Answer, error)
	List(ctx context.Context) ([]domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error)
	Get(ctx context.Context, id int64) (domain.Answer, error)
	Update(ctx context.Context, id int64, patch domain.AnswerPatch) (domain.Answer, error)
	Delete(ctx context.Context, id int64) error
}

// ResultRepository defines storage operations for quiz results.
type ResultRepository interface {
	Create(ctx context.Context, res domain.QuizResult) (domain.QuizResult, error)
	List(ctx context.Context) ([]domain.QuizResult, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error)
	ListByQuiz(ctx context.Context, quizID int64) ([]domain.QuizResult, error)
	Get(ctx context.Context, id int64) (domain.QuizResult, error)
	Update(ctx context.Context, id int64, patch domain.QuizResultPatch) (domain.QuizResult, error)
	Delete(ctx context.Context, id int64) error
}

// ResultPublisher broadcasts freshly recorded results to realtime listeners.
type ResultPublisher interface {
	PublishResult(ctx context.Context, res domain.QuizResult) error
}

// VideoRepository defines storage operations for video tutorials.
type VideoRepository interface {
	Create(ctx context.Context, v domain.VideoTutorial) (domain.VideoTutorial, error)
	List(ctx context.Context) ([]domain.VideoTutorial, error)
	Get(ctx context.Context, id int64) (domain.VideoTutorial, error)
	Update(ctx context.Context, id int64, patch domain.VideoTutorialPatch) (domain.VideoTutorial, error)
	Delete(ctx context.Context, id int64) error
}

// RulesRepository defines storage operations for the road-rules reference.
type RulesRepository interface {
	CreateCategory(ctx context.Context, c domain.RulesCategory) (domain.RulesCategory, error)
	ListCategories(ctx context.Context) ([]domain.RulesCategory, error)
	GetCategory(ctx context.Context, id int64) (domain.RulesCategory, error)
	UpdateCategory(ctx context.Context, id int64, patch domain.RulesCategoryPatch) (domain.RulesCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateContent(ctx context.Context, c domain.RulesContent) (domain.RulesContent, error)
	ListContent(ctx context.Context) ([]domain.RulesContent, error)
	ListContentByCategory(ctx context.Context, categoryID int64) ([]domain.RulesContent, error)
	GetContent(ctx context.Context, id int64) (domain.RulesContent, error)
	UpdateContent(ctx context.Context, id int64, patch domain.RulesContentPatch) (domain.RulesContent, error)
	DeleteContent(ctx context.Context, id int64) error
}
