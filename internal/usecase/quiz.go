package usecase

import (
	"context"

	"github.com/drives-academy/academy-api/internal/domain"
)

type QuizUsecase struct {
	quizzes   QuizRepository
	questions QuestionRepository
	answers   AnswerRepository
}

func NewQuizUsecase(quizzes QuizRepository, questions QuestionRepository, answers AnswerRepository) *QuizUsecase {
	return &QuizUsecase{
		quizzes:   quizzes,
		questions: questions,
		answers:   answers,
	}
}

func (uc *QuizUsecase) CreateQuiz(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	return uc.quizzes.Create(ctx, q)
}

func (uc *QuizUsecase) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	return uc.quizzes.List(ctx)
}

func (uc *QuizUsecase) GetQuiz(ctx context.Context, id int64) (domain.Quiz, error) {
	return uc.quizzes.Get(ctx, id)
}

func (uc *QuizUsecase) UpdateQuiz(ctx context.Context, id int64, patch domain.QuizPatch) (domain.Quiz, error) {
	return uc.quizzes.Update(ctx, id, patch)
}

func (uc *QuizUsecase) DeleteQuiz(ctx context.Context, id int64) error {
	return uc.quizzes.Delete(ctx, id)
}

// CreateQuestion checks the parent quiz so a dangling quiz id surfaces as a
// 404 instead of a foreign key violation.
func (uc *QuizUsecase) CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	if _, err := uc.quizzes.Get(ctx, q.QuizID); err != nil {
		return domain.Question{}, err
	}
	return uc.questions.Create(ctx, q)
}

func (uc *QuizUsecase) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return uc.questions.List(ctx)
}

func (uc *QuizUsecase) ListQuestionsByQuiz(ctx context.Context, quizID int64) ([]domain.Question, error) {
	return uc.questions.ListByQuiz(ctx, quizID)
}

func (uc *QuizUsecase) GetQuestion(ctx context.Context, id int64) (domain.Question, error) {
	return uc.questions.Get(ctx, id)
}

func (uc *QuizUsecase) UpdateQuestion(ctx context.Context, id int64, patch domain.QuestionPatch) (domain.Question, error) {
	return uc.questions.Update(ctx, id, patch)
}

func (uc *QuizUsecase) DeleteQuestion(ctx context.Context, id int64) error {
	return uc.questions.Delete(ctx, id)
}

func (uc *QuizUsecase) CreateAnswer(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	if _, err := uc.questions.Get(ctx, a.QuestionID); err != nil {
		return domain.Answer{}, err
	}
	return uc.answers.Create(ctx, a)
}

func (uc *QuizUsecase) ListAnswers(ctx context.Context) ([]domain.Answer, error) {
	return uc.answers.List(ctx)
}

func (uc *QuizUsecase) ListAnswersByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return uc.answers.ListByQuestion(ctx, questionID)
}

func (uc *QuizUsecase) GetAnswer(ctx context.Context, id int64) (domain.Answer, error) {
	return uc.answers.Get(ctx, id)
}

func (uc *QuizUsecase) UpdateAnswer(ctx context.Context, id int64, patch domain.AnswerPatch) (domain.Answer, error) {
	return uc.answers.Update(ctx, id, patch)
}

func (uc *QuizUsecase) DeleteAnswer(ctx context.Context, id int64) error {
	return uc.answers.Delete(ctx, id)
}
