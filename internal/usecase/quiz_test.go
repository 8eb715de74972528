package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/drives-academy/academy-api/internal/domain"
)

type mockQuizRepo struct {
	quizzes map[int64]domain.Quiz
}

func (m *mockQuizRepo) Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	return q, nil
}
func (m *mockQuizRepo) List(ctx context.Context) ([]domain.Quiz, error) { return nil, nil }
func (m *mockQuizRepo) Get(ctx context.Context, id int64) (domain.Quiz, error) {
	q, ok := m.quizzes[id]
	if !ok {
		return domain.Quiz{}, domain.NotFoundError{Resource: "Quiz"}
	}
	return q, nil
}
func (m *mockQuizRepo) Update(ctx context.Context, id int64, patch domain.QuizPatch) (domain.Quiz, error) {
	return domain.Quiz{}, domain.NotFoundError{Resource: "Quiz"}
}
func (m *mockQuizRepo) Delete(ctx context.Context, id int64) error { return nil }

type mockQuestionRepo struct {
	questions map[int64]domain.Question
	creates   int
}

func (m *mockQuestionRepo) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	m.creates++
	q.ID = int64(m.creates)
	return q, nil
}
func (m *mockQuestionRepo) List(ctx context.Context) ([]domain.Question, error) { return nil, nil }
func (m *mockQuestionRepo) ListByQuiz(ctx context.Context, quizID int64) ([]domain.Question, error) {
	return nil, nil
}
func (m *mockQuestionRepo) Get(ctx context.Context, id int64) (domain.Question, error) {
	q, ok := m.questions[id]
	if !ok {
		return domain.Question{}, domain.NotFoundError{Resource: "Question"}
	}
	return q, nil
}
func (m *mockQuestionRepo) Update(ctx context.Context, id int64, patch domain.QuestionPatch) (domain.Question, error) {
	return domain.Question{}, domain.NotFoundError{Resource: "Question"}
}
func (m *mockQuestionRepo) Delete(ctx context.Context, id int64) error { return nil }

type mockAnswerRepo struct {
	creates int
}

func (m *mockAnswerRepo) Create(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	m.creates++
	a.ID = int64(m.creates)
	return a, nil
}
func (m *mockAnswerRepo) List(ctx context.Context) ([]domain.Answer, error) { return nil, nil }
func (m *mockAnswerRepo) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	return nil, nil
}
func (m *mockAnswerRepo) Get(ctx context.Context, id int64) (domain.Answer, error) {
	return domain.Answer{}, domain.NotFoundError{Resource: "Answer"}
}
func (m *mockAnswerRepo) Update(ctx context.Context, id int64, patch domain.AnswerPatch) (domain.Answer, error) {
	return domain.Answer{}, domain.NotFoundError{Resource: "Answer"}
}
func (m *mockAnswerRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestCreateQuestionChecksParentQuiz(t *testing.T) {
	quizzes := &mockQuizRepo{quizzes: map[int64]domain.Quiz{}}
	questions := &mockQuestionRepo{questions: map[int64]domain.Question{}}
	uc := NewQuizUsecase(quizzes, questions, &mockAnswerRepo{})

	_, err := uc.CreateQuestion(context.Background(), domain.Question{QuizID: 99, QuestionText: "?"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing quiz, got %v", err)
	}
	if questions.creates != 0 {
		t.Fatalf("question must not be created for a missing quiz")
	}

	quizzes.quizzes[99] = domain.Quiz{ID: 99, Title: "Signs"}
	created, err := uc.CreateQuestion(context.Background(), domain.Question{QuizID: 99, QuestionText: "?"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCreateAnswerChecksParentQuestion(t *testing.T) {
	quizzes := &mockQuizRepo{quizzes: map[int64]domain.Quiz{}}
	questions := &mockQuestionRepo{questions: map[int64]domain.Question{}}
	answers := &mockAnswerRepo{}
	uc := NewQuizUsecase(quizzes, questions, answers)

	_, err := uc.CreateAnswer(context.Background(), domain.Answer{QuestionID: 5, AnswerText: "A"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing question, got %v", err)
	}
	if answers.creates != 0 {
		t.Fatalf("answer must not be created for a missing question")
	}

	questions.questions[5] = domain.Question{ID: 5, QuizID: 1}
	if _, err := uc.CreateAnswer(context.Background(), domain.Answer{QuestionID: 5, AnswerText: "A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}
