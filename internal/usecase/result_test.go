package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/drives-academy/academy-api/internal/domain"
)

type mockResultRepo struct {
	created domain.QuizResult
}

func (m *mockResultRepo) Create(ctx context.Context, res domain.QuizResult) (domain.QuizResult, error) {
	res.ID = 7
	m.created = res
	return res, nil
}

func (m *mockResultRepo) List(ctx context.Context) ([]domain.QuizResult, error) { return nil, nil }
func (m *mockResultRepo) ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error) {
	return nil, nil
}
func (m *mockResultRepo) ListByQuiz(ctx context.Context, quizID int64) ([]domain.QuizResult, error) {
	return nil, nil
}
func (m *mockResultRepo) Get(ctx context.Context, id int64) (domain.QuizResult, error) {
	return domain.QuizResult{}, domain.NotFoundError{Resource: "Quiz result"}
}
func (m *mockResultRepo) Update(ctx context.Context, id int64, patch domain.QuizResultPatch) (domain.QuizResult, error) {
	return domain.QuizResult{}, domain.NotFoundError{Resource: "Quiz result"}
}
func (m *mockResultRepo) Delete(ctx context.Context, id int64) error { return nil }

type mockPublisher struct {
	published []domain.QuizResult
	fail      bool
}

func (m *mockPublisher) PublishResult(ctx context.Context, res domain.QuizResult) error {
	if m.fail {
		return errors.New("redis down")
	}
	m.published = append(m.published, res)
	return nil
}

func TestResultCreatePublishes(t *testing.T) {
	repo := &mockResultRepo{}
	pub := &mockPublisher{}
	uc := NewResultUsecase(repo, pub)

	created, err := uc.Create(context.Background(), domain.QuizResult{UserID: 1, QuizID: 2, Score: 80})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected stored id, got %d", created.ID)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected one published result, got %d", len(pub.published))
	}
	if pub.published[0].ID != 7 {
		t.Fatalf("published result should carry the stored id")
	}
}

func TestResultCreateSurvivesPublishFailure(t *testing.T) {
	repo := &mockResultRepo{}
	pub := &mockPublisher{fail: true}
	uc := NewResultUsecase(repo, pub)

	created, err := uc.Create(context.Background(), domain.QuizResult{UserID: 1, QuizID: 2})
	if err != nil {
		t.Fatalf("create should not fail on publish error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected stored result back, got %+v", created)
	}
}
