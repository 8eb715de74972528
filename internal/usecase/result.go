package usecase

import (
	"context"
	"log/slog"

	"github.com/drives-academy/academy-api/internal/domain"
)

type ResultUsecase struct {
	repo      ResultRepository
	publisher ResultPublisher
}

func NewResultUsecase(repo ResultRepository, publisher ResultPublisher) *ResultUsecase {
	return &ResultUsecase{repo: repo, publisher: publisher}
}

// Create stores the result and broadcasts it to realtime listeners. A failed
// broadcast does not fail the request, the row is already committed.
func (uc *ResultUsecase) Create(ctx context.Context, res domain.QuizResult) (domain.QuizResult, error) {
	created, err := uc.repo.Create(ctx, res)
	if err != nil {
		return domain.QuizResult{}, err
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishResult(ctx, created); err != nil {
			slog.ErrorContext(
				ctx, "Failed to publish quiz result",
				slog.String("error", err.Error()),
				slog.Int64("result_id", created.ID),
			)
		}
	}

	return created, nil
}

func (uc *ResultUsecase) List(ctx context.Context) ([]domain.QuizResult, error) {
	return uc.repo.List(ctx)
}

func (uc *ResultUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error) {
	return uc.repo.ListByUser(ctx, userID)
}

func (uc *ResultUsecase) ListByQuiz(ctx context.Context, quizID int64) ([]domain.QuizResult, error) {
	return uc.repo.ListByQuiz(ctx, quizID)
}

func (uc *ResultUsecase) Get(ctx context.Context, id int64) (domain.QuizResult, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *ResultUsecase) Update(ctx context.Context, id int64, patch domain.QuizResultPatch) (domain.QuizResult, error) {
	return uc.repo.Update(ctx, id, patch)
}

func (uc *ResultUsecase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
