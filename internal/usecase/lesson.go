package usecase

import (
	"context"

	"github.com/drives-academy/academy-api/internal/domain"
)

type LessonUsecase struct {
	repo LessonRepository
}

func NewLessonUsecase(repo LessonRepository) *LessonUsecase {
	return &LessonUsecase{repo: repo}
}

func (uc *LessonUsecase) CreateLesson(ctx context.Context, l domain.DrivingLesson) (domain.DrivingLesson, error) {
	return uc.repo.CreateLesson(ctx, l)
}

func (uc *LessonUsecase) ListLessons(ctx context.Context) ([]domain.DrivingLesson, error) {
	return uc.repo.ListLessons(ctx)
}

func (uc *LessonUsecase) GetLesson(ctx context.Context, id int64) (domain.DrivingLesson, error) {
	return uc.repo.GetLesson(ctx, id)
}

func (uc *LessonUsecase) UpdateLesson(ctx context.Context, id int64, patch domain.DrivingLessonPatch) (domain.DrivingLesson, error) {
	return uc.repo.UpdateLesson(ctx, id, patch)
}

func (uc *LessonUsecase) DeleteLesson(ctx context.Context, id int64) error {
	return uc.repo.DeleteLesson(ctx, id)
}

func (uc *LessonUsecase) CreateContent(ctx context.Context, c domain.LessonContent) (domain.LessonContent, error) {
	return uc.repo.CreateContent(ctx, c)
}

func (uc *LessonUsecase) ListContents(ctx context.Context) ([]domain.LessonContent, error) {
	return uc.repo.ListContents(ctx)
}

func (uc *LessonUsecase) GetContent(ctx context.Context, id int64) (domain.LessonContent, error) {
	return uc.repo.GetContent(ctx, id)
}

func (uc *LessonUsecase) UpdateContent(ctx context.Context, id int64, patch domain.LessonContentPatch) (domain.LessonContent, error) {
	return uc.repo.UpdateContent(ctx, id, patch)
}

func (uc *LessonUsecase) DeleteContent(ctx context.Context, id int64) error {
	return uc.repo.DeleteContent(ctx, id)
}
