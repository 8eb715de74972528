package usecase

import (
	"context"

	"github.com/drives-academy/academy-api/internal/domain"
)

type VideoUsecase struct {
	repo VideoRepository
}

func NewVideoUsecase(repo VideoRepository) *VideoUsecase {
	return &VideoUsecase{repo: repo}
}

func (uc *VideoUsecase) Create(ctx context.Context, v domain.VideoTutorial) (domain.VideoTutorial, error) {
	return uc.repo.Create(ctx, v)
}

func (uc *VideoUsecase) List(ctx context.Context) ([]domain.VideoTutorial, error) {
	return uc.repo.List(ctx)
}

func (uc *VideoUsecase) Get(ctx context.Context, id int64) (domain.VideoTutorial, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *VideoUsecase) Update(ctx context.Context, id int64, patch domain.VideoTutorialPatch) (domain.VideoTutorial, error) {
	return uc.repo.Update(ctx, id, patch)
}

func (uc *VideoUsecase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
