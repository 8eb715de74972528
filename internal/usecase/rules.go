package usecase

import (
	"context"

	"github.com/drives-academy/academy-api/internal/domain"
)

type RulesUsecase struct {
	repo RulesRepository
}

func NewRulesUsecase(repo RulesRepository) *RulesUsecase {
	return &RulesUsecase{repo: repo}
}

func (uc *RulesUsecase) CreateCategory(ctx context.Context, c domain.RulesCategory) (domain.RulesCategory, error) {
	return uc.repo.CreateCategory(ctx, c)
}

func (uc *RulesUsecase) ListCategories(ctx context.Context) ([]domain.RulesCategory, error) {
	return uc.repo.ListCategories(ctx)
}

func (uc *RulesUsecase) GetCategory(ctx context.Context, id int64) (domain.RulesCategory, error) {
	return uc.repo.GetCategory(ctx, id)
}

func (uc *RulesUsecase) UpdateCategory(ctx context.Context, id int64, patch domain.RulesCategoryPatch) (domain.RulesCategory, error) {
	return uc.repo.UpdateCategory(ctx, id, patch)
}

func (uc *RulesUsecase) DeleteCategory(ctx context.Context, id int64) error {
	return uc.repo.DeleteCategory(ctx, id)
}

// CreateContent verifies the category first so the client sees a 404 rather
// than a bare constraint error.
func (uc *RulesUsecase) CreateContent(ctx context.Context, c domain.RulesContent) (domain.RulesContent, error) {
	if _, err := uc.repo.GetCategory(ctx, c.CategoryID); err != nil {
		return domain.RulesContent{}, err
	}
	return uc.repo.CreateContent(ctx, c)
}

func (uc *RulesUsecase) ListContent(ctx context.Context) ([]domain.RulesContent, error) {
	return uc.repo.ListContent(ctx)
}

func (uc *RulesUsecase) ListContentByCategory(ctx context.Context, categoryID int64) ([]domain.RulesContent, error) {
	return uc.repo.ListContentByCategory(ctx, categoryID)
}

func (uc *RulesUsecase) GetContent(ctx context.Context, id int64) (domain.RulesContent, error) {
	return uc.repo.GetContent(ctx, id)
}

func (uc *RulesUsecase) UpdateContent(ctx context.Context, id int64, patch domain.RulesContentPatch) (domain.RulesContent, error) {
	return uc.repo.UpdateContent(ctx, id, patch)
}

func (uc *RulesUsecase) DeleteContent(ctx context.Context, id int64) error {
	return uc.repo.DeleteContent(ctx, id)
}
