package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

const (
	rulesCategoriesCacheKey = "rules:categories"
	rulesContentCacheKey    = "rules:content"
	rulesCacheTTL           = 10 * time.Minute
)

// RulesRepository serves the road-rules reference content. Lists are read
// heavy and change rarely, so they go through a redis read-through cache;
// any write drops both list keys.
type RulesRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRulesRepository(db *gorm.DB, rdb *redis.Client) *RulesRepository {
	return &RulesRepository{db: db, rdb: rdb}
}

func categoryToDomain(m models.RulesCategory) domain.RulesCategory {
	return domain.RulesCategory{
		ID:        m.ID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func rulesContentToDomain(m models.RulesContent) domain.RulesContent {
	return domain.RulesContent{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Title:      m.Title,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *RulesRepository) cacheGet(ctx context.Context, key string, dest any) bool {
	if r.rdb == nil {
		return false
	}
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (r *RulesRepository) cacheSet(ctx context.Context, key string, value any) {
	if r.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	// cache failures degrade to DB reads
	r.rdb.Set(ctx, key, raw, rulesCacheTTL)
}

func (r *RulesRepository) cacheInvalidate(ctx context.Context) {
	if r.rdb == nil {
		return
	}
	r.rdb.Del(ctx, rulesCategoriesCacheKey, rulesContentCacheKey)
}

func (r *RulesRepository) CreateCategory(ctx context.Context, c domain.RulesCategory) (domain.RulesCategory, error) {
	category := models.RulesCategory{Title: c.Title}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return domain.RulesCategory{}, err
	}
	r.cacheInvalidate(ctx)
	return categoryToDomain(category), nil
}

func (r *RulesRepository) ListCategories(ctx context.Context) ([]domain.RulesCategory, error) {
	var cached []domain.RulesCategory
	if r.cacheGet(ctx, rulesCategoriesCacheKey, &cached) {
		return cached, nil
	}

	var categories []models.RulesCategory
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	result := make([]domain.RulesCategory, 0, len(categories))
	for _, c := range categories {
		result = append(result, categoryToDomain(c))
	}

	r.cacheSet(ctx, rulesCategoriesCacheKey, result)
	return result, nil
}

func (r *RulesRepository) GetCategory(ctx context.Context, id int64) (domain.RulesCategory, error) {
	var category models.RulesCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RulesCategory{}, domain.NotFoundError{Resource: "Rules category"}
		}
		return domain.RulesCategory{}, err
	}
	return categoryToDomain(category), nil
}

func (r *RulesRepository) UpdateCategory(ctx context.Context, id int64, patch domain.RulesCategoryPatch) (domain.RulesCategory, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}

	var category models.RulesCategory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&category).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&category, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RulesCategory{}, domain.NotFoundError{Resource: "Rules category"}
		}
		return domain.RulesCategory{}, err
	}

	r.cacheInvalidate(ctx)
	return categoryToDomain(category), nil
}

func (r *RulesRepository) DeleteCategory(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.RulesCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Rules category"}
	}
	r.cacheInvalidate(ctx)
	return nil
}

func (r *RulesRepository) CreateContent(ctx context.Context, c domain.RulesContent) (domain.RulesContent, error) {
	content := models.RulesContent{
		CategoryID: c.CategoryID,
		Title:      c.Title,
		Content:    c.Content,
	}
	if err := r.db.WithContext(ctx).Create(&content).Error; err != nil {
		return domain.RulesContent{}, err
	}
	r.cacheInvalidate(ctx)
	return rulesContentToDomain(content), nil
}

func (r *RulesRepository) ListContent(ctx context.Context) ([]domain.RulesContent, error) {
	var cached []domain.RulesContent
	if r.cacheGet(ctx, rulesContentCacheKey, &cached) {
		return cached, nil
	}

	var contents []models.RulesContent
	if err := r.db.WithContext(ctx).Order("id").Find(&contents).Error; err != nil {
		return nil, err
	}
	result := make([]domain.RulesContent, 0, len(contents))
	for _, c := range contents {
		result = append(result, rulesContentToDomain(c))
	}

	r.cacheSet(ctx, rulesContentCacheKey, result)
	return result, nil
}

func (r *RulesRepository) ListContentByCategory(ctx context.Context, categoryID int64) ([]domain.RulesContent, error) {
	var contents []models.RulesContent
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.RulesContent, 0, len(contents))
	for _, c := range contents {
		result = append(result, rulesContentToDomain(c))
	}
	return result, nil
}

func (r *RulesRepository) GetContent(ctx context.Context, id int64) (domain.RulesContent, error) {
	var content models.RulesContent
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RulesContent{}, domain.NotFoundError{Resource: "Rules content"}
		}
		return domain.RulesContent{}, err
	}
	return rulesContentToDomain(content), nil
}

func (r *RulesRepository) UpdateContent(ctx context.Context, id int64, patch domain.RulesContentPatch) (domain.RulesContent, error) {
	updates := map[string]any{}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}

	var content models.RulesContent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&content, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&content).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&content, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RulesContent{}, domain.NotFoundError{Resource: "Rules content"}
		}
		return domain.RulesContent{}, err
	}

	r.cacheInvalidate(ctx)
	return rulesContentToDomain(content), nil
}

func (r *RulesRepository) DeleteContent(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.RulesContent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Rules content"}
	}
	r.cacheInvalidate(ctx)
	return nil
}
