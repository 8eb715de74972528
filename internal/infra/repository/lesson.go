package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

func lessonToDomain(m models.DrivingLesson) domain.DrivingLesson {
	return domain.DrivingLesson{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		IsLocked:    m.IsLocked,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func contentToDomain(m models.LessonContent) domain.LessonContent {
	return domain.LessonContent{
		ID:              m.ID,
		DrivingLessonID: m.DrivingLessonID,
		Title:           m.Title,
		Content:         m.Content,
		Order:           m.Order,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *LessonRepository) CreateLesson(ctx context.Context, l domain.DrivingLesson) (domain.DrivingLesson, error) {
	lesson := models.DrivingLesson{
		Title:       l.Title,
		Description: l.Description,
		Duration:    l.Duration,
		IsLocked:    l.IsLocked,
	}
	if err := r.db.WithContext(ctx).Create(&lesson).Error; err != nil {
		return domain.DrivingLesson{}, err
	}
	return lessonToDomain(lesson), nil
}

func (r *LessonRepository) ListLessons(ctx context.Context) ([]domain.DrivingLesson, error) {
	var lessons []models.DrivingLesson
	if err := r.db.WithContext(ctx).Order("id").Find(&lessons).Error; err != nil {
		return nil, err
	}
	result := make([]domain.DrivingLesson, 0, len(lessons))
	for _, l := range lessons {
		result = append(result, lessonToDomain(l))
	}
	return result, nil
}

func (r *LessonRepository) GetLesson(ctx context.Context, id int64) (domain.DrivingLesson, error) {
	var lesson models.DrivingLesson
	err := r.db.WithContext(ctx).First(&lesson, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrivingLesson{}, domain.NotFoundError{Resource: "Driving lesson"}
		}
		return domain.DrivingLesson{}, err
	}
	return lessonToDomain(lesson), nil
}

func (r *LessonRepository) UpdateLesson(ctx context.Context, id int64, patch domain.DrivingLessonPatch) (domain.DrivingLesson, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.IsLocked != nil {
		updates["is_locked"] = *patch.IsLocked
	}

	var lesson models.DrivingLesson
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&lesson, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&lesson).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&lesson, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DrivingLesson{}, domain.NotFoundError{Resource: "Driving lesson"}
		}
		return domain.DrivingLesson{}, err
	}
	return lessonToDomain(lesson), nil
}

func (r *LessonRepository) DeleteLesson(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.DrivingLesson{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Driving lesson"}
	}
	return nil
}

func (r *LessonRepository) CreateContent(ctx context.Context, c domain.LessonContent) (domain.LessonContent, error) {
	content := models.LessonContent{
		DrivingLessonID: c.DrivingLessonID,
		Title:           c.Title,
		Content:         c.Content,
		Order:           c.Order,
	}
	if err := r.db.WithContext(ctx).Create(&content).Error; err != nil {
		return domain.LessonContent{}, err
	}
	return contentToDomain(content), nil
}

func (r *LessonRepository) ListContents(ctx context.Context) ([]domain.LessonContent, error) {
	var contents []models.LessonContent
	if err := r.db.WithContext(ctx).Order("id").Find(&contents).Error; err != nil {
		return nil, err
	}
	result := make([]domain.LessonContent, 0, len(contents))
	for _, c := range contents {
		result = append(result, contentToDomain(c))
	}
	return result, nil
}

func (r *LessonRepository) GetContent(ctx context.Context, id int64) (domain.LessonContent, error) {
	var content models.LessonContent
	err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LessonContent{}, domain.NotFoundError{Resource: "Lesson content"}
		}
		return domain.LessonContent{}, err
	}
	return contentToDomain(content), nil
}

func (r *LessonRepository) UpdateContent(ctx context.Context, id int64, patch domain.LessonContentPatch) (domain.LessonContent, error) {
	updates := map[string]any{}
	if patch.DrivingLessonID != nil {
		updates["driving_lesson_id"] = *patch.DrivingLessonID
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}

	var content models.LessonContent
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
			return domain.LessonContent{}, domain.NotFoundError{Resource: "Lesson content"}
		}
		return domain.LessonContent{}, err
	}
	return contentToDomain(content), nil
}

func (r *LessonRepository) DeleteContent(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.LessonContent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Lesson content"}
	}
	return nil
}
