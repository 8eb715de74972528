package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func answerToDomain(m models.Answer) domain.Answer {
	return domain.Answer{
		ID:         m.ID,
		QuestionID: m.QuestionID,
		AnswerText: m.AnswerText,
		IsCorrect:  m.IsCorrect,
		ImageURL:   m.ImageURL,
		Order:      m.Order,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *AnswerRepository) Create(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	answer := models.Answer{
		QuestionID: a.QuestionID,
		AnswerText: a.AnswerText,
		IsCorrect:  a.IsCorrect,
		ImageURL:   a.ImageURL,
		Order:      a.Order,
		IsActive:   a.IsActive,
	}
	if err := r.db.WithContext(ctx).Create(&answer).Error; err != nil {
		return domain.Answer{}, err
	}
	return answerToDomain(answer), nil
}

func (r *AnswerRepository) List(ctx context.Context) ([]domain.Answer, error) {
	var answers []models.Answer
	if err := r.db.WithContext(ctx).Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Answer, 0, len(answers))
	for _, a := range answers {
		result = append(result, answerToDomain(a))
	}
	return result, nil
}

func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	var answers []models.Answer
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order(`"order"`).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	result := make([]domain.Answer, 0, len(answers))
	for _, a := range answers {
		result = append(result, answerToDomain(a))
	}
	return result, nil
}

func (r *AnswerRepository) Get(ctx context.Context, id int64) (domain.Answer, error) {
	var answer models.Answer
	err := r.db.WithContext(ctx).First(&answer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Answer{}, domain.NotFoundError{Resource: "Answer"}
		}
		return domain.Answer{}, err
	}
	return answerToDomain(answer), nil
}

func (r *AnswerRepository) Update(ctx context.Context, id int64, patch domain.AnswerPatch) (domain.Answer, error) {
	updates := map[string]any{}
	if patch.QuestionID != nil {
		updates["question_id"] = *patch.QuestionID
	}
	if patch.AnswerText != nil {
		updates["answer_text"] = *patch.AnswerText
	}
	if patch.IsCorrect != nil {
		updates["is_correct"] = *patch.IsCorrect
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	var answer models.Answer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&answer, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&answer).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&answer, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Answer{}, domain.NotFoundError{Resource: "Answer"}
		}
		return domain.Answer{}, err
	}
	return answerToDomain(answer), nil
}

func (r *AnswerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Answer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Answer"}
	}
	return nil
}
