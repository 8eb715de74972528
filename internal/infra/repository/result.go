package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func resultToDomain(m models.UserQuizResult) domain.QuizResult {
	return domain.QuizResult{
		ID:                   m.ID,
		UserID:               m.UserID,
		QuizID:               m.QuizID,
		Score:                m.Score,
		CorrectAnswerCount:   m.CorrectAnswerCount,
		IncorrectAnswerCount: m.IncorrectAnswerCount,
		CompletedAt:          m.CompletedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func resultsToDomain(ms []models.UserQuizResult) []domain.QuizResult {
	result := make([]domain.QuizResult, 0, len(ms))
	for _, m := range ms {
		result = append(result, resultToDomain(m))
	}
	return result
}

func (r *ResultRepository) Create(ctx context.Context, res domain.QuizResult) (domain.QuizResult, error) {
	result := models.UserQuizResult{
		UserID:               res.UserID,
		QuizID:               res.QuizID,
		Score:                res.Score,
		CorrectAnswerCount:   res.CorrectAnswerCount,
		IncorrectAnswerCount: res.IncorrectAnswerCount,
		CompletedAt:          res.CompletedAt,
	}
	if err := r.db.WithContext(ctx).Create(&result).Error; err != nil {
		return domain.QuizResult{}, err
	}
	return resultToDomain(result), nil
}

func (r *ResultRepository) List(ctx context.Context) ([]domain.QuizResult, error) {
	var results []models.UserQuizResult
	if err := r.db.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return resultsToDomain(results), nil
}

func (r *ResultRepository) ListByUser(ctx context.Context, userID int64) ([]domain.QuizResult, error) {
	var results []models.UserQuizResult
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return resultsToDomain(results), nil
}

func (r *ResultRepository) ListByQuiz(ctx context.Context, quizID int64) ([]domain.QuizResult, error) {
	var results []models.UserQuizResult
	if err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return resultsToDomain(results), nil
}

func (r *ResultRepository) Get(ctx context.Context, id int64) (domain.QuizResult, error) {
	var result models.UserQuizResult
	err := r.db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuizResult{}, domain.NotFoundError{Resource: "User quiz result"}
		}
		return domain.QuizResult{}, err
	}
	return resultToDomain(result), nil
}

func (r *ResultRepository) Update(ctx context.Context, id int64, patch domain.QuizResultPatch) (domain.QuizResult, error) {
	updates := map[string]any{}
	if patch.Score != nil {
		updates["score"] = *patch.Score
	}
	if patch.CorrectAnswerCount != nil {
		updates["correct_answer_count"] = *patch.CorrectAnswerCount
	}
	if patch.IncorrectAnswerCount != nil {
		updates["incorrect_answer_count"] = *patch.IncorrectAnswerCount
	}
	if patch.CompletedAt != nil {
		updates["completed_at"] = *patch.CompletedAt
	}

	var result models.UserQuizResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&result, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&result).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&result, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.QuizResult{}, domain.NotFoundError{Resource: "User quiz result"}
		}
		return domain.QuizResult{}, err
	}
	return resultToDomain(result), nil
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UserQuizResult{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "User quiz result"}
	}
	return nil
}
