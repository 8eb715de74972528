package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func questionToDomain(m models.Question) domain.Question {
	return domain.Question{
		ID:           m.ID,
		QuizID:       m.QuizID,
		QuestionText: m.QuestionText,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, q domain.Question) (domain.Question, error) {
	question := models.Question{
		QuizID:       q.QuizID,
		QuestionText: q.QuestionText,
	}
	if err := r.db.WithContext(ctx).Create(&question).Error; err != nil {
		return domain.Question{}, err
	}
	return questionToDomain(question), nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		result = append(result, questionToDomain(q))
	}
	return result, nil
}

func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID int64) ([]domain.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		result = append(result, questionToDomain(q))
	}
	return result, nil
}

func (r *QuestionRepository) Get(ctx context.Context, id int64) (domain.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Question{}, domain.NotFoundError{Resource: "Question"}
		}
		return domain.Question{}, err
	}
	return questionToDomain(question), nil
}

func (r *QuestionRepository) Update(ctx context.Context, id int64, patch domain.QuestionPatch) (domain.Question, error) {
	updates := map[string]any{}
	if patch.QuizID != nil {
		updates["quiz_id"] = *patch.QuizID
	}
	if patch.QuestionText != nil {
		updates["question_text"] = *patch.QuestionText
	}

	var question models.Question
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&question, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&question).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&question, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Question{}, domain.NotFoundError{Resource: "Question"}
		}
		return domain.Question{}, err
	}
	return questionToDomain(question), nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Question"}
	}
	return nil
}
