package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

const quizCacheTTL = 600 // seconds

type QuizRepository struct {
	db *gorm.DB
	mc *memcache.Client
}

func NewQuizRepository(db *gorm.DB, mc *memcache.Client) *QuizRepository {
	return &QuizRepository{db: db, mc: mc}
}

func quizToDomain(m models.Quiz) domain.Quiz {
	return domain.Quiz{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Difficulty:        m.Difficulty,
		NumberOfQuestions: m.NumberOfQuestions,
		BestScore:         m.BestScore,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func quizCacheKey(id int64) string {
	return fmt.Sprintf("quiz:%d", id)
}

func (r *QuizRepository) Create(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	quiz := models.Quiz{
		Title:             q.Title,
		Description:       q.Description,
		Difficulty:        q.Difficulty,
		NumberOfQuestions: q.NumberOfQuestions,
		BestScore:         q.BestScore,
	}
	if err := r.db.WithContext(ctx).Create(&quiz).Error; err != nil {
		return domain.Quiz{}, err
	}
	return quizToDomain(quiz), nil
}

func (r *QuizRepository) List(ctx context.Context) ([]domain.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.WithContext(ctx).Order("id").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	result := make([]domain.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, quizToDomain(q))
	}
	return result, nil
}

func (r *QuizRepository) Get(ctx context.Context, id int64) (domain.Quiz, error) {
	if r.mc != nil {
		if item, err := r.mc.Get(quizCacheKey(id)); err == nil {
			var cached domain.Quiz
			if err := json.Unmarshal(item.Value, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var quiz models.Quiz
	err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Quiz{}, domain.NotFoundError{Resource: "Quiz"}
		}
		return domain.Quiz{}, err
	}

	result := quizToDomain(quiz)
	if r.mc != nil {
		if value, err := json.Marshal(result); err == nil {
			// cache failures degrade to DB reads
			_ = r.mc.Set(&memcache.Item{Key: quizCacheKey(id), Value: value, Expiration: quizCacheTTL})
		}
	}
	return result, nil
}

func (r *QuizRepository) Update(ctx context.Context, id int64, patch domain.QuizPatch) (domain.Quiz, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.NumberOfQuestions != nil {
		updates["number_of_questions"] = *patch.NumberOfQuestions
	}
	if patch.BestScore != nil {
		updates["best_score"] = *patch.BestScore
	}

	var quiz models.Quiz
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&quiz, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&quiz).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&quiz, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Quiz{}, domain.NotFoundError{Resource: "Quiz"}
		}
		return domain.Quiz{}, err
	}

	r.invalidate(id)
	return quizToDomain(quiz), nil
}

func (r *QuizRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Quiz{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Quiz"}
	}
	r.invalidate(id)
	return nil
}

func (r *QuizRepository) invalidate(id int64) {
	if r.mc == nil {
		return
	}
	if err := r.mc.Delete(quizCacheKey(id)); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		// stale entry expires on its own TTL
		return
	}
}
