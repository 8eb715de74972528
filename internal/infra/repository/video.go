package repository

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

const videoListCacheKey = "video-tutorials"

type VideoRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{
		db:    db,
		cache: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func videoToDomain(m models.VideoTutorial) domain.VideoTutorial {
	return domain.VideoTutorial{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Duration:     m.Duration,
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *VideoRepository) Create(ctx context.Context, v domain.VideoTutorial) (domain.VideoTutorial, error) {
	video := models.VideoTutorial{
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
	}
	if err := r.db.WithContext(ctx).Create(&video).Error; err != nil {
		return domain.VideoTutorial{}, err
	}
	r.cache.Delete(videoListCacheKey)
	return videoToDomain(video), nil
}

func (r *VideoRepository) List(ctx context.Context) ([]domain.VideoTutorial, error) {
	if cached, found := r.cache.Get(videoListCacheKey); found {
		return cached.([]domain.VideoTutorial), nil
	}

	var videos []models.VideoTutorial
	if err := r.db.WithContext(ctx).Order("id").Find(&videos).Error; err != nil {
		return nil, err
	}
	result := make([]domain.VideoTutorial, 0, len(videos))
	for _, v := range videos {
		result = append(result, videoToDomain(v))
	}

	r.cache.Set(videoListCacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (r *VideoRepository) Get(ctx context.Context, id int64) (domain.VideoTutorial, error) {
	var video models.VideoTutorial
	err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VideoTutorial{}, domain.NotFoundError{Resource: "Video tutorial"}
		}
		return domain.VideoTutorial{}, err
	}
	return videoToDomain(video), nil
}

func (r *VideoRepository) Update(ctx context.Context, id int64, patch domain.VideoTutorialPatch) (domain.VideoTutorial, error) {
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
	if patch.VideoURL != nil {
		updates["video_url"] = *patch.VideoURL
	}
	if patch.ThumbnailURL != nil {
		updates["thumbnail_url"] = *patch.ThumbnailURL
	}

	var video models.VideoTutorial
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&video, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&video).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&video, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.VideoTutorial{}, domain.NotFoundError{Resource: "Video tutorial"}
		}
		return domain.VideoTutorial{}, err
	}

	r.cache.Delete(videoListCacheKey)
	return videoToDomain(video), nil
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.VideoTutorial{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "Video tutorial"}
	}
	r.cache.Delete(videoListCacheKey)
	return nil
}
