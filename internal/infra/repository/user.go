package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drives-academy/academy-api/internal/domain"
	"github.com/drives-academy/academy-api/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToDomain(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Surname:      m.Surname,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "User"}
		}
		return domain.User{}, err
	}
	return userToDomain(user), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "User"}
		}
		return domain.User{}, err
	}
	return userToDomain(user), nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	user := models.User{
		Name:     u.Name,
		Surname:  u.Surname,
		Email:    u.Email,
		Password: u.PasswordHash,
	}
	err := r.db.WithContext(ctx).Create(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ErrAlreadyExists
		}
		return domain.User{}, err
	}
	return userToDomain(user), nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Surname != nil {
		updates["surname"] = *patch.Surname
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		updates["password"] = *patch.PasswordHash
	}

	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "User"}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ErrAlreadyExists
		}
		return domain.User{}, err
	}
	return userToDomain(user), nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "User"}
	}
	return nil
}
