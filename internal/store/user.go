package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	if err := translate(s.db.WithContext(ctx).Create(user).Error); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return count > 0, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := translate(s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error); err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := translate(s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error); err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}
