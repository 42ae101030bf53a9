package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type chatStore struct {
	db *gorm.DB
}

func (s *chatStore) Create(ctx context.Context, record *models.ChatRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create chat record: %w", err)
	}
	return nil
}
