package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type questionStore struct {
	db *gorm.DB
}

func (s *questionStore) Create(ctx context.Context, question *models.Question) error {
	// Tags are saved with the question as a has-many association.
	if err := translate(s.db.WithContext(ctx).Create(question).Error); err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	return nil
}

func (s *questionStore) Get(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).Preload("Tags").Where("id = ?", id).First(&question).Error
	if err := translate(err); err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &question, nil
}

func (s *questionStore) View(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Question{}).
			Where("id = ?", id).
			UpdateColumn("views", gorm.Expr("views + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Tags").Where("id = ?", id).First(&question).Error
	})
	if err := translate(err); err != nil {
		return nil, fmt.Errorf("view question: %w", err)
	}
	return &question, nil
}

func (s *questionStore) List(ctx context.Context, filter ListFilter) ([]models.Question, error) {
	query := s.db.WithContext(ctx).Preload("Tags")
	if category, ok := categoryFilter(filter.Category); ok {
		query = query.Where("category = ?", category)
	}

	var questions []models.Question
	err := query.
		Order("created_at desc").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// Search matches a case-insensitive substring of title or content, or an
// exact member of the (lower-cased) tag set.
func (s *questionStore) Search(ctx context.Context, filter SearchFilter) ([]models.Question, error) {
	term := strings.ToLower(filter.Query)
	pattern := "%" + escapeLike(term) + "%"
	tagged := s.db.Model(&models.QuestionTag{}).Select("question_id").Where("tag = ?", term)

	query := s.db.WithContext(ctx).
		Preload("Tags").
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\' OR id IN (?))`, pattern, pattern, tagged)
	if category, ok := categoryFilter(filter.Category); ok {
		query = query.Where("category = ?", category)
	}

	var questions []models.Question
	if err := query.Order("created_at desc").Limit(filter.Limit).Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
