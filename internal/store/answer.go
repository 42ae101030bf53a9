package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type answerStore struct {
	db *gorm.DB
}

func (s *answerStore) Create(ctx context.Context, answer *models.Answer) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The counter bump doubles as the parent existence check and holds
		// the parent row lock until commit.
		res := tx.Model(&models.Question{}).
			Where("id = ?", answer.QuestionID).
			UpdateColumn("answers_count", gorm.Expr("answers_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Create(answer).Error
	})
	if err := translate(err); err != nil {
		return fmt.Errorf("create answer: %w", err)
	}
	return nil
}

func (s *answerStore) Get(ctx context.Context, id string) (*models.Answer, error) {
	var answer models.Answer
	if err := translate(s.db.WithContext(ctx).Where("id = ?", id).First(&answer).Error); err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	return &answer, nil
}

func (s *answerStore) ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("votes desc").
		Order("created_at asc").
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

func (s *answerStore) SetVerification(ctx context.Context, answerID string, v models.AIVerification) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", answerID).
		UpdateColumns(map[string]any{
			"ai_is_verified":      v.IsVerified,
			"ai_confidence_score": v.ConfidenceScore,
			"ai_feedback":         v.Feedback,
			"ai_verified_at":      v.VerifiedAt,
		})
	if res.Error != nil {
		return false, fmt.Errorf("set answer verification: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
