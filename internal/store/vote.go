package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type voteStore struct {
	db *gorm.DB
}

// Cast runs delete, insert, recompute and write-back in one transaction.
// On Postgres the transaction first takes an advisory lock keyed by the
// target so concurrent casts on one target cannot interleave their
// recompute and write-back. SQLite serializes writers on its own.
func (s *voteStore) Cast(ctx context.Context, vote *models.Vote) (int, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isPostgres(tx) {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", vote.TargetID).Error; err != nil {
				return fmt.Errorf("lock target: %w", err)
			}
		}

		// Ownership is (user, target) only; the kind is not part of it.
		err := tx.Where("user_id = ? AND target_id = ?", vote.UserID, vote.TargetID).
			Delete(&models.Vote{}).Error
		if err != nil {
			return fmt.Errorf("delete previous vote: %w", err)
		}

		vote.ID = 0
		if err := tx.Create(vote).Error; err != nil {
			return fmt.Errorf("insert vote: %w", err)
		}

		row := tx.Model(&models.Vote{}).
			Select("COALESCE(SUM(value), 0)").
			Where("target_id = ?", vote.TargetID).
			Row()
		if err := row.Scan(&total); err != nil {
			return fmt.Errorf("sum votes: %w", err)
		}

		// Targets are not checked for existence; an unknown id updates no rows.
		err = tx.Model(targetModel(vote.TargetType)).
			Where("id = ?", vote.TargetID).
			UpdateColumn("votes", total).Error
		if err != nil {
			return fmt.Errorf("write aggregate: %w", err)
		}
		return nil
	})
	if err := translate(err); err != nil {
		return 0, fmt.Errorf("cast vote: %w", err)
	}
	return int(total), nil
}

func (s *voteStore) CountForOwner(ctx context.Context, userID, targetID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("user_id = ? AND target_id = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

func targetModel(kind models.TargetKind) any {
	if kind == models.TargetQuestion {
		return &models.Question{}
	}
	return &models.Answer{}
}
