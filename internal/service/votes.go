package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

// VoteRecorder is notified of every successful vote.
type VoteRecorder interface {
	VoteCast(targetType string)
}

// VoteLedger keeps one vote per (user, target) and the cached aggregate on
// the target.
type VoteLedger struct {
	votes    store.VoteStore
	recorder VoteRecorder
	now      Clock
}

func NewVoteLedger(votes store.VoteStore, rec VoteRecorder) *VoteLedger {
	return &VoteLedger{votes: votes, recorder: rec, now: time.Now}
}

// CastVote replaces the user's previous vote on the target and returns the
// new aggregate. Neither the value nor the target's existence is checked.
func (l *VoteLedger) CastVote(ctx context.Context, user *models.User, req models.VoteRequest) (int, error) {
	if req.TargetID == "" {
		return 0, fmt.Errorf("%w: target_id is required", ErrInvalidInput)
	}
	if req.TargetType != models.TargetQuestion && req.TargetType != models.TargetAnswer {
		return 0, fmt.Errorf("%w: target_type must be question or answer", ErrInvalidInput)
	}

	total, err := l.votes.Cast(ctx, &models.Vote{
		UserID:     user.ID,
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		Value:      req.Value,
		CreatedAt:  l.now().UTC(),
	})
	if err != nil {
		return 0, err
	}

	if l.recorder != nil {
		l.recorder.VoteCast(string(req.TargetType))
	}
	slog.DebugContext(ctx, "vote cast",
		"user_id", user.ID,
		"target_id", req.TargetID,
		"target_type", req.TargetType,
		"votes", total)
	return total, nil
}
