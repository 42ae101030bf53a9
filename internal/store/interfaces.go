package store

import (
	"context"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	// ExistsByUsernameOrEmail checks both identity fields in one query.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	Get(ctx context.Context, id string) (*models.Question, error)
	// View increments the view counter and returns the question as stored
	// after the increment.
	View(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context, filter ListFilter) ([]models.Question, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.Question, error)
}

type AnswerStore interface {
	// Create inserts the answer and bumps the parent's answer count in one
	// transaction. Returns ErrNotFound when the parent question is missing.
	Create(ctx context.Context, answer *models.Answer) error
	Get(ctx context.Context, id string) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID string) ([]models.Answer, error)
	// SetVerification reports whether an answer with the id existed.
	SetVerification(ctx context.Context, answerID string, v models.AIVerification) (bool, error)
}

type VoteStore interface {
	// Cast replaces the caller's vote on the target and returns the new
	// aggregate for that target.
	Cast(ctx context.Context, vote *models.Vote) (int, error)
	CountForOwner(ctx context.Context, userID, targetID string) (int64, error)
}

type ChatStore interface {
	Create(ctx context.Context, record *models.ChatRecord) error
}

// ListFilter pages questions newest first. An empty category or "all"
// disables category filtering.
type ListFilter struct {
	Skip     int
	Limit    int
	Category string
}

type SearchFilter struct {
	Query    string
	Limit    int
	Category string
}

const AllCategories = "all"

func categoryFilter(category string) (string, bool) {
	if category == "" || category == AllCategories {
		return "", false
	}
	return category, true
}
