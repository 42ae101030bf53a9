// Package store persists users, questions, answers, votes and chat records
// through GORM. Multi-step mutations run inside a single transaction.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

const pgUniqueViolation = "23505"

type Stores struct {
	users     UserStore
	questions QuestionStore
	answers   AnswerStore
	votes     VoteStore
	chats     ChatStore
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		users:     &userStore{db: db},
		questions: &questionStore{db: db},
		answers:   &answerStore{db: db},
		votes:     &voteStore{db: db},
		chats:     &chatStore{db: db},
	}
}

func (s *Stores) Users() UserStore         { return s.users }
func (s *Stores) Questions() QuestionStore { return s.questions }
func (s *Stores) Answers() AnswerStore     { return s.answers }
func (s *Stores) Votes() VoteStore         { return s.votes }
func (s *Stores) Chats() ChatStore         { return s.chats }

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return err
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
