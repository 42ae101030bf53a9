package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/qa-forum/backend/internal/database/dbtest"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

var base = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newStores(t *testing.T) *store.Stores {
	t.Helper()
	return store.NewStores(dbtest.NewSQLite(t).GetDB())
}

func seedQuestion(t *testing.T, s *store.Stores, n int, category string, tags ...string) *models.Question {
	t.Helper()
	q := &models.Question{
		ID:        uuid.NewString(),
		Title:     fmt.Sprintf("Question %d", n),
		Content:   fmt.Sprintf("Body of question %d", n),
		Category:  category,
		Urgency:   "normal",
		AuthorID:  "author",
		CreatedAt: base.Add(time.Duration(n) * time.Minute),
		UpdatedAt: base.Add(time.Duration(n) * time.Minute),
	}
	for _, tag := range tags {
		q.Tags = append(q.Tags, models.QuestionTag{QuestionID: q.ID, Tag: tag})
	}
	require.NoError(t, s.Questions().Create(context.Background(), q))
	return q
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	user := &models.User{ID: uuid.NewString(), Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, s.Users().Create(ctx, user))

	exists, err := s.Users().ExistsByUsernameOrEmail(ctx, "alice", "other@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Users().ExistsByUsernameOrEmail(ctx, "bob", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Users().ExistsByUsernameOrEmail(ctx, "Alice", "ALICE@example.com")
	require.NoError(t, err)
	assert.False(t, exists, "identity match is case-sensitive")

	got, err := s.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, 0, got.Reputation)

	got, err = s.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = s.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuestionViewIncrements(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q := seedQuestion(t, s, 1, "general", "go")

	for i := 1; i <= 3; i++ {
		got, err := s.Questions().View(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.Views)
		assert.Equal(t, []string{"go"}, got.TagNames())
	}

	stored, err := s.Questions().Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views)
	assert.True(t, stored.UpdatedAt.Equal(q.UpdatedAt), "views must not touch updated_at")

	_, err = s.Questions().View(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuestionListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q1 := seedQuestion(t, s, 1, "visa")
	q2 := seedQuestion(t, s, 2, "work")
	q3 := seedQuestion(t, s, 3, "visa")

	all, err := s.Questions().List(ctx, store.ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{q3.ID, q2.ID, q1.ID}, ids(all))

	page, err := s.Questions().List(ctx, store.ListFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{q2.ID}, ids(page))

	visa, err := s.Questions().List(ctx, store.ListFilter{Limit: 10, Category: "visa"})
	require.NoError(t, err)
	assert.Equal(t, []string{q3.ID, q1.ID}, ids(visa))

	sentinel, err := s.Questions().List(ctx, store.ListFilter{Limit: 10, Category: store.AllCategories})
	require.NoError(t, err)
	assert.Len(t, sentinel, 3)
}

func TestQuestionSearch(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)

	first := seedQuestion(t, s, 1, "general")
	tagged := seedQuestion(t, s, 2, "lang", "gc")
	seedQuestion(t, s, 3, "general")
	percent := &models.Question{
		ID: uuid.NewString(), Title: "Percent 100% sure", Content: "c", CreatedAt: base.Add(time.Hour),
	}
	require.NoError(t, s.Questions().Create(ctx, percent))

	got, err := s.Questions().Search(ctx, store.SearchFilter{Query: "QUESTION 1", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, ids(got))

	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "body of", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "body of", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "GC", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{tagged.ID}, ids(got))

	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "body of", Limit: 10, Category: "lang"})
	require.NoError(t, err)
	assert.Equal(t, []string{tagged.ID}, ids(got))

	// LIKE wildcards in the query are literal.
	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "100%", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{percent.ID}, ids(got))

	got, err = s.Questions().Search(ctx, store.SearchFilter{Query: "%", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{percent.ID}, ids(got))
}

func TestAnswerCreateBumpsCount(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q := seedQuestion(t, s, 1, "")

	for i := 0; i < 2; i++ {
		a := &models.Answer{ID: uuid.NewString(), QuestionID: q.ID, Content: "answer", AuthorID: "u"}
		require.NoError(t, s.Answers().Create(ctx, a))
	}

	stored, err := s.Questions().Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AnswersCount)

	err = s.Answers().Create(ctx, &models.Answer{ID: uuid.NewString(), QuestionID: "missing", Content: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.Answers().ListByQuestion(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, list, "failed create must not leave an answer behind")
}

func TestVoteCastReplaces(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q := seedQuestion(t, s, 1, "")

	total, err := s.Votes().Cast(ctx, &models.Vote{UserID: "alice", TargetID: q.ID, TargetType: models.TargetQuestion, Value: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = s.Votes().Cast(ctx, &models.Vote{UserID: "alice", TargetID: q.ID, TargetType: models.TargetQuestion, Value: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, total)

	count, err := s.Votes().CountForOwner(ctx, "alice", q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	total, err = s.Votes().Cast(ctx, &models.Vote{UserID: "bob", TargetID: q.ID, TargetType: models.TargetQuestion, Value: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	stored, err := s.Questions().Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Votes)
}

func TestVoteOnAnswerAndOrphan(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q := seedQuestion(t, s, 1, "")

	low := &models.Answer{ID: uuid.NewString(), QuestionID: q.ID, Content: "low", CreatedAt: base}
	high := &models.Answer{ID: uuid.NewString(), QuestionID: q.ID, Content: "high", CreatedAt: base.Add(time.Second)}
	require.NoError(t, s.Answers().Create(ctx, low))
	require.NoError(t, s.Answers().Create(ctx, high))

	_, err := s.Votes().Cast(ctx, &models.Vote{UserID: "alice", TargetID: high.ID, TargetType: models.TargetAnswer, Value: 1})
	require.NoError(t, err)
	_, err = s.Votes().Cast(ctx, &models.Vote{UserID: "alice", TargetID: low.ID, TargetType: models.TargetAnswer, Value: -1})
	require.NoError(t, err)

	answers, err := s.Answers().ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, high.ID, answers[0].ID)
	assert.Equal(t, 1, answers[0].Votes)
	assert.Equal(t, -1, answers[1].Votes)

	// Unknown targets are accepted and only the vote rows change.
	total, err := s.Votes().Cast(ctx, &models.Vote{UserID: "alice", TargetID: "ghost", TargetType: models.TargetAnswer, Value: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestAnswerSetVerification(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	q := seedQuestion(t, s, 1, "")
	a := &models.Answer{ID: uuid.NewString(), QuestionID: q.ID, Content: "a"}
	require.NoError(t, s.Answers().Create(ctx, a))

	verified := true
	confidence := 0.8
	feedback := "looks right"
	at := base
	ok, err := s.Answers().SetVerification(ctx, a.ID, models.AIVerification{
		IsVerified: &verified, ConfidenceScore: &confidence, Feedback: &feedback, VerifiedAt: &at,
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Answers().Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Verification.IsVerified)
	assert.True(t, *got.Verification.IsVerified)
	assert.InDelta(t, 0.8, *got.Verification.ConfidenceScore, 1e-9)
	assert.Equal(t, "looks right", *got.Verification.Feedback)
	require.NotNil(t, got.Response().AIVerification)

	ok, err = s.Answers().SetVerification(ctx, "missing", models.AIVerification{VerifiedAt: &at})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChatStoreCreate(t *testing.T) {
	s := newStores(t)
	rec := &models.ChatRecord{Variant: "generic", UserID: "u", SessionID: "s", Message: "hi", Response: "hello", Source: "local"}
	require.NoError(t, s.Chats().Create(context.Background(), rec))
	assert.NotZero(t, rec.ID)
}

func ids(qs []models.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}
