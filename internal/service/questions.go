package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	maxTagLength = 64
)

type QuestionService struct {
	questions store.QuestionStore
	answers   store.AnswerStore
	profile   profile.Profile
	now       Clock
}

func NewQuestionService(questions store.QuestionStore, answers store.AnswerStore, p profile.Profile) *QuestionService {
	return &QuestionService{questions: questions, answers: answers, profile: p, now: time.Now}
}

// WithClock replaces the timestamp source.
func (s *QuestionService) WithClock(now Clock) *QuestionService {
	s.now = now
	return s
}

func (s *QuestionService) CreateQuestion(ctx context.Context, author *models.User, req models.CreateQuestionRequest) (*models.Question, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	urgency := strings.TrimSpace(req.Urgency)
	if urgency == "" {
		urgency = s.profile.DefaultUrgency
	}

	now := s.now().UTC()
	q := &models.Question{
		ID:             uuid.NewString(),
		Title:          title,
		Content:        content,
		Category:       strings.TrimSpace(req.Category),
		Urgency:        urgency,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		q.Tags = append(q.Tags, models.QuestionTag{QuestionID: q.ID, Tag: tag})
	}

	if err := s.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// normalizeTags lower-cases, trims and de-duplicates tags, keeping first
// occurrence order.
func normalizeTags(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if len(t) > maxTagLength {
			return nil, fmt.Errorf("%w: tag %q is longer than %d characters", ErrInvalidInput, t, maxTagLength)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags, nil
}

func (s *QuestionService) ListQuestions(ctx context.Context, skip, limit int, category string) ([]models.Question, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", ErrInvalidInput)
	}
	limit, err := clampLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.questions.List(ctx, store.ListFilter{Skip: skip, Limit: limit, Category: category})
}

// GetQuestion counts a view on every call and returns the question with the
// incremented count.
func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.questions.View(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: question %s", ErrNotFound, id)
	}
	return q, err
}

func (s *QuestionService) CreateAnswer(ctx context.Context, questionID string, author *models.User, req models.CreateAnswerRequest) (*models.Answer, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	now := s.now().UTC()
	a := &models.Answer{
		ID:             uuid.NewString(),
		QuestionID:     questionID,
		Content:        content,
		AuthorID:       author.ID,
		AuthorUsername: author.Username,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.answers.Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: question %s", ErrNotFound, questionID)
		}
		return nil, err
	}
	return a, nil
}

// ListAnswers returns the question's answers by descending votes. An unknown
// question simply has no answers.
func (s *QuestionService) ListAnswers(ctx context.Context, questionID string) ([]models.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID)
}

func clampLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit < 0 || limit > MaxLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	default:
		return limit, nil
	}
}
