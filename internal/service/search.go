package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

type SearchService struct {
	questions store.QuestionStore
}

func NewSearchService(questions store.QuestionStore) *SearchService {
	return &SearchService{questions: questions}
}

// Search matches query case-insensitively against title and content, or
// exactly against a tag, newest first.
func (s *SearchService) Search(ctx context.Context, query string, limit int, category string) ([]models.Question, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	limit, err := clampLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.questions.Search(ctx, store.SearchFilter{Query: query, Limit: limit, Category: category})
}
