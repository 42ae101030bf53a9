package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emilythestrangee/qa-forum/backend/internal/ai"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/store"
)

// AssistantService relays chat and fact-check requests to the assistant
// and records their outcome.
type AssistantService struct {
	assistant ai.Assistant
	chats     store.ChatStore
	answers   store.AnswerStore
	profile   profile.Profile
	now       Clock
}

func NewAssistantService(a ai.Assistant, chats store.ChatStore, answers store.AnswerStore, p profile.Profile) *AssistantService {
	return &AssistantService{assistant: a, chats: chats, answers: answers, profile: p, now: time.Now}
}

func (s *AssistantService) Chat(ctx context.Context, user *models.User, req models.ChatRequest) (models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return models.ChatResponse{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = s.newSessionID(user.ID)
	}

	reply, err := s.assistant.Chat(ctx, ai.ChatInput{UserID: user.ID, SessionID: sessionID, Message: message})
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat: %w", err)
	}

	record := &models.ChatRecord{
		Variant:   s.profile.Name,
		UserID:    user.ID,
		SessionID: sessionID,
		Message:   message,
		Response:  reply.Text,
		Source:    reply.Source,
		CreatedAt: s.now().UTC(),
	}
	if err := s.chats.Create(ctx, record); err != nil {
		return models.ChatResponse{}, err
	}

	return models.ChatResponse{Response: reply.Text, SessionID: sessionID}, nil
}

func (s *AssistantService) newSessionID(userID string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s_user_%s_%s", s.profile.SessionPrefix, userID, hex.EncodeToString(buf))
}

// FactCheck scores an answer and stores the result on it. A missing answer
// is logged and the verdict is still returned.
func (s *AssistantService) FactCheck(ctx context.Context, req models.FactCheckRequest) (models.FactCheckResponse, error) {
	if strings.TrimSpace(req.AnswerID) == "" || strings.TrimSpace(req.AnswerContent) == "" {
		return models.FactCheckResponse{}, fmt.Errorf("%w: answer_id and answer_content are required", ErrInvalidInput)
	}

	verdict, err := s.assistant.FactCheck(ctx, ai.FactCheckInput{
		AnswerID:      req.AnswerID,
		QuestionTitle: req.QuestionTitle,
		AnswerContent: req.AnswerContent,
	})
	if err != nil {
		return models.FactCheckResponse{}, fmt.Errorf("fact check: %w", err)
	}

	confidence := verdict.Confidence
	feedback := verdict.Feedback
	verifiedAt := s.now().UTC()
	v := models.AIVerification{
		IsVerified:      verdict.Verified,
		ConfidenceScore: &confidence,
		Feedback:        &feedback,
		VerifiedAt:      &verifiedAt,
	}

	found, err := s.answers.SetVerification(ctx, req.AnswerID, v)
	if err != nil {
		return models.FactCheckResponse{}, err
	}
	if !found {
		slog.WarnContext(ctx, "fact-checked answer does not exist", "answer_id", req.AnswerID)
	}

	return models.FactCheckResponse{AnswerID: req.AnswerID, Verification: v}, nil
}
