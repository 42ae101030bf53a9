package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/profile"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

// Handler combines all handler types
type Handler struct {
	Auth      *AuthHandler
	Question  *QuestionHandler
	Answer    *AnswerHandler
	Vote      *VoteHandler
	Search    *SearchHandler
	Assistant *AssistantHandler
	Health    *HealthHandler
}

// HealthChecker reports database status; database.Service implements it.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

func NewHandler(services *service.Services, p profile.Profile, db HealthChecker) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(services.Auth),
		Question:  NewQuestionHandler(services.Questions),
		Answer:    NewAnswerHandler(services.Questions),
		Vote:      NewVoteHandler(services.Votes),
		Search:    NewSearchHandler(services.Search),
		Assistant: NewAssistantHandler(services.Assistant),
		Health:    NewHealthHandler(p.ServiceName, db),
	}
}

func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// respondError maps service errors to status codes. Anything unrecognised
// is logged and reported as a bare 500.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		detail(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrConflict):
		detail(c, http.StatusBadRequest, "Username or email already registered")
	case errors.Is(err, service.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		detail(c, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, service.ErrNotFound):
		detail(c, http.StatusNotFound, notFound)
	default:
		_ = c.Error(err)
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		detail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// bindJSON reports a 422 and returns false when the body does not bind.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		detail(c, http.StatusUnprocessableEntity, key+" must be an integer")
		return 0, false
	}
	return n, true
}

func questionResponses(questions []models.Question) []models.QuestionResponse {
	out := make([]models.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Response())
	}
	return out
}
