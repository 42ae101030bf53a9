package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type QuestionHandler struct {
	questions *service.QuestionService
}

func NewQuestionHandler(questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// GetQuestions returns a newest-first page, optionally narrowed to one category.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", service.DefaultLimit)
	if !ok {
		return
	}

	questions, err := h.questions.ListQuestions(c.Request.Context(), skip, limit, c.Query("category"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, questionResponses(questions))
}

// GetQuestion returns one question and counts the view.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.questions.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Question not found")
		return
	}

	c.JSON(http.StatusOK, question.Response())
}

// CreateQuestion creates a new question (PROTECTED - requires authentication)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var input models.CreateQuestionRequest
	if !bindJSON(c, &input) {
		return
	}

	question, err := h.questions.CreateQuestion(c.Request.Context(), middleware.GetUser(c.Request.Context()), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, question.Response())
}
