package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type AnswerHandler struct {
	questions *service.QuestionService
}

func NewAnswerHandler(questions *service.QuestionService) *AnswerHandler {
	return &AnswerHandler{questions: questions}
}

func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers, err := h.questions.ListAnswers(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	out := make([]models.AnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, a.Response())
	}
	c.JSON(http.StatusOK, out)
}

// CreateAnswer answers a question (PROTECTED); 404 when the question is gone.
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var input models.CreateAnswerRequest
	if !bindJSON(c, &input) {
		return
	}

	answer, err := h.questions.CreateAnswer(c.Request.Context(), c.Param("id"), middleware.GetUser(c.Request.Context()), input)
	if err != nil {
		respondError(c, err, "Question not found")
		return
	}

	c.JSON(http.StatusOK, answer.Response())
}
