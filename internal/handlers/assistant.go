package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type AssistantHandler struct {
	assistant *service.AssistantService
}

func NewAssistantHandler(assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var input models.ChatRequest
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.assistant.Chat(c.Request.Context(), middleware.GetUser(c.Request.Context()), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AssistantHandler) FactCheck(c *gin.Context) {
	var input models.FactCheckRequest
	if !bindJSON(c, &input) {
		return
	}

	resp, err := h.assistant.FactCheck(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, resp)
}
