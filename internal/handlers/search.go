package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type SearchHandler struct {
	search *service.SearchService
}

func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

func (h *SearchHandler) Search(c *gin.Context) {
	limit, ok := queryInt(c, "limit", service.DefaultLimit)
	if !ok {
		return
	}

	questions, err := h.search.Search(c.Request.Context(), c.Query("q"), limit, c.Query("category"))
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, questionResponses(questions))
}
