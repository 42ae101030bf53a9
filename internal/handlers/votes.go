package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type VoteHandler struct {
	votes *service.VoteLedger
}

func NewVoteHandler(votes *service.VoteLedger) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Vote replaces the caller's vote on a question or answer (PROTECTED)
func (h *VoteHandler) Vote(c *gin.Context) {
	var input models.VoteRequest
	if !bindJSON(c, &input) {
		return
	}

	total, err := h.votes.CastVote(c.Request.Context(), middleware.GetUser(c.Request.Context()), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, models.VoteResponse{Votes: total})
}
