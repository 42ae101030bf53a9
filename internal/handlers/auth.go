package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/qa-forum/backend/internal/middleware"
	"github.com/emilythestrangee/qa-forum/backend/internal/models"
	"github.com/emilythestrangee/qa-forum/backend/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterRequest
	if !bindJSON(c, &input) {
		return
	}

	token, err := h.auth.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginRequest
	if !bindJSON(c, &input) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), input.Username, input.Password)
	if errors.Is(err, service.ErrUnauthorized) {
		// Bad credentials are a client error here, not a token problem.
		detail(c, http.StatusBadRequest, "Incorrect username or password")
		return
	}
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GetMe returns the authenticated user's profile (PROTECTED)
func (h *AuthHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetUser(c.Request.Context()))
}
