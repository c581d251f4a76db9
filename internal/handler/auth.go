package handler

import (
	"net/http"

	"jokipro/internal/logger"
	"jokipro/internal/middleware"
	"jokipro/internal/model"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	tokens *middleware.Tokens
}

func NewAuthHandler(auth *service.AuthService, tokens *middleware.Tokens) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username, "err", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(u.ID, u.Username)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("login.ok", "uid", u.ID, "username", u.Username)

	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.UserProfile{ID: u.ID, Username: u.Username},
	})
}
