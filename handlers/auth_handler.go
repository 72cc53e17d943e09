package handlers

import (
	"errors"
	"net/http"

	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for login sessions
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "LOGIN_FAILED", "Login Failed.")
			return
		}
		h.logger.Error("Login failed", zap.String("user", req.Username), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "LOGIN_ERROR", "Could not log in right now")
		return
	}

	s := result.Session
	respondOK(c, http.StatusOK, gin.H{
		"token":      s.Token,
		"username":   s.Username,
		"role":       s.Role,
		"expires_at": s.ExpiresAt,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	session := currentSession(c)
	if err := h.auth.Logout(c.Request.Context(), session.Token); err != nil {
		h.logger.Warn("Logout failed", zap.String("user", session.Username), zap.Error(err))
	}
	respondOK(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me handles GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	session := currentSession(c)
	respondOK(c, http.StatusOK, gin.H{
		"username":   session.Username,
		"role":       session.Role,
		"expires_at": session.ExpiresAt,
	})
}
