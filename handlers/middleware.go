package handlers

import (
	"errors"
	"net/http"
	"strings"

	"virtual-lawyer/models"
	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// RequireSession resolves the bearer token into a session or rejects the request
func RequireSession(auth *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required")
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired, please log in again")
				return
			}
			logger.Error("Session lookup failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "SESSION_ERROR", "Could not verify session")
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireRole only lets sessions holding role through
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		if session == nil || session.Role != role {
			respondError(c, http.StatusForbidden, "FORBIDDEN", "This action requires the "+string(role)+" role")
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
