package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the access level of a user
type Role string

const (
	RoleAdvocate Role = "advocate"
	RoleClient   Role = "client"
)

// ParseRole normalizes a role name; ok is false for unknown roles
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdvocate:
		return RoleAdvocate, true
	case RoleClient:
		return RoleClient, true
	default:
		return "", false
	}
}

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session represents a logged-in user
type Session struct {
	Token     uuid.UUID `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
