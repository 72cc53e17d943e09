package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"virtual-lawyer/models"
	"virtual-lawyer/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is used when no TTL option is given
const DefaultSessionTTL = 24 * time.Hour

// AuthService handles login sessions
type AuthService struct {
	users    UserStore
	sessions SessionStore
	ttl      time.Duration
	cost     int
	now      func() time.Time
	logger   *zap.Logger

	// Compared against on unknown usernames so they cost as much as a wrong password
	dummyOnce sync.Once
	dummyHash []byte
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserStore sets the user store
func AuthWithUserStore(store UserStore) AuthServiceOption {
	return func(s *AuthService) {
		s.users = store
	}
}

// AuthWithSessionStore sets the session store
func AuthWithSessionStore(store SessionStore) AuthServiceOption {
	return func(s *AuthService) {
		s.sessions = store
	}
}

// AuthWithSessionTTL sets how long sessions stay valid
func AuthWithSessionTTL(ttl time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// AuthWithBcryptCost sets the bcrypt cost used when hashing passwords
func AuthWithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		s.cost = cost
	}
}

// AuthWithClock overrides the time source
func AuthWithClock(now func() time.Time) AuthServiceOption {
	return func(s *AuthService) {
		s.now = now
	}
}

// AuthWithLogger sets the logger
func AuthWithLogger(logger *zap.Logger) AuthServiceOption {
	return func(s *AuthService) {
		s.logger = logger
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{
		ttl:    DefaultSessionTTL,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string
	Password string
	Role     string
}

// LoginResult represents a successful login
type LoginResult struct {
	Session *models.Session
}

// Login verifies the credentials and that the account holds the requested
// role, then opens a session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.users == nil || s.sessions == nil {
		return nil, errors.New("user or session store not set")
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.compareDummy(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Role != role {
		s.logger.Info("Login with wrong role", zap.String("user", user.Username), zap.String("role", string(role)))
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	session := &models.Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &LoginResult{Session: session}, nil
}

func (s *AuthService) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("virtual-lawyer-dummy"), s.cost)
		if err != nil {
			s.logger.Warn("Failed to build dummy hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash != nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
	}
}

// Authenticate resolves a bearer token into a live session
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if s.sessions == nil {
		return nil, errors.New("session store not set")
	}

	id, err := uuid.Parse(strings.TrimSpace(token))
	if err != nil {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, ErrUnauthorized
	}
	return session, nil
}

// Logout ends a session
func (s *AuthService) Logout(ctx context.Context, token uuid.UUID) error {
	if s.sessions == nil {
		return errors.New("session store not set")
	}
	return s.sessions.Delete(ctx, token)
}

// PurgeExpired removes expired sessions
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.sessions == nil {
		return 0, errors.New("session store not set")
	}
	return s.sessions.DeleteExpired(ctx, s.now())
}

// UserExists reports whether username has an account
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	if s.users == nil {
		return false, errors.New("user store not set")
	}
	_, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureUser creates or refreshes an account with a bcrypt-hashed password
func (s *AuthService) EnsureUser(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	if s.users == nil {
		return nil, errors.New("user store not set")
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	normalized, ok := models.ParseRole(string(role))
	if !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         normalized,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
