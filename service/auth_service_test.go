package service

import (
	"context"
	"testing"
	"time"

	"virtual-lawyer/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func newAuth(t *testing.T) (*AuthService, *fakeUserStore, *fakeSessionStore, *clock) {
	t.Helper()
	users := newFakeUserStore()
	sessions := newFakeSessionStore()
	c := &clock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	svc := NewAuthService(
		AuthWithUserStore(users),
		AuthWithSessionStore(sessions),
		AuthWithSessionTTL(time.Hour),
		AuthWithBcryptCost(bcrypt.MinCost),
		AuthWithClock(c.now),
	)
	_, err := svc.EnsureUser(context.Background(), "admin", "admin123", models.RoleAdvocate)
	require.NoError(t, err)
	_, err = svc.EnsureUser(context.Background(), "client", "client123", "Client")
	require.NoError(t, err)
	return svc, users, sessions, c
}

func TestEnsureUserHashesPassword(t *testing.T) {
	_, users, _, _ := newAuth(t)

	admin := users.users["admin"]
	assert.NotEqual(t, "admin123", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
	assert.Equal(t, models.RoleClient, users.users["client"].Role)
}

func TestEnsureUserValidation(t *testing.T) {
	svc, _, _, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.EnsureUser(ctx, "", "pw", models.RoleClient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.EnsureUser(ctx, "judge", "pw", "judge")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc, _, sessions, c := newAuth(t)

	result, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123", Role: "Advocate"})
	require.NoError(t, err)
	s := result.Session
	assert.Equal(t, "admin", s.Username)
	assert.Equal(t, models.RoleAdvocate, s.Role)
	assert.Equal(t, c.t.Add(time.Hour), s.ExpiresAt)
	assert.Contains(t, sessions.sessions, s.Token)
}

func TestLoginFailures(t *testing.T) {
	svc, _, sessions, _ := newAuth(t)

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{name: "wrong password", req: LoginRequest{Username: "admin", Password: "nope", Role: "advocate"}},
		{name: "unknown user", req: LoginRequest{Username: "ghost", Password: "admin123", Role: "advocate"}},
		{name: "role mismatch", req: LoginRequest{Username: "client", Password: "client123", Role: "advocate"}},
		{name: "unknown role", req: LoginRequest{Username: "admin", Password: "admin123", Role: "judge"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
	assert.Empty(t, sessions.sessions)
}

func TestAuthenticate(t *testing.T) {
	svc, _, _, c := newAuth(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginRequest{Username: "client", Password: "client123", Role: "client"})
	require.NoError(t, err)
	token := result.Session.Token.String()

	s, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "client", s.Username)

	_, err = svc.Authenticate(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.t = c.t.Add(2 * time.Hour)
	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	purged, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestLogout(t *testing.T) {
	svc, _, _, _ := newAuth(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginRequest{Username: "admin", Password: "admin123", Role: "advocate"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, result.Session.Token))
	_, err = svc.Authenticate(ctx, result.Session.Token.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserExists(t *testing.T) {
	svc, _, _, _ := newAuth(t)

	ok, err := svc.UserExists(context.Background(), " admin ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.UserExists(context.Background(), "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginUnknownUserStillComparesHash(t *testing.T) {
	svc, _, _, _ := newAuth(t)
	require.Nil(t, svc.dummyHash)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "admin123", Role: "advocate"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NotNil(t, svc.dummyHash)
	cost, err := bcrypt.Cost(svc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost, "dummy hash must use the configured cost")
}
