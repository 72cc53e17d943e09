package repository

import (
	"context"
	"time"

	"virtual-lawyer/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles database operations for login sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session
func (r *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	return mapError(r.db.QueryRow(ctx, query, s.Token, s.UserID, s.ExpiresAt).Scan(&s.CreatedAt))
}

// Get retrieves a live session with its user's name and role. Expired
// sessions are reported as ErrNotFound.
func (r *SessionRepository) Get(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	s := &models.Session{}
	query := `
		SELECT s.token, s.user_id, u.username, u.role, s.created_at, s.expires_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()`

	err := r.db.QueryRow(ctx, query, token).Scan(
		&s.Token,
		&s.UserID,
		&s.Username,
		&s.Role,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, token uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteExpired removes sessions that expired before now
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
