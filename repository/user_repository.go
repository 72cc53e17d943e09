package repository

import (
	"context"

	"virtual-lawyer/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

// Upsert creates the user or refreshes the password hash and role of an
// existing one
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
			SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	return mapError(err)
}
