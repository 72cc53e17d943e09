package repository

import (
	"context"
	"fmt"

	"virtual-lawyer/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryLogRepository handles database operations for the query history
type QueryLogRepository struct {
	db *pgxpool.Pool
}

// NewQueryLogRepository creates a new query log repository
func NewQueryLogRepository(db *pgxpool.Pool) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// Create stores a query log entry
func (r *QueryLogRepository) Create(ctx context.Context, q *models.QueryLog) error {
	query := `
		INSERT INTO user_queries (user_text, matched_section, matched_law_id, score, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		q.UserText,
		q.MatchedSection,
		q.MatchedLawID,
		q.Score,
		q.Metadata,
	).Scan(&q.ID, &q.CreatedAt)

	return mapError(err)
}

// ListRecent returns the newest entries first. A non-positive limit returns
// every entry.
func (r *QueryLogRepository) ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error) {
	query := `
		SELECT id, user_text, matched_section, matched_law_id, score, metadata, created_at
		FROM user_queries
		ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	logs := make([]models.QueryLog, 0)
	for rows.Next() {
		var q models.QueryLog
		err := rows.Scan(
			&q.ID,
			&q.UserText,
			&q.MatchedSection,
			&q.MatchedLawID,
			&q.Score,
			&q.Metadata,
			&q.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query log: %w", err)
		}
		logs = append(logs, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return logs, nil
}
