package repository

import (
	"context"

	"virtual-lawyer/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PenaltyRepository handles database operations for penalties
type PenaltyRepository struct {
	db *pgxpool.Pool
}

// NewPenaltyRepository creates a new penalty repository
func NewPenaltyRepository(db *pgxpool.Pool) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

// Create inserts a penalty for an existing law section
func (r *PenaltyRepository) Create(ctx context.Context, p *models.Penalty) error {
	query := `
		INSERT INTO penalties (law_section, imprisonment, fine, severity, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, p.LawSection, p.Imprisonment, p.Fine, p.Severity, p.Notes).Scan(&p.ID)
	return mapError(err)
}

// ListBySection returns the penalties attached to a section
func (r *PenaltyRepository) ListBySection(ctx context.Context, section string) ([]models.Penalty, error) {
	query := `
		SELECT id, law_section, COALESCE(imprisonment, ''), COALESCE(fine, ''),
			COALESCE(severity, ''), COALESCE(notes, '')
		FROM penalties
		WHERE law_section = $1
		ORDER BY severity, id`

	rows, err := r.db.Query(ctx, query, section)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	penalties := make([]models.Penalty, 0)
	for rows.Next() {
		var p models.Penalty
		if err := rows.Scan(&p.ID, &p.LawSection, &p.Imprisonment, &p.Fine, &p.Severity, &p.Notes); err != nil {
			return nil, err
		}
		penalties = append(penalties, p)
	}

	return penalties, rows.Err()
}

// Delete removes a penalty of the law stored under section
func (r *PenaltyRepository) Delete(ctx context.Context, section string, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM penalties WHERE id = $1 AND law_section = $2`, id, section)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
