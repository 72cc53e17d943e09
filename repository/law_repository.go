package repository

import (
	"context"
	"fmt"

	"virtual-lawyer/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LawRepository handles database operations for laws
type LawRepository struct {
	db *pgxpool.Pool
}

// NewLawRepository creates a new law repository
func NewLawRepository(db *pgxpool.Pool) *LawRepository {
	return &LawRepository{db: db}
}

const lawColumns = `id, section, title, COALESCE(short_desc, ''), COALESCE(category, ''),
			COALESCE(keywords, ''), COALESCE(official_text, ''), COALESCE(source_url, ''),
			created_at, updated_at`

func scanLaw(row pgx.Row) (*models.Law, error) {
	law := &models.Law{}
	var keywords string
	err := row.Scan(
		&law.ID,
		&law.Section,
		&law.Title,
		&law.ShortDescription,
		&law.Category,
		&keywords,
		&law.OfficialText,
		&law.SourceURL,
		&law.CreatedAt,
		&law.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	law.Keywords = models.ParseKeywords(keywords)
	return law, nil
}

// ListAll returns every law ordered by section
func (r *LawRepository) ListAll(ctx context.Context) ([]models.Law, error) {
	query := `SELECT ` + lawColumns + ` FROM laws ORDER BY section`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query laws: %w", err)
	}
	defer rows.Close()

	laws := make([]models.Law, 0)
	for rows.Next() {
		law, err := scanLaw(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan law: %w", err)
		}
		laws = append(laws, *law)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating laws: %w", err)
	}

	return laws, nil
}

// GetBySection retrieves a law by its section code
func (r *LawRepository) GetBySection(ctx context.Context, section string) (*models.Law, error) {
	query := `SELECT ` + lawColumns + ` FROM laws WHERE section = $1`

	law, err := scanLaw(r.db.QueryRow(ctx, query, section))
	if err != nil {
		return nil, mapError(err)
	}
	return law, nil
}

// Count returns the number of laws
func (r *LawRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM laws`).Scan(&n)
	return n, err
}

// Create inserts a new law
func (r *LawRepository) Create(ctx context.Context, law *models.Law) error {
	query := `
		INSERT INTO laws (
			section, title, short_desc, category, keywords, official_text, source_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		law.Section,
		law.Title,
		law.ShortDescription,
		law.Category,
		models.JoinKeywords(law.Keywords),
		law.OfficialText,
		law.SourceURL,
	).Scan(&law.ID, &law.CreatedAt, &law.UpdatedAt)

	return mapError(err)
}

// InsertIgnore inserts a law unless its section already exists. It reports
// whether a row was written.
func (r *LawRepository) InsertIgnore(ctx context.Context, law *models.Law) (bool, error) {
	query := `
		INSERT INTO laws (
			section, title, short_desc, category, keywords, official_text, source_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (section) DO NOTHING`

	tag, err := r.db.Exec(
		ctx, query,
		law.Section,
		law.Title,
		law.ShortDescription,
		law.Category,
		models.JoinKeywords(law.Keywords),
		law.OfficialText,
		law.SourceURL,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Update replaces the law stored under section. law.Section may differ to
// rename the section; penalties follow via ON UPDATE CASCADE.
func (r *LawRepository) Update(ctx context.Context, section string, law *models.Law) error {
	query := `
		UPDATE laws SET
			section = $2,
			title = $3,
			short_desc = $4,
			category = $5,
			keywords = $6,
			official_text = $7,
			source_url = $8,
			updated_at = NOW()
		WHERE section = $1
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		section,
		law.Section,
		law.Title,
		law.ShortDescription,
		law.Category,
		models.JoinKeywords(law.Keywords),
		law.OfficialText,
		law.SourceURL,
	).Scan(&law.ID, &law.CreatedAt, &law.UpdatedAt)

	return mapError(err)
}

// Delete removes a law by section
func (r *LawRepository) Delete(ctx context.Context, section string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM laws WHERE section = $1`, section)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
