package repository

import (
	"context"

	"virtual-lawyer/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for uploaded case documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record. A preset ID is kept so the record
// lines up with the stored object.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	query := `
		INSERT INTO documents (
			id, username, filename, mime_type, size, storage_path, extracted_chars
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.Username,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
		doc.ExtractedChars,
	).Scan(&doc.CreatedAt)

	return mapError(err)
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, username, filename, mime_type, size, storage_path, extracted_chars, created_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Username,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.StoragePath,
		&doc.ExtractedChars,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return doc, nil
}
