package service

import (
	"context"
	"time"

	"virtual-lawyer/models"

	"github.com/google/uuid"
)

// The store interfaces below are satisfied by the repository package.

// LawStore reads and writes the law table
type LawStore interface {
	ListAll(ctx context.Context) ([]models.Law, error)
	GetBySection(ctx context.Context, section string) (*models.Law, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, law *models.Law) error
	InsertIgnore(ctx context.Context, law *models.Law) (bool, error)
	Update(ctx context.Context, section string, law *models.Law) error
	Delete(ctx context.Context, section string) error
}

// PenaltyStore reads and writes penalties
type PenaltyStore interface {
	Create(ctx context.Context, p *models.Penalty) error
	ListBySection(ctx context.Context, section string) ([]models.Penalty, error)
	Delete(ctx context.Context, section string, id uuid.UUID) error
}

// UserStore reads and writes users
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// SessionStore reads and writes login sessions
type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, token uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, token uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// QueryLogStore reads and writes the query history
type QueryLogStore interface {
	Create(ctx context.Context, q *models.QueryLog) error
	ListRecent(ctx context.Context, limit int) ([]models.QueryLog, error)
}

// DocumentStore records uploaded case documents
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
}

// TextExtractor turns document bytes into best-effort plain text
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) string
}
