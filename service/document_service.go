package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"virtual-lawyer/models"
	"virtual-lawyer/repository"
	"virtual-lawyer/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentService serves case documents stored by MatchCase
type DocumentService struct {
	documents DocumentStore
	storage   storage.Storage
	logger    *zap.Logger
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithStore sets the document metadata store
func DocumentWithStore(store DocumentStore) DocumentServiceOption {
	return func(s *DocumentService) {
		s.documents = store
	}
}

// DocumentWithStorage sets the object storage holding document bytes
func DocumentWithStorage(objects storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = objects
	}
}

// DocumentWithLogger sets the logger
func DocumentWithLogger(logger *zap.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = logger
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a document's metadata and a reader over its bytes. The caller
// closes the reader.
func (s *DocumentService) Open(ctx context.Context, id uuid.UUID) (*models.Document, io.ReadCloser, error) {
	if s.documents == nil || s.storage == nil {
		return nil, nil, errors.New("document store or storage not set")
	}

	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, err
	}

	body, err := s.storage.Download(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("Document record has no stored object", zap.String("id", id.String()), zap.String("path", doc.StoragePath))
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("failed to download document: %w", err)
	}
	return doc, body, nil
}
