package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"virtual-lawyer/models"
	"virtual-lawyer/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultHistoryLimit matches the admin dashboard's "last 10 queries"
	DefaultHistoryLimit = 10
	maxHistoryLimit     = 500
)

// HistoryService exposes the query history to advocates
type HistoryService struct {
	logs    QueryLogStore
	storage storage.Storage
	now     func() time.Time
	logger  *zap.Logger
}

// HistoryServiceOption is a functional option for HistoryService
type HistoryServiceOption func(*HistoryService)

// HistoryWithQueryLogStore sets the query log store
func HistoryWithQueryLogStore(store QueryLogStore) HistoryServiceOption {
	return func(s *HistoryService) {
		s.logs = store
	}
}

// HistoryWithStorage sets where saved exports are written
func HistoryWithStorage(objects storage.Storage) HistoryServiceOption {
	return func(s *HistoryService) {
		s.storage = objects
	}
}

// HistoryWithClock overrides the time source
func HistoryWithClock(now func() time.Time) HistoryServiceOption {
	return func(s *HistoryService) {
		s.now = now
	}
}

// HistoryWithLogger sets the logger
func HistoryWithLogger(logger *zap.Logger) HistoryServiceOption {
	return func(s *HistoryService) {
		s.logger = logger
	}
}

// NewHistoryService creates a new history service
func NewHistoryService(opts ...HistoryServiceOption) *HistoryService {
	s := &HistoryService{
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recent returns the newest queries. limit is clamped to [1, 500];
// non-positive means DefaultHistoryLimit.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]models.QueryLog, error) {
	if s.logs == nil {
		return nil, errors.New("query log store not set")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.logs.ListRecent(ctx, limit)
}

var csvHeader = []string{"created_at", "user_text", "matched_section", "score"}

// ExportCSV writes the full history as CSV, newest first
func (s *HistoryService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	if s.logs == nil {
		return 0, errors.New("query log store not set")
	}

	logs, err := s.logs.ListRecent(ctx, 0)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}
	for _, q := range logs {
		section := ""
		if q.MatchedSection != nil {
			section = *q.MatchedSection
		}
		record := []string{
			q.CreatedAt.UTC().Format(time.RFC3339),
			q.UserText,
			section,
			strconv.FormatFloat(q.Score, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(logs), nil
}

// SaveExportResult describes an export written to storage
type SaveExportResult struct {
	StoragePath string
	Rows        int
}

// SaveExport writes the CSV export into storage
func (s *HistoryService) SaveExport(ctx context.Context) (*SaveExportResult, error) {
	if s.storage == nil {
		return nil, errors.New("storage not set")
	}

	var buf bytes.Buffer
	rows, err := s.ExportCSV(ctx, &buf)
	if err != nil {
		return nil, err
	}

	filename := ExportFilename(s.now())
	path, err := s.storage.Upload(ctx, storage.NamespaceExports, uuid.New(), filename, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to save export: %w", err)
	}

	s.logger.Info("Saved query export", zap.String("path", path), zap.Int("rows", rows))
	return &SaveExportResult{StoragePath: path, Rows: rows}, nil
}

// ExportFilename names a CSV export taken at t
func ExportFilename(t time.Time) string {
	return "user_queries_" + t.UTC().Format("20060102T150405Z") + ".csv"
}
