package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"virtual-lawyer/matcher"
	"virtual-lawyer/models"
	"virtual-lawyer/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxCandidates is how many ranked sections are recorded in a query log
const maxCandidates = 5

// MatchService turns case descriptions into ranked law matches
type MatchService struct {
	laws      LawStore
	logs      QueryLogStore
	documents DocumentStore
	storage   storage.Storage
	extractor TextExtractor
	matcher   *matcher.Matcher
	logger    *zap.Logger
}

// MatchServiceOption is a functional option for MatchService
type MatchServiceOption func(*MatchService)

// MatchWithLawStore sets the law store
func MatchWithLawStore(store LawStore) MatchServiceOption {
	return func(s *MatchService) {
		s.laws = store
	}
}

// MatchWithQueryLogStore sets the query log store
func MatchWithQueryLogStore(store QueryLogStore) MatchServiceOption {
	return func(s *MatchService) {
		s.logs = store
	}
}

// MatchWithDocuments sets where uploaded documents are kept
func MatchWithDocuments(store DocumentStore, objects storage.Storage) MatchServiceOption {
	return func(s *MatchService) {
		s.documents = store
		s.storage = objects
	}
}

// MatchWithExtractor sets the document text extractor
func MatchWithExtractor(e TextExtractor) MatchServiceOption {
	return func(s *MatchService) {
		s.extractor = e
	}
}

// MatchWithMatcher overrides the default matcher
func MatchWithMatcher(m *matcher.Matcher) MatchServiceOption {
	return func(s *MatchService) {
		s.matcher = m
	}
}

// MatchWithLogger sets the logger
func MatchWithLogger(logger *zap.Logger) MatchServiceOption {
	return func(s *MatchService) {
		s.logger = logger
	}
}

// NewMatchService creates a new match service
func NewMatchService(opts ...MatchServiceOption) *MatchService {
	s := &MatchService{
		matcher: matcher.Default(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MatchCaseRequest represents a case description to match
type MatchCaseRequest struct {
	Username string
	Text     string
	Document []byte // Optional PDF
	Filename string
}

// MatchCaseResult represents the ranked matches for a case
type MatchCaseResult struct {
	Best           *models.MatchResult
	Matches        []models.MatchResult
	QueryID        *uuid.UUID
	DocumentID     *uuid.UUID
	ExtractedChars int
}

// MatchCase runs the matcher over a fresh snapshot of the law table. Storing
// the document and logging the query are best-effort: failures are logged
// and do not fail the match.
func (s *MatchService) MatchCase(ctx context.Context, req MatchCaseRequest) (*MatchCaseResult, error) {
	if s.laws == nil {
		return nil, errors.New("law store not set")
	}

	result := &MatchCaseResult{Matches: []models.MatchResult{}}
	text := req.Text

	if len(req.Document) > 0 {
		if s.extractor != nil {
			extracted := s.extractor.Extract(ctx, req.Document)
			result.ExtractedChars = len(extracted)
			if extracted != "" {
				text += "\n" + extracted
			}
		}
		result.DocumentID = s.storeDocument(ctx, req, result.ExtractedChars)
	}

	laws, err := s.laws.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load laws", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrLawsUnavailable, err)
	}

	result.Matches = s.matcher.Match(text, laws)
	if len(result.Matches) == 0 {
		s.logger.Debug("No matches", zap.String("user", req.Username), zap.Int("laws", len(laws)))
		return result, nil
	}

	best := result.Matches[0]
	result.Best = &best
	result.QueryID = s.logQuery(ctx, req.Username, text, result)

	s.logger.Info("Matched case",
		zap.String("user", req.Username),
		zap.String("section", best.Section),
		zap.Int("score", best.Score),
		zap.Int("candidates", len(result.Matches)))

	return result, nil
}

func (s *MatchService) storeDocument(ctx context.Context, req MatchCaseRequest, extractedChars int) *uuid.UUID {
	if s.storage == nil || s.documents == nil {
		return nil
	}

	filename := req.Filename
	if filename == "" {
		filename = "case.pdf"
	}
	id := uuid.New()

	path, err := s.storage.Upload(ctx, storage.NamespaceDocuments, id, filename, bytes.NewReader(req.Document))
	if err != nil {
		s.logger.Warn("Failed to store case document", zap.String("filename", filename), zap.Error(err))
		return nil
	}

	doc := &models.Document{
		ID:             id,
		Username:       req.Username,
		Filename:       filename,
		MimeType:       "application/pdf",
		Size:           int64(len(req.Document)),
		StoragePath:    path,
		ExtractedChars: extractedChars,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		s.logger.Warn("Failed to record case document", zap.String("path", path), zap.Error(err))
		if derr := s.storage.Delete(ctx, path); derr != nil {
			s.logger.Warn("Failed to clean up case document", zap.String("path", path), zap.Error(derr))
		}
		return nil
	}
	return &doc.ID
}

func (s *MatchService) logQuery(ctx context.Context, username, text string, result *MatchCaseResult) *uuid.UUID {
	if s.logs == nil {
		return nil
	}

	best := result.Best
	candidates := make([]string, 0, maxCandidates)
	for i := 0; i < len(result.Matches) && i < maxCandidates; i++ {
		candidates = append(candidates, result.Matches[i].Section)
	}

	section := best.Section
	entry := &models.QueryLog{
		UserText:       text,
		MatchedSection: &section,
		Score:          float64(best.Score),
		Metadata: models.QueryMetadata{
			Username:      username,
			MatchedTokens: best.MatchedTokens,
			Candidates:    candidates,
			DocumentID:    result.DocumentID,
		},
	}
	if best.LawID != uuid.Nil {
		lawID := best.LawID
		entry.MatchedLawID = &lawID
	}

	if err := s.logs.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to log query", zap.String("section", section), zap.Error(err))
		return nil
	}
	return &entry.ID
}
