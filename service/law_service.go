package service

import (
	"context"
	"errors"
	"strings"

	"virtual-lawyer/models"
	"virtual-lawyer/repository"

	"github.com/google/uuid"
)

// LawService handles management of the law table
type LawService struct {
	laws      LawStore
	penalties PenaltyStore
}

// LawServiceOption is a functional option for LawService
type LawServiceOption func(*LawService)

// WithLawStore sets the law store
func WithLawStore(store LawStore) LawServiceOption {
	return func(s *LawService) {
		s.laws = store
	}
}

// WithPenaltyStore sets the penalty store
func WithPenaltyStore(store PenaltyStore) LawServiceOption {
	return func(s *LawService) {
		s.penalties = store
	}
}

// NewLawService creates a new law service
func NewLawService(opts ...LawServiceOption) *LawService {
	s := &LawService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LawDetail is a law together with its penalties
type LawDetail struct {
	Law       *models.Law      `json:"law"`
	Penalties []models.Penalty `json:"penalties"`
}

// List returns every law
func (s *LawService) List(ctx context.Context) ([]models.Law, error) {
	if s.laws == nil {
		return nil, errors.New("law store not set")
	}
	return s.laws.ListAll(ctx)
}

// Get returns a law and its penalties
func (s *LawService) Get(ctx context.Context, section string) (*LawDetail, error) {
	if s.laws == nil {
		return nil, errors.New("law store not set")
	}

	law, err := s.laws.GetBySection(ctx, section)
	if err != nil {
		return nil, translate(err)
	}

	detail := &LawDetail{Law: law, Penalties: []models.Penalty{}}
	if s.penalties != nil {
		penalties, err := s.penalties.ListBySection(ctx, section)
		if err != nil {
			return nil, err
		}
		detail.Penalties = penalties
	}
	return detail, nil
}

// Create validates and inserts a law
func (s *LawService) Create(ctx context.Context, law *models.Law) (*models.Law, error) {
	if s.laws == nil {
		return nil, errors.New("law store not set")
	}
	if err := normalizeLaw(law); err != nil {
		return nil, err
	}
	if err := s.laws.Create(ctx, law); err != nil {
		return nil, translate(err)
	}
	return law, nil
}

// Update replaces the law stored under section
func (s *LawService) Update(ctx context.Context, section string, law *models.Law) (*models.Law, error) {
	if s.laws == nil {
		return nil, errors.New("law store not set")
	}
	if err := normalizeLaw(law); err != nil {
		return nil, err
	}
	if err := s.laws.Update(ctx, section, law); err != nil {
		return nil, translate(err)
	}
	return law, nil
}

// Delete removes a law and, through the schema, its penalties
func (s *LawService) Delete(ctx context.Context, section string) error {
	if s.laws == nil {
		return errors.New("law store not set")
	}
	return translate(s.laws.Delete(ctx, section))
}

// AddPenalty attaches a penalty to an existing law
func (s *LawService) AddPenalty(ctx context.Context, p *models.Penalty) (*models.Penalty, error) {
	if s.laws == nil || s.penalties == nil {
		return nil, errors.New("law or penalty store not set")
	}
	p.LawSection = strings.TrimSpace(p.LawSection)
	if p.LawSection == "" {
		return nil, ErrInvalidPenalty
	}
	if _, err := s.laws.GetBySection(ctx, p.LawSection); err != nil {
		return nil, translate(err)
	}
	if err := s.penalties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePenalty removes one penalty of the law stored under section
func (s *LawService) DeletePenalty(ctx context.Context, section string, id uuid.UUID) error {
	if s.penalties == nil {
		return errors.New("penalty store not set")
	}
	err := s.penalties.Delete(ctx, strings.TrimSpace(section), id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPenaltyNotFound
	}
	return err
}

func normalizeLaw(law *models.Law) error {
	law.Section = strings.TrimSpace(law.Section)
	law.Title = strings.TrimSpace(law.Title)
	law.ShortDescription = strings.TrimSpace(law.ShortDescription)
	law.Category = strings.TrimSpace(law.Category)
	law.Keywords = models.ParseKeywords(models.JoinKeywords(law.Keywords))
	if law.Section == "" || law.Title == "" {
		return ErrInvalidLaw
	}
	return nil
}

// translate maps repository errors onto law service errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrLawNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicateSection
	default:
		return err
	}
}
