package service

import (
	"context"
	"errors"
	"fmt"

	"virtual-lawyer/seed"

	"go.uber.org/zap"
)

// Seeder loads default accounts and the bundled law table
type Seeder struct {
	auth   *AuthService
	laws   LawStore
	logger *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(auth *AuthService, laws LawStore, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{auth: auth, laws: laws, logger: logger}
}

// SeedResult reports what Seed wrote
type SeedResult struct {
	Users        int
	LawsInserted int
}

// Seed creates the default users that do not exist yet and inserts the
// bundled laws when the law table is empty.
func (s *Seeder) Seed(ctx context.Context, data *seed.Data) (*SeedResult, error) {
	if s.auth == nil || s.laws == nil {
		return nil, errors.New("seeder dependencies not set")
	}

	result := &SeedResult{}
	for _, u := range data.Users() {
		exists, err := s.auth.UserExists(ctx, u.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user %s: %w", u.Username, err)
		}
		if exists {
			continue
		}
		if _, err := s.auth.EnsureUser(ctx, u.Username, u.Password, u.Role); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
		result.Users++
	}

	count, err := s.laws.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count laws: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Law table already populated", zap.Int("laws", count))
		return result, nil
	}

	for _, law := range data.Laws() {
		inserted, err := s.laws.InsertIgnore(ctx, &law)
		if err != nil {
			return nil, fmt.Errorf("failed to seed law %s: %w", law.Section, err)
		}
		if inserted {
			result.LawsInserted++
		}
	}

	s.logger.Info("Seeded database", zap.Int("users", result.Users), zap.Int("laws", result.LawsInserted))
	return result, nil
}
