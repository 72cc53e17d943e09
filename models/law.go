package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Law represents a statutory section in the law table
type Law struct {
	ID               uuid.UUID `json:"id"`
	Section          string    `json:"section"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_desc"`
	Category         string    `json:"category"`
	Keywords         []string  `json:"keywords"`
	OfficialText     string    `json:"official_text,omitempty"`
	SourceURL        string    `json:"source_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Penalty represents the punishment attached to a law section
type Penalty struct {
	ID           uuid.UUID `json:"id"`
	LawSection   string    `json:"law_section"`
	Imprisonment string    `json:"imprisonment"`
	Fine         string    `json:"fine"`
	Severity     string    `json:"severity"`
	Notes        string    `json:"notes,omitempty"`
}

// ParseKeywords splits the comma-separated storage form, dropping blanks.
func ParseKeywords(raw string) []string {
	keywords := make([]string, 0)
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// JoinKeywords is the inverse of ParseKeywords
func JoinKeywords(keywords []string) string {
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k != "" {
			parts = append(parts, k)
		}
	}
	return strings.Join(parts, ",")
}
