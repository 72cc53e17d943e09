package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// QueryMetadata is the JSONB payload stored with each query log
type QueryMetadata struct {
	Username      string     `json:"username,omitempty"`
	MatchedTokens []string   `json:"matched_tokens,omitempty"`
	Candidates    []string   `json:"candidates,omitempty"`
	DocumentID    *uuid.UUID `json:"document_id,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (m QueryMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *QueryMetadata) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		*m = QueryMetadata{}
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*m = QueryMetadata{}
		return nil
	}

	if len(bytes) == 0 {
		*m = QueryMetadata{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// QueryLog represents one submitted query and its top match
type QueryLog struct {
	ID             uuid.UUID     `json:"id"`
	UserText       string        `json:"user_text"`
	MatchedSection *string       `json:"matched_section"`
	MatchedLawID   *uuid.UUID    `json:"matched_law_id,omitempty"`
	Score          float64       `json:"score"`
	Metadata       QueryMetadata `json:"metadata"`
	CreatedAt      time.Time     `json:"created_at"`
}
