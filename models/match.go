package models

import "github.com/google/uuid"

// MatchResult is one ranked candidate produced for a query
type MatchResult struct {
	LawID            uuid.UUID `json:"law_id"`
	Section          string    `json:"section"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_desc"`
	Score            int       `json:"score"`
	MatchedTokens    []string  `json:"matched_keywords"`
}
