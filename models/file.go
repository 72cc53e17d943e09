package models

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded case file
type Document struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Filename       string    `json:"filename"`
	MimeType       string    `json:"mime_type"`
	Size           int64     `json:"size"`
	StoragePath    string    `json:"storage_path"`
	ExtractedChars int       `json:"extracted_chars"`
	CreatedAt      time.Time `json:"created_at"`
}
