// Package extract turns uploaded case documents into plain text for matching.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// DefaultMaxChars caps, in bytes, how much extracted text is appended to a query
const DefaultMaxChars = 200000

// PDFExtractor extracts text from PDF bytes
type PDFExtractor struct {
	MaxChars int
	logger   *zap.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFExtractor{
		MaxChars: DefaultMaxChars,
		logger:   logger,
	}
}

// Extract returns the best-effort plain text of a PDF, or "" when the
// document cannot be read.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) string {
	if len(data) == 0 || ctx.Err() != nil {
		return ""
	}

	text, err := e.extractText(data)
	if err != nil {
		e.logger.Warn("PDF extraction failed", zap.Int("bytes", len(data)), zap.Error(err))
		return ""
	}

	return clean(text, e.MaxChars)
}

// clean makes extracted text safe for a Postgres TEXT column and caps it at
// limit bytes without splitting a rune.
func clean(text string, limit int) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ToValidUTF8(text, "")
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut])
}

func (e *PDFExtractor) extractText(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	b, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(b); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}

	return buf.String(), nil
}
