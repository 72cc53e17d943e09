package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultMaxUpload = 10 * 1024 * 1024 // 10MB
	noMatchMessage   = "No matches found."
	searchFailed     = "Something went wrong while searching the law database. Please try again."
)

// MatchHandler handles case description queries
type MatchHandler struct {
	match       *service.MatchService
	maxFileSize int64
	logger      *zap.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(match *service.MatchService, maxFileSize int64, logger *zap.Logger) *MatchHandler {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxUpload
	}
	return &MatchHandler{match: match, maxFileSize: maxFileSize, logger: logger}
}

// MatchRequest represents the JSON body of a match query
type MatchRequest struct {
	Text string `json:"text"`
}

// Match handles POST /api/match. It accepts either a JSON body or a
// multipart form with a text field and an optional PDF file.
func (h *MatchHandler) Match(c *gin.Context) {
	req := service.MatchCaseRequest{}
	if session := currentSession(c); session != nil {
		req.Username = session.Username
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if !h.readForm(c, &req) {
			return
		}
	} else {
		var body MatchRequest
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
		req.Text = body.Text
	}

	result, err := h.match.MatchCase(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Match failed", zap.String("user", req.Username), zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "SEARCH_FAILED", searchFailed)
		return
	}

	data := gin.H{
		"best":            result.Best,
		"matches":         result.Matches,
		"query_id":        result.QueryID,
		"document_id":     result.DocumentID,
		"extracted_chars": result.ExtractedChars,
	}
	if result.Best == nil {
		data["message"] = noMatchMessage
	} else {
		data["message"] = fmt.Sprintf("Best Match: Section %s", result.Best.Section)
	}
	respondOK(c, http.StatusOK, data)
}

// readForm fills req from a multipart form. It writes the error response and
// returns false when the upload is rejected.
func (h *MatchHandler) readForm(c *gin.Context, req *service.MatchCaseRequest) bool {
	req.Text = c.PostForm("text")

	fileHeader, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return true
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		return false
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return false
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	isPDF := strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf")
	if !isPDF && mimeType != "application/pdf" {
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only PDF uploads are supported")
		return false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_READ_ERROR", err.Error())
		return false
	}
	if int64(len(data)) > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return false
	}

	req.Document = data
	req.Filename = filepath.Base(fileHeader.Filename)
	return true
}
