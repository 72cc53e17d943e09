package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentHandler serves uploaded case documents
type DocumentHandler struct {
	documents *service.DocumentService
	logger    *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documents: documents, logger: logger}
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID format")
		return
	}

	doc, body, err := h.documents.Open(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
			return
		}
		h.logger.Error("Document download failed", zap.String("id", id.String()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Could not download the document")
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.Filename))
	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, body, nil)
}
