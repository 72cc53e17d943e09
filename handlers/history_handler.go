package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler handles the advocate's query history views
type HistoryHandler struct {
	history *service.HistoryService
	logger  *zap.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history *service.HistoryService, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, logger: logger}
}

// RecentQueries handles GET /api/admin/queries
func (h *HistoryHandler) RecentQueries(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load query history", zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "RETRIEVAL_FAILED", "Could not load query history")
		return
	}
	respondOK(c, http.StatusOK, logs)
}

// DownloadExport handles GET /api/admin/queries/export
func (h *HistoryHandler) DownloadExport(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := h.history.ExportCSV(c.Request.Context(), &buf); err != nil {
		h.logger.Error("CSV export failed", zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "EXPORT_FAILED", "Could not export query history")
		return
	}

	filename := service.ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// SaveExport handles POST /api/admin/queries/export
func (h *HistoryHandler) SaveExport(c *gin.Context) {
	result, err := h.history.SaveExport(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to save export", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Could not save the export")
		return
	}
	respondOK(c, http.StatusCreated, gin.H{
		"storage_path": result.StoragePath,
		"rows":         result.Rows,
	})
}
