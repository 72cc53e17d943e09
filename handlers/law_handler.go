package handlers

import (
	"errors"
	"net/http"

	"virtual-lawyer/models"
	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LawHandler handles HTTP requests for the law table
type LawHandler struct {
	laws   *service.LawService
	logger *zap.Logger
}

// NewLawHandler creates a new law handler
func NewLawHandler(laws *service.LawService, logger *zap.Logger) *LawHandler {
	return &LawHandler{laws: laws, logger: logger}
}

// LawRequest represents the request body for creating or updating a law
type LawRequest struct {
	Section          string   `json:"section" binding:"required"`
	Title            string   `json:"title" binding:"required"`
	ShortDescription string   `json:"short_desc"`
	Category         string   `json:"category"`
	Keywords         []string `json:"keywords"`
	OfficialText     string   `json:"official_text"`
	SourceURL        string   `json:"source_url"`
}

func (r LawRequest) toLaw() *models.Law {
	return &models.Law{
		Section:          r.Section,
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Category:         r.Category,
		Keywords:         r.Keywords,
		OfficialText:     r.OfficialText,
		SourceURL:        r.SourceURL,
	}
}

// PenaltyRequest represents the request body for adding a penalty
type PenaltyRequest struct {
	Imprisonment string `json:"imprisonment"`
	Fine         string `json:"fine"`
	Severity     string `json:"severity"`
	Notes        string `json:"notes"`
}

// ListLaws handles GET /api/laws
func (h *LawHandler) ListLaws(c *gin.Context) {
	laws, err := h.laws.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list laws", zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "RETRIEVAL_FAILED", "Could not load the law database")
		return
	}
	respondOK(c, http.StatusOK, laws)
}

// GetLaw handles GET /api/laws/:section
func (h *LawHandler) GetLaw(c *gin.Context) {
	detail, err := h.laws.Get(c.Request.Context(), c.Param("section"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, detail)
}

// CreateLaw handles POST /api/laws
func (h *LawHandler) CreateLaw(c *gin.Context) {
	var req LawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	law, err := h.laws.Create(c.Request.Context(), req.toLaw())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("Law created", zap.String("section", law.Section), zap.String("by", currentSession(c).Username))
	respondOK(c, http.StatusCreated, law)
}

// UpdateLaw handles PUT /api/laws/:section
func (h *LawHandler) UpdateLaw(c *gin.Context) {
	var req LawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	law, err := h.laws.Update(c.Request.Context(), c.Param("section"), req.toLaw())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, law)
}

// DeleteLaw handles DELETE /api/laws/:section
func (h *LawHandler) DeleteLaw(c *gin.Context) {
	section := c.Param("section")
	if err := h.laws.Delete(c.Request.Context(), section); err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("Law deleted", zap.String("section", section), zap.String("by", currentSession(c).Username))
	respondOK(c, http.StatusOK, gin.H{"deleted": section})
}

// AddPenalty handles POST /api/laws/:section/penalties
func (h *LawHandler) AddPenalty(c *gin.Context) {
	var req PenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	penalty, err := h.laws.AddPenalty(c.Request.Context(), &models.Penalty{
		LawSection:   c.Param("section"),
		Imprisonment: req.Imprisonment,
		Fine:         req.Fine,
		Severity:     req.Severity,
		Notes:        req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, http.StatusCreated, penalty)
}

// DeletePenalty handles DELETE /api/laws/:section/penalties/:id
func (h *LawHandler) DeletePenalty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid penalty ID format")
		return
	}

	if err := h.laws.DeletePenalty(c.Request.Context(), c.Param("section"), id); err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *LawHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLawNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Law not found")
	case errors.Is(err, service.ErrPenaltyNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Penalty not found")
	case errors.Is(err, service.ErrDuplicateSection):
		respondError(c, http.StatusConflict, "DUPLICATE_SECTION", err.Error())
	case errors.Is(err, service.ErrInvalidLaw), errors.Is(err, service.ErrInvalidPenalty):
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	default:
		h.logger.Error("Law operation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
