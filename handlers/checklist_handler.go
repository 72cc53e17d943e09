package handlers

import (
	"net/http"

	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
)

// ListChecklists handles GET /api/checklists
func ListChecklists(c *gin.Context) {
	respondOK(c, http.StatusOK, service.ChecklistCategories())
}

// GetChecklist handles GET /api/checklists/:category
func GetChecklist(c *gin.Context) {
	list, err := service.ChecklistFor(c.Param("category"))
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Unknown case category")
		return
	}
	respondOK(c, http.StatusOK, list)
}
